package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/repository"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/scope"
)

var (
	ErrExportNoRows       = errors.New("nothing to export")
	ErrExportGenerateFail = errors.New("failed to generate Excel file")
)

// ExportService renders role-visible data as downloadable spreadsheets.
// Sheets come back as a bytes.Buffer; the handler sets the HTTP headers.
type ExportService interface {
	ExportResults(ctx context.Context, role scope.Role, userID string, params map[string]string) (*bytes.Buffer, string, error)
	ExportAttendance(ctx context.Context, role scope.Role, userID string, params map[string]string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService instance.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) writeSheet(f *excelize.File, sheet string, headers []string, fill func(setRow func(values ...interface{}))) error {
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, col+"1", h)
		f.SetCellStyle(sheet, col+"1", col+"1", headerStyle)
		f.SetColWidth(sheet, col, col, 18)
	}

	row := 2
	fill(func(values ...interface{}) {
		for i, v := range values {
			col, _ := excelize.ColumnNumberToName(i + 1)
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), v)
		}
		row++
	})
	return nil
}

func (s *exportService) ExportResults(ctx context.Context, role scope.Role, userID string, params map[string]string) (*bytes.Buffer, string, error) {
	f, err := scope.Build(scope.EntityResult, role, userID, params)
	if err != nil {
		return nil, "", err
	}
	results, err := s.repo.Result.ListAll(ctx, f)
	if err != nil {
		s.logger.Error("export results query failed", zap.Error(err))
		return nil, "", err
	}
	if len(results) == 0 {
		return nil, "", ErrExportNoRows
	}

	book := excelize.NewFile()
	defer book.Close()

	err = s.writeSheet(book, "Results",
		[]string{"ID", "Student", "Assessment", "Type", "Class", "Teacher", "Score"},
		func(setRow func(values ...interface{})) {
			for i := range results {
				r := toResultResponse(&results[i])
				kind := "exam"
				if r.AssignmentID != nil {
					kind = "assignment"
				}
				student := r.StudentID
				if r.Student != nil {
					student = r.Student.Name + " " + r.Student.Surname
				}
				setRow(r.ID, student, r.Title, kind, r.ClassName, r.TeacherName, r.Score)
			}
		})
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}

	buf := new(bytes.Buffer)
	if err := book.Write(buf); err != nil {
		s.logger.Error("export results write failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	return buf, fmt.Sprintf("results_%s.xlsx", time.Now().Format("2006-01-02")), nil
}

func (s *exportService) ExportAttendance(ctx context.Context, role scope.Role, userID string, params map[string]string) (*bytes.Buffer, string, error) {
	f, err := attendanceFilter(role, userID, params)
	if err != nil {
		return nil, "", err
	}
	rows, err := s.repo.Attendance.ListAll(ctx, f)
	if err != nil {
		s.logger.Error("export attendance query failed", zap.Error(err))
		return nil, "", err
	}
	if len(rows) == 0 {
		return nil, "", ErrExportNoRows
	}

	book := excelize.NewFile()
	defer book.Close()

	err = s.writeSheet(book, "Attendance",
		[]string{"Date", "Present", "Capacity", "Students"},
		func(setRow func(values ...interface{})) {
			for _, g := range GroupAttendance(rows) {
				setRow(
					g.Date.Format("2006-01-02"),
					g.Present,
					g.Capacity,
					strings.Join(g.StudentNames, ", "),
				)
			}
		})
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}

	buf := new(bytes.Buffer)
	if err := book.Write(buf); err != nil {
		s.logger.Error("export attendance write failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	return buf, fmt.Sprintf("attendance_%s.xlsx", time.Now().Format("2006-01-02")), nil
}

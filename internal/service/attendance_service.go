package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/dto"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/model"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/repository"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/scope"
	apperrors "github.com/NguyenMaiPhuong311/ISD-Final/pkg/errors"
)

var ErrAttendanceNotFound = errors.New("attendance record not found")

// AttendanceService is the attendances business interface.
type AttendanceService interface {
	Create(ctx context.Context, req *dto.CreateAttendanceRequest) (*dto.AttendanceResponse, error)
	GetByID(ctx context.Context, id int) (*dto.AttendanceResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateAttendanceRequest) (*dto.AttendanceResponse, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, role scope.Role, userID string, params map[string]string, page int) ([]dto.AttendanceResponse, int64, error)
	// ListGroups returns roll-call sessions collapsed per grouping key.
	ListGroups(ctx context.Context, role scope.Role, userID string, params map[string]string) ([]dto.AttendanceGroup, error)
	// DeleteGroup removes every record of one roll-call session.
	DeleteGroup(ctx context.Context, req *dto.DeleteAttendanceGroupRequest) (int64, error)
}

type attendanceService struct {
	repo     *repository.Repository
	pageSize int
	logger   *zap.Logger
}

// NewAttendanceService creates an AttendanceService instance.
func NewAttendanceService(repo *repository.Repository, pageSize int, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, pageSize: pageSize, logger: logger}
}

func (s *attendanceService) Create(ctx context.Context, req *dto.CreateAttendanceRequest) (*dto.AttendanceResponse, error) {
	if _, err := s.repo.Class.GetByID(ctx, req.ClassID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	attendance := &model.Attendance{
		Date:      req.Date,
		Present:   req.Present,
		Capacity:  req.Capacity,
		ClassID:   req.ClassID,
		StudentID: req.StudentID,
	}
	if err := s.repo.Attendance.Create(ctx, attendance); err != nil {
		s.logger.Error("create attendance failed", zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, attendance.ID)
}

func (s *attendanceService) GetByID(ctx context.Context, id int) (*dto.AttendanceResponse, error) {
	attendance, err := s.repo.Attendance.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendanceNotFound
		}
		return nil, err
	}
	return toAttendanceResponse(attendance), nil
}

func (s *attendanceService) Update(ctx context.Context, id int, req *dto.UpdateAttendanceRequest) (*dto.AttendanceResponse, error) {
	attendance, err := s.repo.Attendance.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendanceNotFound
		}
		return nil, err
	}

	attendance.Date = req.Date
	attendance.Present = req.Present
	attendance.Capacity = req.Capacity
	attendance.ClassID = req.ClassID
	attendance.StudentID = req.StudentID
	attendance.Student = nil
	attendance.Class = nil
	if err := s.repo.Attendance.Update(ctx, attendance); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *attendanceService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.Attendance.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAttendanceNotFound
		}
		return err
	}
	return s.repo.Attendance.Delete(ctx, id)
}

// attendanceFilter layers explicit params and role visibility; attendance
// rows are reached through the class.
func attendanceFilter(role scope.Role, userID string, params map[string]string) (*scope.Filter, error) {
	f := new(scope.Filter)
	if v := params["classId"]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, apperrors.NewValidation("classId", "must be an integer")
		}
		f.And("attendances.class_id = ?", n)
	}
	if v := params["studentId"]; v != "" {
		f.And("attendances.student_id = ?", v)
	}
	switch role {
	case scope.RoleTeacher:
		f.And("attendances.class_id IN (SELECT class_id FROM lessons WHERE lessons.teacher_id = ?)", userID)
	case scope.RoleStudent:
		f.And("attendances.class_id IN (SELECT class_id FROM students WHERE students.id = ?)", userID)
	case scope.RoleParent:
		f.And("attendances.class_id IN (SELECT class_id FROM students WHERE students.parent_id = ?)", userID)
	}
	return f, nil
}

func (s *attendanceService) List(ctx context.Context, role scope.Role, userID string, params map[string]string, page int) ([]dto.AttendanceResponse, int64, error) {
	f, err := attendanceFilter(role, userID, params)
	if err != nil {
		return nil, 0, err
	}
	attendances, total, err := s.repo.Attendance.List(ctx, f, pageOffset(page, s.pageSize), s.pageSize)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.AttendanceResponse, len(attendances))
	for i := range attendances {
		out[i] = *toAttendanceResponse(&attendances[i])
	}
	return out, total, nil
}

func (s *attendanceService) ListGroups(ctx context.Context, role scope.Role, userID string, params map[string]string) ([]dto.AttendanceGroup, error) {
	f, err := attendanceFilter(role, userID, params)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.Attendance.ListAll(ctx, f)
	if err != nil {
		return nil, err
	}
	return GroupAttendance(rows), nil
}

func (s *attendanceService) DeleteGroup(ctx context.Context, req *dto.DeleteAttendanceGroupRequest) (int64, error) {
	deleted, err := s.repo.Attendance.DeleteGroup(ctx, req.ClassID, req.Date, req.Present, req.Capacity)
	if err != nil {
		s.logger.Error("delete attendance group failed", zap.Error(err))
		return 0, err
	}
	return deleted, nil
}

// attendanceKey is the roll-call session identity.
type attendanceKey struct {
	day      time.Time
	present  bool
	capacity int
}

// GroupAttendance collapses per-student rows into roll-call sessions keyed
// by calendar day, presence flag and capacity. Student names accumulate in
// input order, duplicates kept; a row with no student extends its group
// without adding a name. Group order is first occurrence.
func GroupAttendance(rows []model.Attendance) []dto.AttendanceGroup {
	groups := make([]dto.AttendanceGroup, 0)
	index := make(map[attendanceKey]int)

	for _, row := range rows {
		day := time.Date(row.Date.Year(), row.Date.Month(), row.Date.Day(), 0, 0, 0, 0, row.Date.Location())
		key := attendanceKey{day: day, present: row.Present, capacity: row.Capacity}

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, dto.AttendanceGroup{
				Date:     day,
				Present:  row.Present,
				Capacity: row.Capacity,
			})
		}
		if row.Student != nil {
			groups[i].StudentNames = append(groups[i].StudentNames, row.Student.Name+" "+row.Student.Surname)
		}
		groups[i].RecordIDs = append(groups[i].RecordIDs, row.ID)
	}
	return groups
}

func toAttendanceResponse(a *model.Attendance) *dto.AttendanceResponse {
	resp := &dto.AttendanceResponse{
		ID:        a.ID,
		Date:      a.Date,
		Present:   a.Present,
		Capacity:  a.Capacity,
		ClassID:   a.ClassID,
		StudentID: a.StudentID,
	}
	if a.Student != nil {
		resp.Student = toPersonBrief(a.Student.ID, a.Student.Name, a.Student.Surname)
	}
	return resp
}

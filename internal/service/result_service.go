package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/dto"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/model"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/repository"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/scope"
	apperrors "github.com/NguyenMaiPhuong311/ISD-Final/pkg/errors"
)

var ErrResultNotFound = errors.New("result not found")

// ResultService is the results business interface. A result scores exactly
// one of an exam or an assignment.
type ResultService interface {
	Create(ctx context.Context, role scope.Role, userID string, req *dto.CreateResultRequest) (*dto.ResultResponse, error)
	GetByID(ctx context.Context, id int) (*dto.ResultResponse, error)
	Update(ctx context.Context, role scope.Role, userID string, id int, req *dto.UpdateResultRequest) (*dto.ResultResponse, error)
	Delete(ctx context.Context, role scope.Role, userID string, id int) error
	List(ctx context.Context, role scope.Role, userID string, params map[string]string, page int) ([]dto.ResultResponse, int64, error)
}

type resultService struct {
	repo     *repository.Repository
	pageSize int
	logger   *zap.Logger
}

// NewResultService creates a ResultService instance.
func NewResultService(repo *repository.Repository, pageSize int, logger *zap.Logger) ResultService {
	return &resultService{repo: repo, pageSize: pageSize, logger: logger}
}

// resolveAssessment validates the exam-xor-assignment rule and enforces
// teacher ownership of the underlying lesson.
func (s *resultService) resolveAssessment(ctx context.Context, role scope.Role, userID string, examID, assignmentID *int) error {
	if (examID == nil) == (assignmentID == nil) {
		return apperrors.NewValidation("exam_id", "exactly one of exam_id and assignment_id is required")
	}
	if examID != nil {
		exam, err := s.repo.Exam.GetByID(ctx, *examID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrExamNotFound
			}
			return err
		}
		return requireOwnLesson(ctx, s.repo, role, userID, exam.LessonID)
	}
	assignment, err := s.repo.Assignment.GetByID(ctx, *assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssignmentNotFound
		}
		return err
	}
	return requireOwnLesson(ctx, s.repo, role, userID, assignment.LessonID)
}

func (s *resultService) Create(ctx context.Context, role scope.Role, userID string, req *dto.CreateResultRequest) (*dto.ResultResponse, error) {
	if err := s.resolveAssessment(ctx, role, userID, req.ExamID, req.AssignmentID); err != nil {
		return nil, err
	}

	result := &model.Result{
		Score:        req.Score,
		ExamID:       req.ExamID,
		AssignmentID: req.AssignmentID,
		StudentID:    req.StudentID,
	}
	if err := s.repo.Result.Create(ctx, result); err != nil {
		s.logger.Error("create result failed", zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, result.ID)
}

func (s *resultService) GetByID(ctx context.Context, id int) (*dto.ResultResponse, error) {
	result, err := s.repo.Result.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, err
	}
	return toResultResponse(result), nil
}

func (s *resultService) Update(ctx context.Context, role scope.Role, userID string, id int, req *dto.UpdateResultRequest) (*dto.ResultResponse, error) {
	result, err := s.repo.Result.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, err
	}
	if err := s.resolveAssessment(ctx, role, userID, req.ExamID, req.AssignmentID); err != nil {
		return nil, err
	}

	result.Score = req.Score
	result.ExamID = req.ExamID
	result.AssignmentID = req.AssignmentID
	result.StudentID = req.StudentID
	result.Exam = nil
	result.Assignment = nil
	result.Student = nil
	if err := s.repo.Result.Update(ctx, result); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *resultService) Delete(ctx context.Context, role scope.Role, userID string, id int) error {
	result, err := s.repo.Result.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResultNotFound
		}
		return err
	}
	if err := s.resolveAssessment(ctx, role, userID, result.ExamID, result.AssignmentID); err != nil {
		return err
	}
	return s.repo.Result.Delete(ctx, id)
}

func (s *resultService) List(ctx context.Context, role scope.Role, userID string, params map[string]string, page int) ([]dto.ResultResponse, int64, error) {
	f, err := scope.Build(scope.EntityResult, role, userID, params)
	if err != nil {
		return nil, 0, err
	}
	results, total, err := s.repo.Result.List(ctx, f, pageOffset(page, s.pageSize), s.pageSize)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.ResultResponse, len(results))
	for i := range results {
		out[i] = *toResultResponse(&results[i])
	}
	return out, total, nil
}

// toResultResponse flattens the scored assessment's lesson context into
// the listing row.
func toResultResponse(r *model.Result) *dto.ResultResponse {
	resp := &dto.ResultResponse{
		ID:           r.ID,
		Score:        r.Score,
		StudentID:    r.StudentID,
		ExamID:       r.ExamID,
		AssignmentID: r.AssignmentID,
	}

	var lesson *model.Lesson
	switch {
	case r.Exam != nil:
		resp.Title = r.Exam.Title
		resp.StartTime = r.Exam.StartTime
		lesson = r.Exam.Lesson
	case r.Assignment != nil:
		resp.Title = r.Assignment.Title
		resp.StartTime = r.Assignment.StartDate
		lesson = r.Assignment.Lesson
	}
	if lesson != nil {
		if lesson.Teacher != nil {
			resp.TeacherName = lesson.Teacher.Name + " " + lesson.Teacher.Surname
		}
		if lesson.Class != nil {
			resp.ClassName = lesson.Class.Name
		}
	}
	if r.Student != nil {
		resp.Student = toPersonBrief(r.Student.ID, r.Student.Name, r.Student.Surname)
	}
	return resp
}

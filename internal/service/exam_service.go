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
)

var ErrExamNotFound = errors.New("exam not found")

// ExamService is the exams business interface. Teachers may only schedule
// exams for their own lessons.
type ExamService interface {
	Create(ctx context.Context, role scope.Role, userID string, req *dto.CreateExamRequest) (*dto.ExamResponse, error)
	GetByID(ctx context.Context, id int) (*dto.ExamResponse, error)
	Update(ctx context.Context, role scope.Role, userID string, id int, req *dto.UpdateExamRequest) (*dto.ExamResponse, error)
	Delete(ctx context.Context, role scope.Role, userID string, id int) error
	List(ctx context.Context, role scope.Role, userID string, params map[string]string, page int) ([]dto.ExamResponse, int64, error)
}

type examService struct {
	repo     *repository.Repository
	pageSize int
	logger   *zap.Logger
}

// NewExamService creates an ExamService instance.
func NewExamService(repo *repository.Repository, pageSize int, logger *zap.Logger) ExamService {
	return &examService{repo: repo, pageSize: pageSize, logger: logger}
}

// requireOwnLesson resolves the lesson and enforces teacher ownership.
func requireOwnLesson(ctx context.Context, repo *repository.Repository, role scope.Role, userID string, lessonID int) error {
	lesson, err := repo.Lesson.GetByID(ctx, lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLessonNotFound
		}
		return err
	}
	if role == scope.RoleTeacher && lesson.TeacherID != userID {
		return ErrNotLessonOwner
	}
	return nil
}

func (s *examService) Create(ctx context.Context, role scope.Role, userID string, req *dto.CreateExamRequest) (*dto.ExamResponse, error) {
	if err := requireOwnLesson(ctx, s.repo, role, userID, req.LessonID); err != nil {
		return nil, err
	}

	exam := &model.Exam{
		Title:     req.Title,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		LessonID:  req.LessonID,
	}
	if err := s.repo.Exam.Create(ctx, exam); err != nil {
		s.logger.Error("create exam failed", zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, exam.ID)
}

func (s *examService) GetByID(ctx context.Context, id int) (*dto.ExamResponse, error) {
	exam, err := s.repo.Exam.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, err
	}
	return toExamResponse(exam), nil
}

func (s *examService) Update(ctx context.Context, role scope.Role, userID string, id int, req *dto.UpdateExamRequest) (*dto.ExamResponse, error) {
	exam, err := s.repo.Exam.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, err
	}
	if err := requireOwnLesson(ctx, s.repo, role, userID, exam.LessonID); err != nil {
		return nil, err
	}
	if req.LessonID != exam.LessonID {
		if err := requireOwnLesson(ctx, s.repo, role, userID, req.LessonID); err != nil {
			return nil, err
		}
	}

	exam.Title = req.Title
	exam.StartTime = req.StartTime
	exam.EndTime = req.EndTime
	exam.LessonID = req.LessonID
	exam.Lesson = nil
	if err := s.repo.Exam.Update(ctx, exam); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *examService) Delete(ctx context.Context, role scope.Role, userID string, id int) error {
	exam, err := s.repo.Exam.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExamNotFound
		}
		return err
	}
	if err := requireOwnLesson(ctx, s.repo, role, userID, exam.LessonID); err != nil {
		return err
	}
	return s.repo.Exam.Delete(ctx, id)
}

func (s *examService) List(ctx context.Context, role scope.Role, userID string, params map[string]string, page int) ([]dto.ExamResponse, int64, error) {
	f, err := scope.Build(scope.EntityExam, role, userID, params)
	if err != nil {
		return nil, 0, err
	}
	exams, total, err := s.repo.Exam.List(ctx, f, pageOffset(page, s.pageSize), s.pageSize)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.ExamResponse, len(exams))
	for i := range exams {
		out[i] = *toExamResponse(&exams[i])
	}
	return out, total, nil
}

func toExamResponse(e *model.Exam) *dto.ExamResponse {
	resp := &dto.ExamResponse{
		ID:        e.ID,
		Title:     e.Title,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		LessonID:  e.LessonID,
	}
	if e.Lesson != nil {
		resp.Lesson = toLessonResponse(e.Lesson)
	}
	return resp
}

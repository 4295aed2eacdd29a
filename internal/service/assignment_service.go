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

var ErrAssignmentNotFound = errors.New("assignment not found")

// AssignmentService is the assignments business interface. Teachers may
// only manage assignments of their own lessons.
type AssignmentService interface {
	Create(ctx context.Context, role scope.Role, userID string, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error)
	GetByID(ctx context.Context, id int) (*dto.AssignmentResponse, error)
	Update(ctx context.Context, role scope.Role, userID string, id int, req *dto.UpdateAssignmentRequest) (*dto.AssignmentResponse, error)
	Delete(ctx context.Context, role scope.Role, userID string, id int) error
	List(ctx context.Context, role scope.Role, userID string, params map[string]string, page int) ([]dto.AssignmentResponse, int64, error)
}

type assignmentService struct {
	repo     *repository.Repository
	pageSize int
	logger   *zap.Logger
}

// NewAssignmentService creates an AssignmentService instance.
func NewAssignmentService(repo *repository.Repository, pageSize int, logger *zap.Logger) AssignmentService {
	return &assignmentService{repo: repo, pageSize: pageSize, logger: logger}
}

func (s *assignmentService) Create(ctx context.Context, role scope.Role, userID string, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	if err := requireOwnLesson(ctx, s.repo, role, userID, req.LessonID); err != nil {
		return nil, err
	}

	assignment := &model.Assignment{
		Title:     req.Title,
		StartDate: req.StartDate,
		DueDate:   req.DueDate,
		LessonID:  req.LessonID,
		FileURL:   req.FileURL,
	}
	if err := s.repo.Assignment.Create(ctx, assignment); err != nil {
		s.logger.Error("create assignment failed", zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, assignment.ID)
}

func (s *assignmentService) GetByID(ctx context.Context, id int) (*dto.AssignmentResponse, error) {
	assignment, err := s.repo.Assignment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return toAssignmentResponse(assignment), nil
}

func (s *assignmentService) Update(ctx context.Context, role scope.Role, userID string, id int, req *dto.UpdateAssignmentRequest) (*dto.AssignmentResponse, error) {
	assignment, err := s.repo.Assignment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	if err := requireOwnLesson(ctx, s.repo, role, userID, assignment.LessonID); err != nil {
		return nil, err
	}
	if req.LessonID != assignment.LessonID {
		if err := requireOwnLesson(ctx, s.repo, role, userID, req.LessonID); err != nil {
			return nil, err
		}
	}

	assignment.Title = req.Title
	assignment.StartDate = req.StartDate
	assignment.DueDate = req.DueDate
	assignment.LessonID = req.LessonID
	assignment.FileURL = req.FileURL
	assignment.Lesson = nil
	assignment.Submissions = nil
	if err := s.repo.Assignment.Update(ctx, assignment); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *assignmentService) Delete(ctx context.Context, role scope.Role, userID string, id int) error {
	assignment, err := s.repo.Assignment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssignmentNotFound
		}
		return err
	}
	if err := requireOwnLesson(ctx, s.repo, role, userID, assignment.LessonID); err != nil {
		return err
	}
	return s.repo.Assignment.Delete(ctx, id)
}

func (s *assignmentService) List(ctx context.Context, role scope.Role, userID string, params map[string]string, page int) ([]dto.AssignmentResponse, int64, error) {
	f, err := scope.Build(scope.EntityAssignment, role, userID, params)
	if err != nil {
		return nil, 0, err
	}
	assignments, total, err := s.repo.Assignment.List(ctx, f, pageOffset(page, s.pageSize), s.pageSize)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.AssignmentResponse, len(assignments))
	for i := range assignments {
		out[i] = *toAssignmentResponse(&assignments[i])
	}
	return out, total, nil
}

func toAssignmentResponse(a *model.Assignment) *dto.AssignmentResponse {
	resp := &dto.AssignmentResponse{
		ID:        a.ID,
		Title:     a.Title,
		StartDate: a.StartDate,
		DueDate:   a.DueDate,
		LessonID:  a.LessonID,
		FileURL:   a.FileURL,
	}
	if a.Lesson != nil {
		resp.Lesson = toLessonResponse(a.Lesson)
	}
	return resp
}

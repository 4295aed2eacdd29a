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

var (
	ErrGradeNotFound = errors.New("grade not found")
	ErrClassNotFound = errors.New("class not found")
)

// GradeService is the grades business interface.
type GradeService interface {
	Create(ctx context.Context, req *dto.CreateGradeRequest) (*dto.GradeResponse, error)
	GetByID(ctx context.Context, id int) (*dto.GradeResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateGradeRequest) (*dto.GradeResponse, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, page int) ([]dto.GradeResponse, int64, error)
}

type gradeService struct {
	repo     *repository.Repository
	pageSize int
	logger   *zap.Logger
}

// NewGradeService creates a GradeService instance.
func NewGradeService(repo *repository.Repository, pageSize int, logger *zap.Logger) GradeService {
	return &gradeService{repo: repo, pageSize: pageSize, logger: logger}
}

func (s *gradeService) Create(ctx context.Context, req *dto.CreateGradeRequest) (*dto.GradeResponse, error) {
	grade := &model.Grade{Level: req.Level}
	if err := s.repo.Grade.Create(ctx, grade); err != nil {
		s.logger.Error("create grade failed", zap.Error(err))
		return nil, err
	}
	return toGradeResponse(grade), nil
}

func (s *gradeService) GetByID(ctx context.Context, id int) (*dto.GradeResponse, error) {
	grade, err := s.repo.Grade.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGradeNotFound
		}
		return nil, err
	}
	return toGradeResponse(grade), nil
}

func (s *gradeService) Update(ctx context.Context, id int, req *dto.UpdateGradeRequest) (*dto.GradeResponse, error) {
	grade, err := s.repo.Grade.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGradeNotFound
		}
		return nil, err
	}
	if req.Level != nil {
		grade.Level = *req.Level
	}
	if err := s.repo.Grade.Update(ctx, grade); err != nil {
		return nil, err
	}
	return toGradeResponse(grade), nil
}

func (s *gradeService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.Grade.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGradeNotFound
		}
		return err
	}
	return s.repo.Grade.Delete(ctx, id)
}

func (s *gradeService) List(ctx context.Context, page int) ([]dto.GradeResponse, int64, error) {
	grades, total, err := s.repo.Grade.List(ctx, nil, pageOffset(page, s.pageSize), s.pageSize)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.GradeResponse, len(grades))
	for i := range grades {
		out[i] = *toGradeResponse(&grades[i])
	}
	return out, total, nil
}

// ClassService is the classes business interface.
type ClassService interface {
	Create(ctx context.Context, req *dto.CreateClassRequest) (*dto.ClassResponse, error)
	GetByID(ctx context.Context, id int) (*dto.ClassResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateClassRequest) (*dto.ClassResponse, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, role scope.Role, userID string, params map[string]string, page int) ([]dto.ClassResponse, int64, error)
}

type classService struct {
	repo     *repository.Repository
	pageSize int
	logger   *zap.Logger
}

// NewClassService creates a ClassService instance.
func NewClassService(repo *repository.Repository, pageSize int, logger *zap.Logger) ClassService {
	return &classService{repo: repo, pageSize: pageSize, logger: logger}
}

func (s *classService) Create(ctx context.Context, req *dto.CreateClassRequest) (*dto.ClassResponse, error) {
	if _, err := s.repo.Grade.GetByID(ctx, req.GradeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGradeNotFound
		}
		return nil, err
	}

	class := &model.Class{
		Name:         req.Name,
		Capacity:     req.Capacity,
		GradeID:      req.GradeID,
		SupervisorID: req.SupervisorID,
	}
	if err := s.repo.Class.Create(ctx, class); err != nil {
		s.logger.Error("create class failed", zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, class.ID)
}

func (s *classService) GetByID(ctx context.Context, id int) (*dto.ClassResponse, error) {
	class, err := s.repo.Class.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	counts, err := s.repo.Class.CountStudents(ctx, []int{class.ID})
	if err != nil {
		return nil, err
	}
	return toClassResponse(class, counts[class.ID]), nil
}

func (s *classService) Update(ctx context.Context, id int, req *dto.UpdateClassRequest) (*dto.ClassResponse, error) {
	class, err := s.repo.Class.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	if req.Name != nil {
		class.Name = *req.Name
	}
	if req.Capacity != nil {
		class.Capacity = *req.Capacity
	}
	if req.GradeID != nil {
		if _, err := s.repo.Grade.GetByID(ctx, *req.GradeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrGradeNotFound
			}
			return nil, err
		}
		class.GradeID = *req.GradeID
	}
	if req.SupervisorID != nil {
		class.SupervisorID = req.SupervisorID
	}
	// Save would write preloaded associations back
	class.Grade = nil
	class.Supervisor = nil
	if err := s.repo.Class.Update(ctx, class); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *classService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.Class.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassNotFound
		}
		return err
	}
	return s.repo.Class.Delete(ctx, id)
}

func (s *classService) List(ctx context.Context, role scope.Role, userID string, params map[string]string, page int) ([]dto.ClassResponse, int64, error) {
	f, err := scope.Build(scope.EntityClass, role, userID, params)
	if err != nil {
		return nil, 0, err
	}

	classes, total, err := s.repo.Class.List(ctx, f, pageOffset(page, s.pageSize), s.pageSize)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]int, len(classes))
	for i := range classes {
		ids[i] = classes[i].ID
	}
	counts, err := s.repo.Class.CountStudents(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.ClassResponse, len(classes))
	for i := range classes {
		out[i] = *toClassResponse(&classes[i], counts[classes[i].ID])
	}
	return out, total, nil
}

// --- mappers ---

func toGradeResponse(g *model.Grade) *dto.GradeResponse {
	return &dto.GradeResponse{ID: g.ID, Level: g.Level}
}

func toClassResponse(c *model.Class, studentCount int64) *dto.ClassResponse {
	resp := &dto.ClassResponse{
		ID:           c.ID,
		Name:         c.Name,
		Capacity:     c.Capacity,
		GradeID:      c.GradeID,
		SupervisorID: c.SupervisorID,
		StudentCount: studentCount,
	}
	if c.Grade != nil {
		resp.Grade = toGradeResponse(c.Grade)
	}
	if c.Supervisor != nil {
		resp.Supervisor = toPersonBrief(c.Supervisor.ID, c.Supervisor.Name, c.Supervisor.Surname)
	}
	return resp
}

func toPersonBrief(id, name, surname string) *dto.PersonBrief {
	return &dto.PersonBrief{ID: id, Name: name, Surname: surname}
}

// pageOffset converts a 1-based page number into a row offset.
func pageOffset(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}

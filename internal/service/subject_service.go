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

var ErrSubjectNotFound = errors.New("subject not found")

// SubjectService is the subjects business interface.
type SubjectService interface {
	Create(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error)
	GetByID(ctx context.Context, id int) (*dto.SubjectResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateSubjectRequest) (*dto.SubjectResponse, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, params map[string]string, page int) ([]dto.SubjectResponse, int64, error)
}

type subjectService struct {
	repo     *repository.Repository
	pageSize int
	logger   *zap.Logger
}

// NewSubjectService creates a SubjectService instance.
func NewSubjectService(repo *repository.Repository, pageSize int, logger *zap.Logger) SubjectService {
	return &subjectService{repo: repo, pageSize: pageSize, logger: logger}
}

func (s *subjectService) Create(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error) {
	subject := &model.Subject{
		Name:     req.Name,
		Teachers: teacherRefs(req.TeacherIDs),
	}
	if err := s.repo.Subject.Create(ctx, subject); err != nil {
		s.logger.Error("create subject failed", zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, subject.ID)
}

func (s *subjectService) GetByID(ctx context.Context, id int) (*dto.SubjectResponse, error) {
	subject, err := s.repo.Subject.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, err
	}
	return toSubjectResponse(subject), nil
}

func (s *subjectService) Update(ctx context.Context, id int, req *dto.UpdateSubjectRequest) (*dto.SubjectResponse, error) {
	subject, err := s.repo.Subject.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, err
	}
	subject.Name = req.Name
	subject.Teachers = nil
	if err := s.repo.Subject.Update(ctx, subject, teacherRefs(req.TeacherIDs)); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *subjectService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.Subject.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubjectNotFound
		}
		return err
	}
	return s.repo.Subject.Delete(ctx, id)
}

func (s *subjectService) List(ctx context.Context, params map[string]string, page int) ([]dto.SubjectResponse, int64, error) {
	var f *scope.Filter
	if search := params["search"]; search != "" {
		f = new(scope.Filter).And("subjects.name ILIKE ?", "%"+search+"%")
	}

	subjects, total, err := s.repo.Subject.List(ctx, f, pageOffset(page, s.pageSize), s.pageSize)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.SubjectResponse, len(subjects))
	for i := range subjects {
		out[i] = *toSubjectResponse(&subjects[i])
	}
	return out, total, nil
}

// teacherRefs builds primary-key-only teacher rows for association writes.
func teacherRefs(ids []string) []model.Teacher {
	teachers := make([]model.Teacher, len(ids))
	for i, id := range ids {
		teachers[i] = model.Teacher{ID: id}
	}
	return teachers
}

func toSubjectResponse(s *model.Subject) *dto.SubjectResponse {
	resp := &dto.SubjectResponse{ID: s.ID, Name: s.Name}
	for _, t := range s.Teachers {
		resp.Teachers = append(resp.Teachers, *toPersonBrief(t.ID, t.Name, t.Surname))
	}
	return resp
}

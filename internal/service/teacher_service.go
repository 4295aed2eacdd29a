package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/dto"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/model"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/repository"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/scope"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/identity"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/redis"
)

var (
	ErrTeacherNotFound = errors.New("teacher not found")
	ErrUsernameTaken   = errors.New("username already taken")
)

// TeacherService is the teachers business interface. Account credentials
// live in the identity provider; the local row carries the profile.
type TeacherService interface {
	Create(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.TeacherResponse, error)
	GetByID(ctx context.Context, id string) (*dto.TeacherResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateTeacherRequest) (*dto.TeacherResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, role scope.Role, userID string, params map[string]string, page int) ([]dto.TeacherResponse, int64, error)
}

type teacherService struct {
	repo     *repository.Repository
	idp      identity.Provider
	rdb      *redis.Client
	tokenTTL time.Duration
	pageSize int
	logger   *zap.Logger
}

// NewTeacherService creates a TeacherService instance.
func NewTeacherService(repo *repository.Repository, idp identity.Provider, rdb *redis.Client, tokenTTL time.Duration, pageSize int, logger *zap.Logger) TeacherService {
	return &teacherService{repo: repo, idp: idp, rdb: rdb, tokenTTL: tokenTTL, pageSize: pageSize, logger: logger}
}

func (s *teacherService) Create(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.TeacherResponse, error) {
	// provider first: it owns the account id
	user, err := s.idp.CreateUser(ctx, identity.CreateUserRequest{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.Name,
		LastName:  req.Surname,
		Role:      string(scope.RoleTeacher),
	})
	if err != nil {
		if errors.Is(err, identity.ErrConflict) {
			return nil, ErrUsernameTaken
		}
		s.logger.Error("identity create failed", zap.Error(err))
		return nil, err
	}

	teacher := &model.Teacher{
		ID:        user.ID,
		Username:  req.Username,
		Name:      req.Name,
		Surname:   req.Surname,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Img:       req.Img,
		BloodType: req.BloodType,
		Sex:       req.Sex,
		Birthday:  req.Birthday,
	}
	if err := s.repo.Teacher.Create(ctx, teacher); err != nil {
		s.logger.Error("create teacher failed, removing identity account",
			zap.String("id", user.ID), zap.Error(err))
		if derr := s.idp.DeleteUser(ctx, user.ID); derr != nil {
			s.logger.Error("compensating identity delete failed",
				zap.String("id", user.ID), zap.Error(derr))
		}
		return nil, err
	}

	if len(req.SubjectIDs) > 0 {
		if err := s.repo.Teacher.ReplaceSubjects(ctx, teacher, subjectRefs(req.SubjectIDs)); err != nil {
			return nil, err
		}
	}
	return s.GetByID(ctx, teacher.ID)
}

func (s *teacherService) GetByID(ctx context.Context, id string) (*dto.TeacherResponse, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}
	return toTeacherResponse(teacher), nil
}

func (s *teacherService) Update(ctx context.Context, id string, req *dto.UpdateTeacherRequest) (*dto.TeacherResponse, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}

	err = s.idp.UpdateUser(ctx, id, identity.UpdateUserRequest{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.Name,
		LastName:  req.Surname,
	})
	if err != nil {
		if errors.Is(err, identity.ErrConflict) {
			return nil, ErrUsernameTaken
		}
		s.logger.Error("identity update failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	teacher.Username = req.Username
	teacher.Name = req.Name
	teacher.Surname = req.Surname
	teacher.Email = req.Email
	teacher.Phone = req.Phone
	teacher.Address = req.Address
	teacher.Img = req.Img
	teacher.BloodType = req.BloodType
	teacher.Sex = req.Sex
	teacher.Birthday = req.Birthday
	if err := s.repo.Teacher.Update(ctx, teacher); err != nil {
		return nil, err
	}
	if err := s.repo.Teacher.ReplaceSubjects(ctx, teacher, subjectRefs(req.SubjectIDs)); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *teacherService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Teacher.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeacherNotFound
		}
		return err
	}

	if err := s.idp.DeleteUser(ctx, id); err != nil && !errors.Is(err, identity.ErrNotFound) {
		s.logger.Error("identity delete failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if err := s.repo.Teacher.Delete(ctx, id); err != nil {
		return err
	}
	revokeTokens(ctx, s.rdb, id, s.tokenTTL, s.logger)
	return nil
}

func (s *teacherService) List(ctx context.Context, role scope.Role, userID string, params map[string]string, page int) ([]dto.TeacherResponse, int64, error) {
	f, err := scope.Build(scope.EntityTeacher, role, userID, params)
	if err != nil {
		return nil, 0, err
	}
	teachers, total, err := s.repo.Teacher.List(ctx, f, pageOffset(page, s.pageSize), s.pageSize)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.TeacherResponse, len(teachers))
	for i := range teachers {
		out[i] = *toTeacherResponse(&teachers[i])
	}
	return out, total, nil
}

// revokeTokens invalidates every outstanding token of the account. Without
// redis the tokens simply age out.
func revokeTokens(ctx context.Context, rdb *redis.Client, userID string, ttl time.Duration, logger *zap.Logger) {
	if rdb == nil {
		return
	}
	if err := rdb.RevokeUser(ctx, userID, ttl); err != nil {
		logger.Warn("token revocation failed", zap.String("id", userID), zap.Error(err))
	}
}

// subjectRefs builds primary-key-only subject rows for association writes.
func subjectRefs(ids []int) []model.Subject {
	subjects := make([]model.Subject, len(ids))
	for i, id := range ids {
		subjects[i] = model.Subject{ID: id}
	}
	return subjects
}

func toTeacherResponse(t *model.Teacher) *dto.TeacherResponse {
	resp := &dto.TeacherResponse{
		ID:        t.ID,
		Username:  t.Username,
		Name:      t.Name,
		Surname:   t.Surname,
		Email:     t.Email,
		Phone:     t.Phone,
		Address:   t.Address,
		Img:       t.Img,
		BloodType: t.BloodType,
		Sex:       t.Sex,
		Birthday:  t.Birthday,
	}
	for _, sub := range t.Subjects {
		resp.Subjects = append(resp.Subjects, dto.SubjectResponse{ID: sub.ID, Name: sub.Name})
	}
	return resp
}

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

var ErrParentNotFound = errors.New("parent not found")

// ParentService is the parents business interface.
type ParentService interface {
	Create(ctx context.Context, req *dto.CreateParentRequest) (*dto.ParentResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ParentResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateParentRequest) (*dto.ParentResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, role scope.Role, userID string, params map[string]string, page int) ([]dto.ParentResponse, int64, error)
}

type parentService struct {
	repo     *repository.Repository
	idp      identity.Provider
	rdb      *redis.Client
	tokenTTL time.Duration
	pageSize int
	logger   *zap.Logger
}

// NewParentService creates a ParentService instance.
func NewParentService(repo *repository.Repository, idp identity.Provider, rdb *redis.Client, tokenTTL time.Duration, pageSize int, logger *zap.Logger) ParentService {
	return &parentService{repo: repo, idp: idp, rdb: rdb, tokenTTL: tokenTTL, pageSize: pageSize, logger: logger}
}

func (s *parentService) Create(ctx context.Context, req *dto.CreateParentRequest) (*dto.ParentResponse, error) {
	user, err := s.idp.CreateUser(ctx, identity.CreateUserRequest{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.Name,
		LastName:  req.Surname,
		Role:      string(scope.RoleParent),
	})
	if err != nil {
		if errors.Is(err, identity.ErrConflict) {
			return nil, ErrUsernameTaken
		}
		s.logger.Error("identity create failed", zap.Error(err))
		return nil, err
	}

	parent := &model.Parent{
		ID:       user.ID,
		Username: req.Username,
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
	}
	if err := s.repo.Parent.Create(ctx, parent); err != nil {
		s.logger.Error("create parent failed, removing identity account",
			zap.String("id", user.ID), zap.Error(err))
		if derr := s.idp.DeleteUser(ctx, user.ID); derr != nil {
			s.logger.Error("compensating identity delete failed",
				zap.String("id", user.ID), zap.Error(derr))
		}
		return nil, err
	}
	return toParentResponse(parent), nil
}

func (s *parentService) GetByID(ctx context.Context, id string) (*dto.ParentResponse, error) {
	parent, err := s.repo.Parent.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParentNotFound
		}
		return nil, err
	}
	return toParentResponse(parent), nil
}

func (s *parentService) Update(ctx context.Context, id string, req *dto.UpdateParentRequest) (*dto.ParentResponse, error) {
	parent, err := s.repo.Parent.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParentNotFound
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

	parent.Username = req.Username
	parent.Name = req.Name
	parent.Surname = req.Surname
	parent.Email = req.Email
	parent.Phone = req.Phone
	parent.Address = req.Address
	parent.Students = nil
	if err := s.repo.Parent.Update(ctx, parent); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *parentService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Parent.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrParentNotFound
		}
		return err
	}

	if err := s.idp.DeleteUser(ctx, id); err != nil && !errors.Is(err, identity.ErrNotFound) {
		s.logger.Error("identity delete failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if err := s.repo.Parent.Delete(ctx, id); err != nil {
		return err
	}
	revokeTokens(ctx, s.rdb, id, s.tokenTTL, s.logger)
	return nil
}

func (s *parentService) List(ctx context.Context, role scope.Role, userID string, params map[string]string, page int) ([]dto.ParentResponse, int64, error) {
	f, err := scope.Build(scope.EntityParent, role, userID, params)
	if err != nil {
		return nil, 0, err
	}
	parents, total, err := s.repo.Parent.List(ctx, f, pageOffset(page, s.pageSize), s.pageSize)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.ParentResponse, len(parents))
	for i := range parents {
		out[i] = *toParentResponse(&parents[i])
	}
	return out, total, nil
}

func toParentResponse(p *model.Parent) *dto.ParentResponse {
	resp := &dto.ParentResponse{
		ID:       p.ID,
		Username: p.Username,
		Name:     p.Name,
		Surname:  p.Surname,
		Email:    p.Email,
		Phone:    p.Phone,
		Address:  p.Address,
	}
	for _, st := range p.Students {
		resp.Students = append(resp.Students, *toPersonBrief(st.ID, st.Name, st.Surname))
	}
	return resp
}

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

var ErrAnnouncementNotFound = errors.New("announcement not found")

// AnnouncementService is the announcements business interface.
type AnnouncementService interface {
	Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	GetByID(ctx context.Context, id int) (*dto.AnnouncementResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, role scope.Role, userID string, params map[string]string, page int) ([]dto.AnnouncementResponse, int64, error)
}

type announcementService struct {
	repo     *repository.Repository
	pageSize int
	logger   *zap.Logger
}

// NewAnnouncementService creates an AnnouncementService instance.
func NewAnnouncementService(repo *repository.Repository, pageSize int, logger *zap.Logger) AnnouncementService {
	return &announcementService{repo: repo, pageSize: pageSize, logger: logger}
}

func (s *announcementService) Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	if req.ClassID != nil {
		if _, err := s.repo.Class.GetByID(ctx, *req.ClassID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrClassNotFound
			}
			return nil, err
		}
	}

	announcement := &model.Announcement{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		ClassID:     req.ClassID,
	}
	if err := s.repo.Announcement.Create(ctx, announcement); err != nil {
		s.logger.Error("create announcement failed", zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, announcement.ID)
}

func (s *announcementService) GetByID(ctx context.Context, id int) (*dto.AnnouncementResponse, error) {
	announcement, err := s.repo.Announcement.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		return nil, err
	}
	return toAnnouncementResponse(announcement), nil
}

func (s *announcementService) Update(ctx context.Context, id int, req *dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	announcement, err := s.repo.Announcement.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		return nil, err
	}
	if req.ClassID != nil {
		if _, err := s.repo.Class.GetByID(ctx, *req.ClassID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrClassNotFound
			}
			return nil, err
		}
	}

	announcement.Title = req.Title
	announcement.Description = req.Description
	announcement.Date = req.Date
	announcement.ClassID = req.ClassID
	announcement.Class = nil
	if err := s.repo.Announcement.Update(ctx, announcement); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *announcementService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.Announcement.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAnnouncementNotFound
		}
		return err
	}
	return s.repo.Announcement.Delete(ctx, id)
}

func (s *announcementService) List(ctx context.Context, role scope.Role, userID string, params map[string]string, page int) ([]dto.AnnouncementResponse, int64, error) {
	f, err := scope.Build(scope.EntityAnnouncement, role, userID, params)
	if err != nil {
		return nil, 0, err
	}
	announcements, total, err := s.repo.Announcement.List(ctx, f, pageOffset(page, s.pageSize), s.pageSize)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.AnnouncementResponse, len(announcements))
	for i := range announcements {
		out[i] = *toAnnouncementResponse(&announcements[i])
	}
	return out, total, nil
}

func toAnnouncementResponse(a *model.Announcement) *dto.AnnouncementResponse {
	resp := &dto.AnnouncementResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Date:        a.Date,
		ClassID:     a.ClassID,
	}
	if a.Class != nil {
		resp.Class = &dto.ClassBrief{ID: a.Class.ID, Name: a.Class.Name}
	}
	return resp
}

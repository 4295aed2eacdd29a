package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/model"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/scope"
)

// AnnouncementRepository is the announcements data-access interface.
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *model.Announcement) error
	GetByID(ctx context.Context, id int) (*model.Announcement, error)
	Update(ctx context.Context, announcement *model.Announcement) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Announcement, int64, error)
}

type announcementRepo struct {
	db *gorm.DB
}

// NewAnnouncementRepo creates an AnnouncementRepository instance.
func NewAnnouncementRepo(db *gorm.DB) AnnouncementRepository {
	return &announcementRepo{db: db}
}

func (r *announcementRepo) Create(ctx context.Context, announcement *model.Announcement) error {
	return r.db.WithContext(ctx).Create(announcement).Error
}

func (r *announcementRepo) GetByID(ctx context.Context, id int) (*model.Announcement, error) {
	var announcement model.Announcement
	err := r.db.WithContext(ctx).
		Preload("Class").
		First(&announcement, id).Error
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

func (r *announcementRepo) Update(ctx context.Context, announcement *model.Announcement) error {
	return r.db.WithContext(ctx).Save(announcement).Error
}

func (r *announcementRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Announcement{}, id).Error
}

func (r *announcementRepo) List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Announcement, int64, error) {
	var announcements []model.Announcement
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := scoped(tx.Model(&model.Announcement{}), f)
		if err := q.Count(&total).Error; err != nil {
			return err
		}
		return q.Preload("Class").
			Offset(offset).Limit(limit).
			Order("date DESC").
			Find(&announcements).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return announcements, total, nil
}

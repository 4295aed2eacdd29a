package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/model"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/scope"
)

// ParentRepository is the parents data-access interface.
type ParentRepository interface {
	Create(ctx context.Context, parent *model.Parent) error
	GetByID(ctx context.Context, id string) (*model.Parent, error)
	Update(ctx context.Context, parent *model.Parent) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Parent, int64, error)
}

type parentRepo struct {
	db *gorm.DB
}

// NewParentRepo creates a ParentRepository instance.
func NewParentRepo(db *gorm.DB) ParentRepository {
	return &parentRepo{db: db}
}

func (r *parentRepo) Create(ctx context.Context, parent *model.Parent) error {
	return r.db.WithContext(ctx).Create(parent).Error
}

func (r *parentRepo) GetByID(ctx context.Context, id string) (*model.Parent, error) {
	var parent model.Parent
	err := r.db.WithContext(ctx).
		Preload("Students").
		Where("id = ?", id).
		First(&parent).Error
	if err != nil {
		return nil, err
	}
	return &parent, nil
}

func (r *parentRepo) Update(ctx context.Context, parent *model.Parent) error {
	return r.db.WithContext(ctx).Save(parent).Error
}

func (r *parentRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Parent{ID: id}).Error
}

func (r *parentRepo) List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Parent, int64, error) {
	var parents []model.Parent
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := scoped(tx.Model(&model.Parent{}), f)
		if err := q.Count(&total).Error; err != nil {
			return err
		}
		return q.Preload("Students").
			Offset(offset).Limit(limit).
			Order("created_at DESC").
			Find(&parents).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return parents, total, nil
}

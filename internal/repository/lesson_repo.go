package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/model"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/scope"
)

// LessonRepository is the lessons data-access interface.
type LessonRepository interface {
	Create(ctx context.Context, lesson *model.Lesson) error
	GetByID(ctx context.Context, id int) (*model.Lesson, error)
	Update(ctx context.Context, lesson *model.Lesson) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Lesson, int64, error)
}

type lessonRepo struct {
	db *gorm.DB
}

// NewLessonRepo creates a LessonRepository instance.
func NewLessonRepo(db *gorm.DB) LessonRepository {
	return &lessonRepo{db: db}
}

func (r *lessonRepo) Create(ctx context.Context, lesson *model.Lesson) error {
	return r.db.WithContext(ctx).Create(lesson).Error
}

func (r *lessonRepo) GetByID(ctx context.Context, id int) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Preload("Class").
		Preload("Teacher").
		First(&lesson, id).Error
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *lessonRepo) Update(ctx context.Context, lesson *model.Lesson) error {
	return r.db.WithContext(ctx).Save(lesson).Error
}

func (r *lessonRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Lesson{}, id).Error
}

func (r *lessonRepo) List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Lesson, int64, error) {
	var lessons []model.Lesson
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := scoped(tx.Model(&model.Lesson{}), f)
		if err := q.Count(&total).Error; err != nil {
			return err
		}
		return q.Preload("Subject").
			Preload("Class").
			Preload("Teacher").
			Offset(offset).Limit(limit).
			Order("day ASC, start_time ASC").
			Find(&lessons).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return lessons, total, nil
}

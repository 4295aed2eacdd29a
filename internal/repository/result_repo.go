package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/model"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/scope"
)

// ResultRepository is the results data-access interface.
type ResultRepository interface {
	Create(ctx context.Context, result *model.Result) error
	GetByID(ctx context.Context, id int) (*model.Result, error)
	Update(ctx context.Context, result *model.Result) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Result, int64, error)
	// ListAll reads every visible result without pagination, for export.
	ListAll(ctx context.Context, f *scope.Filter) ([]model.Result, error)
}

type resultRepo struct {
	db *gorm.DB
}

// NewResultRepo creates a ResultRepository instance.
func NewResultRepo(db *gorm.DB) ResultRepository {
	return &resultRepo{db: db}
}

func (r *resultRepo) Create(ctx context.Context, result *model.Result) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *resultRepo) GetByID(ctx context.Context, id int) (*model.Result, error) {
	var result model.Result
	err := r.preloaded(r.db.WithContext(ctx)).First(&result, id).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepo) Update(ctx context.Context, result *model.Result) error {
	return r.db.WithContext(ctx).Save(result).Error
}

func (r *resultRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Result{}, id).Error
}

func (r *resultRepo) List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Result, int64, error) {
	var results []model.Result
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := scoped(tx.Model(&model.Result{}), f)
		if err := q.Count(&total).Error; err != nil {
			return err
		}
		return r.preloaded(q).
			Offset(offset).Limit(limit).
			Order("id DESC").
			Find(&results).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

func (r *resultRepo) ListAll(ctx context.Context, f *scope.Filter) ([]model.Result, error) {
	var results []model.Result
	err := r.preloaded(scoped(r.db.WithContext(ctx).Model(&model.Result{}), f)).
		Order("id ASC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// preloaded pulls both assessment branches; exactly one of Exam and
// Assignment is set on any row.
func (r *resultRepo) preloaded(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Student").
		Preload("Exam.Lesson.Class").
		Preload("Exam.Lesson.Teacher").
		Preload("Assignment.Lesson.Class").
		Preload("Assignment.Lesson.Teacher")
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/model"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/scope"
)

// GradeRepository is the grades data-access interface.
type GradeRepository interface {
	Create(ctx context.Context, grade *model.Grade) error
	GetByID(ctx context.Context, id int) (*model.Grade, error)
	Update(ctx context.Context, grade *model.Grade) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Grade, int64, error)
}

type gradeRepo struct {
	db *gorm.DB
}

// NewGradeRepo creates a GradeRepository instance.
func NewGradeRepo(db *gorm.DB) GradeRepository {
	return &gradeRepo{db: db}
}

func (r *gradeRepo) Create(ctx context.Context, grade *model.Grade) error {
	return r.db.WithContext(ctx).Create(grade).Error
}

func (r *gradeRepo) GetByID(ctx context.Context, id int) (*model.Grade, error) {
	var grade model.Grade
	if err := r.db.WithContext(ctx).First(&grade, id).Error; err != nil {
		return nil, err
	}
	return &grade, nil
}

func (r *gradeRepo) Update(ctx context.Context, grade *model.Grade) error {
	return r.db.WithContext(ctx).Save(grade).Error
}

func (r *gradeRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Grade{}, id).Error
}

func (r *gradeRepo) List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Grade, int64, error) {
	var grades []model.Grade
	var total int64

	// count and page read the same snapshot
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := scoped(tx.Model(&model.Grade{}), f)
		if err := q.Count(&total).Error; err != nil {
			return err
		}
		return q.Offset(offset).Limit(limit).
			Order("level ASC").
			Find(&grades).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return grades, total, nil
}

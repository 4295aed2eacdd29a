package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/model"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/scope"
)

// AssignmentRepository is the assignments data-access interface.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *model.Assignment) error
	GetByID(ctx context.Context, id int) (*model.Assignment, error)
	Update(ctx context.Context, assignment *model.Assignment) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Assignment, int64, error)
}

type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo creates an AssignmentRepository instance.
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) Create(ctx context.Context, assignment *model.Assignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepo) GetByID(ctx context.Context, id int) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.db.WithContext(ctx).
		Preload("Lesson").
		Preload("Lesson.Subject").
		Preload("Lesson.Class").
		Preload("Lesson.Teacher").
		First(&assignment, id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepo) Update(ctx context.Context, assignment *model.Assignment) error {
	return r.db.WithContext(ctx).Save(assignment).Error
}

func (r *assignmentRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Assignment{}, id).Error
}

func (r *assignmentRepo) List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Assignment, int64, error) {
	var assignments []model.Assignment
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := scoped(tx.Model(&model.Assignment{}), f)
		if err := q.Count(&total).Error; err != nil {
			return err
		}
		return q.Preload("Lesson").
			Preload("Lesson.Subject").
			Preload("Lesson.Class").
			Preload("Lesson.Teacher").
			Offset(offset).Limit(limit).
			Order("due_date DESC").
			Find(&assignments).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return assignments, total, nil
}

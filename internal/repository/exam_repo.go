package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/model"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/scope"
)

// ExamRepository is the exams data-access interface.
type ExamRepository interface {
	Create(ctx context.Context, exam *model.Exam) error
	GetByID(ctx context.Context, id int) (*model.Exam, error)
	Update(ctx context.Context, exam *model.Exam) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Exam, int64, error)
}

type examRepo struct {
	db *gorm.DB
}

// NewExamRepo creates an ExamRepository instance.
func NewExamRepo(db *gorm.DB) ExamRepository {
	return &examRepo{db: db}
}

func (r *examRepo) Create(ctx context.Context, exam *model.Exam) error {
	return r.db.WithContext(ctx).Create(exam).Error
}

func (r *examRepo) GetByID(ctx context.Context, id int) (*model.Exam, error) {
	var exam model.Exam
	err := r.db.WithContext(ctx).
		Preload("Lesson").
		Preload("Lesson.Subject").
		Preload("Lesson.Class").
		Preload("Lesson.Teacher").
		First(&exam, id).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepo) Update(ctx context.Context, exam *model.Exam) error {
	return r.db.WithContext(ctx).Save(exam).Error
}

func (r *examRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Exam{}, id).Error
}

func (r *examRepo) List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Exam, int64, error) {
	var exams []model.Exam
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := scoped(tx.Model(&model.Exam{}), f)
		if err := q.Count(&total).Error; err != nil {
			return err
		}
		return q.Preload("Lesson").
			Preload("Lesson.Subject").
			Preload("Lesson.Class").
			Preload("Lesson.Teacher").
			Offset(offset).Limit(limit).
			Order("start_time DESC").
			Find(&exams).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return exams, total, nil
}

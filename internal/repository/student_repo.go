package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/model"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/scope"
)

// StudentRepository is the students data-access interface.
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id string) (*model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Student, int64, error)
	CountByClass(ctx context.Context, classID int) (int64, error)
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo creates a StudentRepository instance.
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepo) GetByID(ctx context.Context, id string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Preload("Grade").
		Preload("Class").
		Preload("Parent").
		Where("id = ?", id).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) Update(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

func (r *studentRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Student{ID: id}).Error
}

func (r *studentRepo) List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Student, int64, error) {
	var students []model.Student
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := scoped(tx.Model(&model.Student{}), f)
		if err := q.Count(&total).Error; err != nil {
			return err
		}
		return q.Preload("Grade").
			Preload("Class").
			Preload("Parent").
			Offset(offset).Limit(limit).
			Order("created_at DESC").
			Find(&students).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

func (r *studentRepo) CountByClass(ctx context.Context, classID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Student{}).
		Where("class_id = ?", classID).
		Count(&count).Error
	return count, err
}

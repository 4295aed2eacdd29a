package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/model"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/scope"
)

// TeacherRepository is the teachers data-access interface.
type TeacherRepository interface {
	Create(ctx context.Context, teacher *model.Teacher) error
	GetByID(ctx context.Context, id string) (*model.Teacher, error)
	Update(ctx context.Context, teacher *model.Teacher) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Teacher, int64, error)
	// ReplaceSubjects swaps the teacher's taught-subject set.
	ReplaceSubjects(ctx context.Context, teacher *model.Teacher, subjects []model.Subject) error
}

type teacherRepo struct {
	db *gorm.DB
}

// NewTeacherRepo creates a TeacherRepository instance.
func NewTeacherRepo(db *gorm.DB) TeacherRepository {
	return &teacherRepo{db: db}
}

func (r *teacherRepo) Create(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Omit("Subjects").Create(teacher).Error
}

func (r *teacherRepo) GetByID(ctx context.Context, id string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.db.WithContext(ctx).
		Preload("Subjects").
		Where("id = ?", id).
		First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepo) Update(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Omit("Subjects").Save(teacher).Error
}

func (r *teacherRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Select("Subjects").
		Delete(&model.Teacher{ID: id}).Error
}

func (r *teacherRepo) ReplaceSubjects(ctx context.Context, teacher *model.Teacher, subjects []model.Subject) error {
	return r.db.WithContext(ctx).Model(teacher).Association("Subjects").Replace(subjects)
}

func (r *teacherRepo) List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Teacher, int64, error) {
	var teachers []model.Teacher
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := scoped(tx.Model(&model.Teacher{}), f)
		if err := q.Count(&total).Error; err != nil {
			return err
		}
		return q.Preload("Subjects").
			Offset(offset).Limit(limit).
			Order("created_at DESC").
			Find(&teachers).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return teachers, total, nil
}

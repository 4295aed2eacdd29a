package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/model"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/scope"
)

// SubjectRepository is the subjects data-access interface.
type SubjectRepository interface {
	Create(ctx context.Context, subject *model.Subject) error
	GetByID(ctx context.Context, id int) (*model.Subject, error)
	// Update saves the row and replaces the teacher assignment set.
	Update(ctx context.Context, subject *model.Subject, teachers []model.Teacher) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Subject, int64, error)
}

type subjectRepo struct {
	db *gorm.DB
}

// NewSubjectRepo creates a SubjectRepository instance.
func NewSubjectRepo(db *gorm.DB) SubjectRepository {
	return &subjectRepo{db: db}
}

func (r *subjectRepo) Create(ctx context.Context, subject *model.Subject) error {
	// Omit("Teachers.*") writes the join rows without touching teacher rows.
	return r.db.WithContext(ctx).Omit("Teachers.*").Create(subject).Error
}

func (r *subjectRepo) GetByID(ctx context.Context, id int) (*model.Subject, error) {
	var subject model.Subject
	err := r.db.WithContext(ctx).
		Preload("Teachers").
		First(&subject, id).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepo) Update(ctx context.Context, subject *model.Subject, teachers []model.Teacher) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Teachers").Save(subject).Error; err != nil {
			return err
		}
		return tx.Model(subject).Association("Teachers").Replace(teachers)
	})
}

func (r *subjectRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Select("Teachers").Delete(&model.Subject{ID: id}).Error
}

func (r *subjectRepo) List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Subject, int64, error) {
	var subjects []model.Subject
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := scoped(tx.Model(&model.Subject{}), f)
		if err := q.Count(&total).Error; err != nil {
			return err
		}
		return q.Preload("Teachers").
			Offset(offset).Limit(limit).
			Order("name ASC").
			Find(&subjects).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return subjects, total, nil
}

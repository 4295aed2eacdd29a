package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/model"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/scope"
)

// ClassRepository is the classes data-access interface.
type ClassRepository interface {
	Create(ctx context.Context, class *model.Class) error
	GetByID(ctx context.Context, id int) (*model.Class, error)
	Update(ctx context.Context, class *model.Class) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Class, int64, error)
	// CountStudents returns the enrolled head count per class id.
	CountStudents(ctx context.Context, classIDs []int) (map[int]int64, error)
}

type classRepo struct {
	db *gorm.DB
}

// NewClassRepo creates a ClassRepository instance.
func NewClassRepo(db *gorm.DB) ClassRepository {
	return &classRepo{db: db}
}

func (r *classRepo) Create(ctx context.Context, class *model.Class) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepo) GetByID(ctx context.Context, id int) (*model.Class, error) {
	var class model.Class
	err := r.db.WithContext(ctx).
		Preload("Grade").
		Preload("Supervisor").
		First(&class, id).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepo) Update(ctx context.Context, class *model.Class) error {
	return r.db.WithContext(ctx).Save(class).Error
}

func (r *classRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Class{}, id).Error
}

func (r *classRepo) List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Class, int64, error) {
	var classes []model.Class
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := scoped(tx.Model(&model.Class{}), f)
		if err := q.Count(&total).Error; err != nil {
			return err
		}
		return q.Preload("Grade").
			Preload("Supervisor").
			Offset(offset).Limit(limit).
			Order("name ASC").
			Find(&classes).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return classes, total, nil
}

func (r *classRepo) CountStudents(ctx context.Context, classIDs []int) (map[int]int64, error) {
	if len(classIDs) == 0 {
		return map[int]int64{}, nil
	}

	var rows []struct {
		ClassID int
		Count   int64
	}
	err := r.db.WithContext(ctx).Model(&model.Student{}).
		Select("class_id, COUNT(*) AS count").
		Where("class_id IN ?", classIDs).
		Group("class_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int64, len(rows))
	for _, row := range rows {
		counts[row.ClassID] = row.Count
	}
	return counts, nil
}

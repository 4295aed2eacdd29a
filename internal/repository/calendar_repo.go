package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/model"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/scope"
)

// CalendarRepository is the calendars data-access interface.
type CalendarRepository interface {
	Create(ctx context.Context, calendar *model.Calendar) error
	GetByID(ctx context.Context, id int) (*model.Calendar, error)
	// Update saves the row and replaces the subject set.
	Update(ctx context.Context, calendar *model.Calendar, subjects []model.Subject) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Calendar, int64, error)
	// ListAll reads every visible slot without pagination, for the weekly
	// projection and the iCalendar export.
	ListAll(ctx context.Context, f *scope.Filter) ([]model.Calendar, error)
}

type calendarRepo struct {
	db *gorm.DB
}

// NewCalendarRepo creates a CalendarRepository instance.
func NewCalendarRepo(db *gorm.DB) CalendarRepository {
	return &calendarRepo{db: db}
}

func (r *calendarRepo) Create(ctx context.Context, calendar *model.Calendar) error {
	return r.db.WithContext(ctx).Omit("Subjects.*").Create(calendar).Error
}

func (r *calendarRepo) GetByID(ctx context.Context, id int) (*model.Calendar, error) {
	var calendar model.Calendar
	err := r.db.WithContext(ctx).
		Preload("Teacher").
		Preload("Class").
		Preload("Subjects").
		First(&calendar, id).Error
	if err != nil {
		return nil, err
	}
	return &calendar, nil
}

func (r *calendarRepo) Update(ctx context.Context, calendar *model.Calendar, subjects []model.Subject) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Subjects").Save(calendar).Error; err != nil {
			return err
		}
		return tx.Model(calendar).Association("Subjects").Replace(subjects)
	})
}

func (r *calendarRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Select("Subjects").Delete(&model.Calendar{ID: id}).Error
}

func (r *calendarRepo) List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Calendar, int64, error) {
	var calendars []model.Calendar
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := scoped(tx.Model(&model.Calendar{}), f)
		if err := q.Count(&total).Error; err != nil {
			return err
		}
		return q.Preload("Teacher").
			Preload("Class").
			Preload("Subjects").
			Offset(offset).Limit(limit).
			Order("id ASC").
			Find(&calendars).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return calendars, total, nil
}

func (r *calendarRepo) ListAll(ctx context.Context, f *scope.Filter) ([]model.Calendar, error) {
	var calendars []model.Calendar
	err := scoped(r.db.WithContext(ctx).Model(&model.Calendar{}), f).
		Preload("Subjects").
		Order("id ASC").
		Find(&calendars).Error
	if err != nil {
		return nil, err
	}
	return calendars, nil
}

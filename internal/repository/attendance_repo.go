package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/model"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/scope"
)

// AttendanceRepository is the attendances data-access interface.
type AttendanceRepository interface {
	Create(ctx context.Context, attendance *model.Attendance) error
	GetByID(ctx context.Context, id int) (*model.Attendance, error)
	Update(ctx context.Context, attendance *model.Attendance) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Attendance, int64, error)
	// ListAll reads every visible row in insertion order, for grouping
	// and export.
	ListAll(ctx context.Context, f *scope.Filter) ([]model.Attendance, error)
	// DeleteGroup removes every record of one roll-call session: same
	// class, same calendar day, same presence flag, same capacity.
	DeleteGroup(ctx context.Context, classID int, day time.Time, present bool, capacity int) (int64, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo creates an AttendanceRepository instance.
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Create(ctx context.Context, attendance *model.Attendance) error {
	return r.db.WithContext(ctx).Create(attendance).Error
}

func (r *attendanceRepo) GetByID(ctx context.Context, id int) (*model.Attendance, error) {
	var attendance model.Attendance
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Class").
		First(&attendance, id).Error
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

func (r *attendanceRepo) Update(ctx context.Context, attendance *model.Attendance) error {
	return r.db.WithContext(ctx).Save(attendance).Error
}

func (r *attendanceRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Attendance{}, id).Error
}

func (r *attendanceRepo) List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Attendance, int64, error) {
	var attendances []model.Attendance
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := scoped(tx.Model(&model.Attendance{}), f)
		if err := q.Count(&total).Error; err != nil {
			return err
		}
		return q.Preload("Student").
			Offset(offset).Limit(limit).
			Order("date DESC, id ASC").
			Find(&attendances).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return attendances, total, nil
}

func (r *attendanceRepo) ListAll(ctx context.Context, f *scope.Filter) ([]model.Attendance, error) {
	var attendances []model.Attendance
	err := scoped(r.db.WithContext(ctx).Model(&model.Attendance{}), f).
		Preload("Student").
		Order("id ASC").
		Find(&attendances).Error
	if err != nil {
		return nil, err
	}
	return attendances, nil
}

func (r *attendanceRepo) DeleteGroup(ctx context.Context, classID int, day time.Time, present bool, capacity int) (int64, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	res := r.db.WithContext(ctx).
		Where("class_id = ? AND date >= ? AND date < ? AND present = ? AND capacity = ?",
			classID, dayStart, dayEnd, present, capacity).
		Delete(&model.Attendance{})
	return res.RowsAffected, res.Error
}

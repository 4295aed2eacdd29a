package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/model"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/scope"
)

// SubmissionRepository is the submissions data-access interface.
type SubmissionRepository interface {
	Create(ctx context.Context, submission *model.Submission) error
	GetByID(ctx context.Context, id int) (*model.Submission, error)
	GetByAssignmentAndStudent(ctx context.Context, assignmentID int, studentID string) (*model.Submission, error)
	Update(ctx context.Context, submission *model.Submission) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Submission, int64, error)
}

type submissionRepo struct {
	db *gorm.DB
}

// NewSubmissionRepo creates a SubmissionRepository instance.
func NewSubmissionRepo(db *gorm.DB) SubmissionRepository {
	return &submissionRepo{db: db}
}

func (r *submissionRepo) Create(ctx context.Context, submission *model.Submission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *submissionRepo) GetByID(ctx context.Context, id int) (*model.Submission, error) {
	var submission model.Submission
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Assignment").
		First(&submission, id).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepo) GetByAssignmentAndStudent(ctx context.Context, assignmentID int, studentID string) (*model.Submission, error) {
	var submission model.Submission
	err := r.db.WithContext(ctx).
		Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).
		First(&submission).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepo) Update(ctx context.Context, submission *model.Submission) error {
	return r.db.WithContext(ctx).Save(submission).Error
}

func (r *submissionRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Submission{}, id).Error
}

func (r *submissionRepo) List(ctx context.Context, f *scope.Filter, offset, limit int) ([]model.Submission, int64, error) {
	var submissions []model.Submission
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := scoped(tx.Model(&model.Submission{}), f)
		if err := q.Count(&total).Error; err != nil {
			return err
		}
		return q.Preload("Student").
			Preload("Assignment").
			Offset(offset).Limit(limit).
			Order("submitted_at DESC").
			Find(&submissions).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return submissions, total, nil
}

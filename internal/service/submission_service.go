package service

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/dto"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/model"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/repository"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/scope"
	apperrors "github.com/NguyenMaiPhuong311/ISD-Final/pkg/errors"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrNotOwnSubmission   = errors.New("submission belongs to another student")
	ErrAlreadySubmitted   = errors.New("assignment already submitted")
)

// SubmissionService is the submissions business interface. A student
// writes only their own submission; teachers and admins read.
type SubmissionService interface {
	Create(ctx context.Context, role scope.Role, userID string, req *dto.CreateSubmissionRequest) (*dto.SubmissionResponse, error)
	GetByID(ctx context.Context, role scope.Role, userID string, id int) (*dto.SubmissionResponse, error)
	Update(ctx context.Context, role scope.Role, userID string, id int, req *dto.CreateSubmissionRequest) (*dto.SubmissionResponse, error)
	Delete(ctx context.Context, role scope.Role, userID string, id int) error
	List(ctx context.Context, role scope.Role, userID string, params map[string]string, page int) ([]dto.SubmissionResponse, int64, error)
}

type submissionService struct {
	repo     *repository.Repository
	pageSize int
	logger   *zap.Logger
}

// NewSubmissionService creates a SubmissionService instance.
func NewSubmissionService(repo *repository.Repository, pageSize int, logger *zap.Logger) SubmissionService {
	return &submissionService{repo: repo, pageSize: pageSize, logger: logger}
}

func (s *submissionService) Create(ctx context.Context, role scope.Role, userID string, req *dto.CreateSubmissionRequest) (*dto.SubmissionResponse, error) {
	if role == scope.RoleStudent && req.StudentID != userID {
		return nil, ErrNotOwnSubmission
	}
	if _, err := s.repo.Assignment.GetByID(ctx, req.AssignmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Submission.GetByAssignmentAndStudent(ctx, req.AssignmentID, req.StudentID); err == nil {
		return nil, ErrAlreadySubmitted
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	submission := &model.Submission{
		AssignmentID: req.AssignmentID,
		StudentID:    req.StudentID,
		FileURL:      req.FileURL,
		Note:         req.Note,
	}
	if err := s.repo.Submission.Create(ctx, submission); err != nil {
		s.logger.Error("create submission failed", zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, role, userID, submission.ID)
}

func (s *submissionService) GetByID(ctx context.Context, role scope.Role, userID string, id int) (*dto.SubmissionResponse, error) {
	submission, err := s.repo.Submission.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	if role == scope.RoleStudent && submission.StudentID != userID {
		return nil, ErrNotOwnSubmission
	}
	return toSubmissionResponse(submission), nil
}

func (s *submissionService) Update(ctx context.Context, role scope.Role, userID string, id int, req *dto.CreateSubmissionRequest) (*dto.SubmissionResponse, error) {
	submission, err := s.repo.Submission.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	if role == scope.RoleStudent && submission.StudentID != userID {
		return nil, ErrNotOwnSubmission
	}

	submission.FileURL = req.FileURL
	submission.Note = req.Note
	submission.Student = nil
	submission.Assignment = nil
	if err := s.repo.Submission.Update(ctx, submission); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, role, userID, id)
}

func (s *submissionService) Delete(ctx context.Context, role scope.Role, userID string, id int) error {
	submission, err := s.repo.Submission.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubmissionNotFound
		}
		return err
	}
	if role == scope.RoleStudent && submission.StudentID != userID {
		return ErrNotOwnSubmission
	}
	return s.repo.Submission.Delete(ctx, id)
}

func (s *submissionService) List(ctx context.Context, role scope.Role, userID string, params map[string]string, page int) ([]dto.SubmissionResponse, int64, error) {
	f := new(scope.Filter)
	if v := params["assignmentId"]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, 0, apperrors.NewValidation("assignmentId", "must be an integer")
		}
		f.And("submissions.assignment_id = ?", n)
	}
	if v := params["studentId"]; v != "" {
		f.And("submissions.student_id = ?", v)
	}
	switch role {
	case scope.RoleStudent:
		f.And("submissions.student_id = ?", userID)
	case scope.RoleTeacher:
		f.And("submissions.assignment_id IN (SELECT a.id FROM assignments a JOIN lessons l ON a.lesson_id = l.id WHERE l.teacher_id = ?)", userID)
	case scope.RoleParent:
		f.And("submissions.student_id IN (SELECT id FROM students WHERE students.parent_id = ?)", userID)
	}

	submissions, total, err := s.repo.Submission.List(ctx, f, pageOffset(page, s.pageSize), s.pageSize)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.SubmissionResponse, len(submissions))
	for i := range submissions {
		out[i] = *toSubmissionResponse(&submissions[i])
	}
	return out, total, nil
}

func toSubmissionResponse(sub *model.Submission) *dto.SubmissionResponse {
	resp := &dto.SubmissionResponse{
		ID:           sub.ID,
		AssignmentID: sub.AssignmentID,
		StudentID:    sub.StudentID,
		FileURL:      sub.FileURL,
		Note:         sub.Note,
		SubmittedAt:  sub.SubmittedAt,
	}
	if sub.Student != nil {
		resp.Student = toPersonBrief(sub.Student.ID, sub.Student.Name, sub.Student.Surname)
	}
	return resp
}

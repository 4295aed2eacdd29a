package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/dto"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/model"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/repository"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/scope"
)

var (
	ErrLessonNotFound = errors.New("lesson not found")
	ErrNotLessonOwner = errors.New("lesson belongs to another teacher")
)

// LessonService is the lessons business interface. Teachers may only write
// their own lessons; admins write any.
type LessonService interface {
	Create(ctx context.Context, role scope.Role, userID string, req *dto.CreateLessonRequest) (*dto.LessonResponse, error)
	GetByID(ctx context.Context, id int) (*dto.LessonResponse, error)
	Update(ctx context.Context, role scope.Role, userID string, id int, req *dto.UpdateLessonRequest) (*dto.LessonResponse, error)
	Delete(ctx context.Context, role scope.Role, userID string, id int) error
	List(ctx context.Context, role scope.Role, userID string, params map[string]string, page int) ([]dto.LessonResponse, int64, error)
}

type lessonService struct {
	repo     *repository.Repository
	pageSize int
	logger   *zap.Logger
}

// NewLessonService creates a LessonService instance.
func NewLessonService(repo *repository.Repository, pageSize int, logger *zap.Logger) LessonService {
	return &lessonService{repo: repo, pageSize: pageSize, logger: logger}
}

func (s *lessonService) Create(ctx context.Context, role scope.Role, userID string, req *dto.CreateLessonRequest) (*dto.LessonResponse, error) {
	if role == scope.RoleTeacher && req.TeacherID != userID {
		return nil, ErrNotLessonOwner
	}

	lesson := &model.Lesson{
		Name:        req.Name,
		Title:       req.Title,
		Day:         req.Day,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		SubjectID:   req.SubjectID,
		ClassID:     req.ClassID,
		TeacherID:   req.TeacherID,
		Description: req.Description,
		Content:     req.Content,
		FileURL:     req.FileURL,
	}
	if err := s.repo.Lesson.Create(ctx, lesson); err != nil {
		s.logger.Error("create lesson failed", zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, lesson.ID)
}

func (s *lessonService) GetByID(ctx context.Context, id int) (*dto.LessonResponse, error) {
	lesson, err := s.repo.Lesson.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, err
	}
	return toLessonResponse(lesson), nil
}

func (s *lessonService) Update(ctx context.Context, role scope.Role, userID string, id int, req *dto.UpdateLessonRequest) (*dto.LessonResponse, error) {
	lesson, err := s.repo.Lesson.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, err
	}
	if role == scope.RoleTeacher && (lesson.TeacherID != userID || req.TeacherID != userID) {
		return nil, ErrNotLessonOwner
	}

	lesson.Name = req.Name
	lesson.Title = req.Title
	lesson.Day = req.Day
	lesson.StartTime = req.StartTime
	lesson.EndTime = req.EndTime
	lesson.SubjectID = req.SubjectID
	lesson.ClassID = req.ClassID
	lesson.TeacherID = req.TeacherID
	lesson.Description = req.Description
	lesson.Content = req.Content
	lesson.FileURL = req.FileURL
	lesson.Subject = nil
	lesson.Class = nil
	lesson.Teacher = nil
	if err := s.repo.Lesson.Update(ctx, lesson); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *lessonService) Delete(ctx context.Context, role scope.Role, userID string, id int) error {
	lesson, err := s.repo.Lesson.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLessonNotFound
		}
		return err
	}
	if role == scope.RoleTeacher && lesson.TeacherID != userID {
		return ErrNotLessonOwner
	}
	return s.repo.Lesson.Delete(ctx, id)
}

func (s *lessonService) List(ctx context.Context, role scope.Role, userID string, params map[string]string, page int) ([]dto.LessonResponse, int64, error) {
	f, err := scope.Build(scope.EntityLesson, role, userID, params)
	if err != nil {
		return nil, 0, err
	}
	lessons, total, err := s.repo.Lesson.List(ctx, f, pageOffset(page, s.pageSize), s.pageSize)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.LessonResponse, len(lessons))
	for i := range lessons {
		out[i] = *toLessonResponse(&lessons[i])
	}
	return out, total, nil
}

func toLessonResponse(l *model.Lesson) *dto.LessonResponse {
	resp := &dto.LessonResponse{
		ID:          l.ID,
		Name:        l.Name,
		Title:       l.Title,
		Day:         l.Day,
		StartTime:   l.StartTime,
		EndTime:     l.EndTime,
		SubjectID:   l.SubjectID,
		ClassID:     l.ClassID,
		TeacherID:   l.TeacherID,
		Description: l.Description,
		Content:     l.Content,
		FileURL:     l.FileURL,
	}
	if l.Subject != nil {
		resp.Subject = &dto.SubjectResponse{ID: l.Subject.ID, Name: l.Subject.Name}
	}
	if l.Class != nil {
		resp.Class = &dto.ClassBrief{ID: l.Class.ID, Name: l.Class.Name}
	}
	if l.Teacher != nil {
		resp.Teacher = toPersonBrief(l.Teacher.ID, l.Teacher.Name, l.Teacher.Surname)
	}
	return resp
}

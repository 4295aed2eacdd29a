package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/dto"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/model"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/repository"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/scope"
)

func newLessonFixture() (LessonService, *mockLessonRepo) {
	lessonRepo := newMockLessonRepo()
	repo := &repository.Repository{Lesson: lessonRepo}
	svc := NewLessonService(repo, 10, zap.NewNop())
	return svc, lessonRepo
}

func lessonRequest(teacherID string) *dto.CreateLessonRequest {
	return &dto.CreateLessonRequest{
		Name:      "math-1a-mon",
		Title:     "Algebra basics",
		Day:       "MONDAY",
		StartTime: time.Date(2024, 5, 13, 8, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 5, 13, 9, 30, 0, 0, time.UTC),
		SubjectID: 1,
		ClassID:   1,
		TeacherID: teacherID,
	}
}

func TestLessonCreate_TeacherOwnsOwnLessons(t *testing.T) {
	svc, _ := newLessonFixture()

	resp, err := svc.Create(context.Background(), scope.RoleTeacher, "t-1", lessonRequest("t-1"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resp.TeacherID != "t-1" {
		t.Errorf("teacher id = %q", resp.TeacherID)
	}
}

func TestLessonCreate_TeacherCannotAssignOthers(t *testing.T) {
	svc, _ := newLessonFixture()

	_, err := svc.Create(context.Background(), scope.RoleTeacher, "t-1", lessonRequest("t-2"))
	if !errors.Is(err, ErrNotLessonOwner) {
		t.Fatalf("expected ErrNotLessonOwner, got %v", err)
	}
}

func TestLessonCreate_AdminAssignsAnyTeacher(t *testing.T) {
	svc, _ := newLessonFixture()

	if _, err := svc.Create(context.Background(), scope.RoleAdmin, "admin-1", lessonRequest("t-2")); err != nil {
		t.Fatalf("Create: %v", err)
	}
}

func TestLessonUpdate_OwnershipChecks(t *testing.T) {
	svc, lessonRepo := newLessonFixture()
	lessonRepo.lessons[1] = &model.Lesson{ID: 1, Name: "old", Title: "old", Day: "MONDAY", TeacherID: "t-1"}
	lessonRepo.nextID = 1

	update := &dto.UpdateLessonRequest{
		Name:      "new",
		Title:     "new title",
		Day:       "TUESDAY",
		StartTime: time.Date(2024, 5, 14, 8, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 5, 14, 9, 0, 0, 0, time.UTC),
		SubjectID: 1,
		ClassID:   1,
		TeacherID: "t-1",
	}

	// another teacher may not touch it
	if _, err := svc.Update(context.Background(), scope.RoleTeacher, "t-2", 1, update); !errors.Is(err, ErrNotLessonOwner) {
		t.Fatalf("expected ErrNotLessonOwner, got %v", err)
	}

	// the owner may not hand it to someone else either
	handOff := *update
	handOff.TeacherID = "t-2"
	if _, err := svc.Update(context.Background(), scope.RoleTeacher, "t-1", 1, &handOff); !errors.Is(err, ErrNotLessonOwner) {
		t.Fatalf("expected ErrNotLessonOwner on reassignment, got %v", err)
	}

	// the owner updating in place is fine
	resp, err := svc.Update(context.Background(), scope.RoleTeacher, "t-1", 1, update)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if resp.Name != "new" || resp.Day != "TUESDAY" {
		t.Errorf("updated lesson = %+v", resp)
	}
}

func TestLessonDelete_OwnershipCheck(t *testing.T) {
	svc, lessonRepo := newLessonFixture()
	lessonRepo.lessons[1] = &model.Lesson{ID: 1, TeacherID: "t-1"}

	if err := svc.Delete(context.Background(), scope.RoleTeacher, "t-2", 1); !errors.Is(err, ErrNotLessonOwner) {
		t.Fatalf("expected ErrNotLessonOwner, got %v", err)
	}
	if err := svc.Delete(context.Background(), scope.RoleAdmin, "admin-1", 1); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
}

func TestLessonGet_Unknown(t *testing.T) {
	svc, _ := newLessonFixture()

	if _, err := svc.GetByID(context.Background(), 404); !errors.Is(err, ErrLessonNotFound) {
		t.Fatalf("expected ErrLessonNotFound, got %v", err)
	}
}

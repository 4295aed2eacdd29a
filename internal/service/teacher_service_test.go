package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/dto"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/repository"
)

func newTeacherFixture() (TeacherService, *mockTeacherRepo, *mockIdentity) {
	teacherRepo := newMockTeacherRepo()
	repo := &repository.Repository{Teacher: teacherRepo}
	idp := newMockIdentity()
	svc := NewTeacherService(repo, idp, nil, time.Hour, 10, zap.NewNop())
	return svc, teacherRepo, idp
}

func validTeacherRequest() *dto.CreateTeacherRequest {
	return &dto.CreateTeacherRequest{
		Username:  "t.nguyen",
		Password:  "password123",
		Name:      "Thao",
		Surname:   "Nguyen",
		Address:   "12 Nguyen Trai",
		BloodType: "O",
		Sex:       "FEMALE",
		Birthday:  testBirthday,
	}
}

func TestTeacherCreate_UsesIdentityAccountID(t *testing.T) {
	svc, teacherRepo, idp := newTeacherFixture()

	resp, err := svc.Create(context.Background(), validTeacherRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resp.ID == "" {
		t.Fatal("response has no id")
	}
	if _, ok := teacherRepo.teachers[resp.ID]; !ok {
		t.Error("teacher row not stored under the provider account id")
	}
	if _, ok := idp.users[resp.ID]; !ok {
		t.Error("identity account missing")
	}
}

func TestTeacherCreate_UsernameConflict(t *testing.T) {
	svc, _, idp := newTeacherFixture()
	idp.conflictOn = "t.nguyen"

	_, err := svc.Create(context.Background(), validTeacherRequest())
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestTeacherCreate_LocalFailureRemovesAccount(t *testing.T) {
	svc, teacherRepo, idp := newTeacherFixture()
	teacherRepo.failCreate = true

	_, err := svc.Create(context.Background(), validTeacherRequest())
	if err == nil {
		t.Fatal("expected create to fail")
	}
	if len(idp.deleted) != 1 {
		t.Fatalf("expected 1 compensating delete, got %d", len(idp.deleted))
	}
	if len(idp.users) != 0 {
		t.Error("orphan identity account left behind")
	}
}

func TestTeacherCreate_AssignsSubjects(t *testing.T) {
	svc, teacherRepo, _ := newTeacherFixture()

	req := validTeacherRequest()
	req.SubjectIDs = []int{3, 7}
	resp, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	subjects := teacherRepo.replaced[resp.ID]
	if len(subjects) != 2 || subjects[0].ID != 3 || subjects[1].ID != 7 {
		t.Errorf("replaced subjects = %+v", subjects)
	}
}

func TestTeacherDelete_RemovesIdentityFirst(t *testing.T) {
	svc, teacherRepo, idp := newTeacherFixture()

	resp, err := svc.Create(context.Background(), validTeacherRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(context.Background(), resp.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := idp.users[resp.ID]; ok {
		t.Error("identity account still present")
	}
	if _, ok := teacherRepo.teachers[resp.ID]; ok {
		t.Error("local row still present")
	}
}

func TestTeacherDelete_Unknown(t *testing.T) {
	svc, _, _ := newTeacherFixture()

	if err := svc.Delete(context.Background(), "ghost"); !errors.Is(err, ErrTeacherNotFound) {
		t.Fatalf("expected ErrTeacherNotFound, got %v", err)
	}
}

func TestTeacherUpdate_UsernameConflict(t *testing.T) {
	svc, _, idp := newTeacherFixture()

	resp, err := svc.Create(context.Background(), validTeacherRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	idp.conflictOn = "taken"
	_, err = svc.Update(context.Background(), resp.ID, &dto.UpdateTeacherRequest{
		Username:  "taken",
		Name:      "Thao",
		Surname:   "Nguyen",
		Address:   "12 Nguyen Trai",
		BloodType: "O",
		Sex:       "FEMALE",
		Birthday:  testBirthday,
	})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

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
)

func newStudentFixture(capacity int) (StudentService, *mockStudentRepo, *mockIdentity) {
	classRepo := newMockClassRepo()
	classRepo.classes[1] = &model.Class{ID: 1, Name: "1A", Capacity: capacity, GradeID: 1}
	studentRepo := newMockStudentRepo()
	repo := &repository.Repository{Class: classRepo, Student: studentRepo}
	idp := newMockIdentity()
	svc := NewStudentService(repo, idp, nil, time.Hour, 10, zap.NewNop())
	return svc, studentRepo, idp
}

func validStudentRequest(username string) *dto.CreateStudentRequest {
	return &dto.CreateStudentRequest{
		Username:  username,
		Password:  "password123",
		Name:      "Minh",
		Surname:   "Pham",
		Address:   "5 Le Loi",
		BloodType: "A",
		Sex:       "MALE",
		Birthday:  testBirthday,
		GradeID:   1,
		ClassID:   1,
		ParentID:  "parent-1",
	}
}

func TestStudentCreate_Succeeds(t *testing.T) {
	svc, studentRepo, _ := newStudentFixture(30)

	resp, err := svc.Create(context.Background(), validStudentRequest("s.pham"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	stored, ok := studentRepo.students[resp.ID]
	if !ok {
		t.Fatal("student row not stored")
	}
	if stored.ClassID != 1 || stored.ParentID != "parent-1" {
		t.Errorf("stored row = %+v", stored)
	}
}

func TestStudentCreate_ClassFull(t *testing.T) {
	svc, _, idp := newStudentFixture(2)

	for i, name := range []string{"s.one", "s.two"} {
		if _, err := svc.Create(context.Background(), validStudentRequest(name)); err != nil {
			t.Fatalf("seed student %d: %v", i, err)
		}
	}

	_, err := svc.Create(context.Background(), validStudentRequest("s.three"))
	if !errors.Is(err, ErrClassFull) {
		t.Fatalf("expected ErrClassFull, got %v", err)
	}
	// the capacity check runs before the identity call
	if len(idp.users) != 2 {
		t.Errorf("identity accounts = %d, want 2", len(idp.users))
	}
}

func TestStudentCreate_UnknownClass(t *testing.T) {
	svc, _, _ := newStudentFixture(30)

	req := validStudentRequest("s.pham")
	req.ClassID = 99
	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, ErrClassNotFound) {
		t.Fatalf("expected ErrClassNotFound, got %v", err)
	}
}

func TestStudentCreate_LocalFailureRemovesAccount(t *testing.T) {
	svc, studentRepo, idp := newStudentFixture(30)
	studentRepo.failCreate = true

	_, err := svc.Create(context.Background(), validStudentRequest("s.pham"))
	if err == nil {
		t.Fatal("expected create to fail")
	}
	if len(idp.users) != 0 {
		t.Error("orphan identity account left behind")
	}
}

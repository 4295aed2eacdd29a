package scope

import (
	"errors"
	"strings"
	"testing"

	apperrors "github.com/NguyenMaiPhuong311/ISD-Final/pkg/errors"
)

func TestBuild_TeacherLessonScope(t *testing.T) {
	f, err := Build(EntityLesson, RoleTeacher, "t1", map[string]string{"classId": "3"})
	if err != nil {
		t.Fatalf("Build should succeed: %v", err)
	}

	expr := f.Expr()
	if !strings.Contains(expr, "lessons.class_id = ?") {
		t.Errorf("expected classId predicate, got %q", expr)
	}
	if !strings.Contains(expr, "lessons.teacher_id = ?") {
		t.Errorf("expected teacher visibility predicate, got %q", expr)
	}
	if !strings.Contains(expr, " AND ") {
		t.Errorf("expected both predicates ANDed, got %q", expr)
	}

	args := f.Args()
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d: %v", len(args), args)
	}
	if args[0] != 3 {
		t.Errorf("expected classId parsed as int 3, got %v", args[0])
	}
	if args[1] != "t1" {
		t.Errorf("expected visibility arg t1, got %v", args[1])
	}
}

func TestBuild_RoleScopeNotOverridable(t *testing.T) {
	// an explicit teacherId param must not replace the role restriction
	f, err := Build(EntityLesson, RoleTeacher, "t1", map[string]string{"teacherId": "t2"})
	if err != nil {
		t.Fatalf("Build should succeed: %v", err)
	}
	if got := strings.Count(f.Expr(), "lessons.teacher_id = ?"); got != 2 {
		t.Errorf("expected both the explicit and the role predicate, got %d in %q", got, f.Expr())
	}
	args := f.Args()
	if len(args) != 2 || args[0] != "t2" || args[1] != "t1" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuild_AdminUnrestricted(t *testing.T) {
	f, err := Build(EntityExam, RoleAdmin, "a1", nil)
	if err != nil {
		t.Fatalf("Build should succeed: %v", err)
	}
	if !f.Empty() {
		t.Errorf("admin with no params should yield an empty filter, got %q", f.Expr())
	}
}

func TestBuild_UnrecognizedKeysIgnored(t *testing.T) {
	f, err := Build(EntityLesson, RoleAdmin, "a1", map[string]string{
		"page":    "2",
		"sort":    "name",
		"classId": "7",
	})
	if err != nil {
		t.Fatalf("Build should succeed: %v", err)
	}
	if len(f.Args()) != 1 || f.Args()[0] != 7 {
		t.Errorf("only classId should apply, got %q / %v", f.Expr(), f.Args())
	}
}

func TestBuild_BadNumericParam(t *testing.T) {
	_, err := Build(EntityLesson, RoleAdmin, "a1", map[string]string{
		"classId": "abc",
		"search":  "math",
	})
	if !errors.Is(err, apperrors.ErrInvalidParam) {
		t.Fatalf("expected ErrInvalidParam, got %v", err)
	}
}

func TestBuild_SearchCaseInsensitive(t *testing.T) {
	f, err := Build(EntityLesson, RoleAdmin, "a1", map[string]string{"search": "Alg"})
	if err != nil {
		t.Fatalf("Build should succeed: %v", err)
	}
	if !strings.Contains(f.Expr(), "ILIKE") {
		t.Errorf("search should use ILIKE, got %q", f.Expr())
	}
	for _, a := range f.Args() {
		if a != "%Alg%" {
			t.Errorf("search args should be wrapped in wildcards, got %v", a)
		}
	}
}

func TestBuild_StudentExamScope(t *testing.T) {
	f, err := Build(EntityExam, RoleStudent, "s1", nil)
	if err != nil {
		t.Fatalf("Build should succeed: %v", err)
	}
	expr := f.Expr()
	if !strings.Contains(expr, "exams.lesson_id IN") {
		t.Errorf("student exam scope should go through lessons, got %q", expr)
	}
	if !strings.Contains(expr, "students.id = ?") {
		t.Errorf("student exam scope should reach the own enrollment, got %q", expr)
	}
}

func TestBuild_ParentResultScope(t *testing.T) {
	f, err := Build(EntityResult, RoleParent, "p1", map[string]string{"studentId": "s9"})
	if err != nil {
		t.Fatalf("Build should succeed: %v", err)
	}
	expr := f.Expr()
	if !strings.Contains(expr, "results.student_id = ?") {
		t.Errorf("explicit studentId should apply, got %q", expr)
	}
	if !strings.Contains(expr, "students.parent_id = ?") {
		t.Errorf("parent visibility should still apply, got %q", expr)
	}
}

func TestBuild_EmptyValuesSkipped(t *testing.T) {
	f, err := Build(EntityLesson, RoleAdmin, "a1", map[string]string{"classId": ""})
	if err != nil {
		t.Fatalf("Build should succeed: %v", err)
	}
	if !f.Empty() {
		t.Errorf("empty value should be skipped, got %q", f.Expr())
	}
}

func TestBuild_UnknownEntity(t *testing.T) {
	_, err := Build(Entity("bogus"), RoleAdmin, "a1", nil)
	if !errors.Is(err, apperrors.ErrInvalidParam) {
		t.Fatalf("expected ErrInvalidParam for unknown entity, got %v", err)
	}
}

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleTeacher, RoleStudent, RoleParent} {
		if !r.Valid() {
			t.Errorf("role %q should be valid", r)
		}
	}
	if Role("principal").Valid() {
		t.Error("unknown role should be invalid")
	}
}

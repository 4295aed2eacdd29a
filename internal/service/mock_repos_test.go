package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/model"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/scope"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/identity"
)

// --- Mock identity provider ---

type mockIdentity struct {
	nextID     int
	users      map[string]identity.CreateUserRequest
	deleted    []string
	conflictOn string
}

func newMockIdentity() *mockIdentity {
	return &mockIdentity{users: make(map[string]identity.CreateUserRequest)}
}

func (m *mockIdentity) CreateUser(_ context.Context, req identity.CreateUserRequest) (*identity.User, error) {
	if req.Username == m.conflictOn {
		return nil, identity.ErrConflict
	}
	m.nextID++
	id := fmt.Sprintf("acct-%d", m.nextID)
	m.users[id] = req
	return &identity.User{ID: id, Username: req.Username, Role: req.Role}, nil
}

func (m *mockIdentity) UpdateUser(_ context.Context, id string, req identity.UpdateUserRequest) error {
	if _, ok := m.users[id]; !ok {
		return identity.ErrNotFound
	}
	if req.Username == m.conflictOn {
		return identity.ErrConflict
	}
	return nil
}

func (m *mockIdentity) DeleteUser(_ context.Context, id string) error {
	if _, ok := m.users[id]; !ok {
		return identity.ErrNotFound
	}
	delete(m.users, id)
	m.deleted = append(m.deleted, id)
	return nil
}

// --- Mock TeacherRepository ---

type mockTeacherRepo struct {
	teachers   map[string]*model.Teacher
	failCreate bool
	replaced   map[string][]model.Subject
}

func newMockTeacherRepo() *mockTeacherRepo {
	return &mockTeacherRepo{
		teachers: make(map[string]*model.Teacher),
		replaced: make(map[string][]model.Subject),
	}
}

func (m *mockTeacherRepo) Create(_ context.Context, teacher *model.Teacher) error {
	if m.failCreate {
		return errors.New("db down")
	}
	m.teachers[teacher.ID] = teacher
	return nil
}

func (m *mockTeacherRepo) GetByID(_ context.Context, id string) (*model.Teacher, error) {
	if t, ok := m.teachers[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) Update(_ context.Context, teacher *model.Teacher) error {
	m.teachers[teacher.ID] = teacher
	return nil
}

func (m *mockTeacherRepo) Delete(_ context.Context, id string) error {
	delete(m.teachers, id)
	return nil
}

func (m *mockTeacherRepo) List(_ context.Context, _ *scope.Filter, _, _ int) ([]model.Teacher, int64, error) {
	var out []model.Teacher
	for _, t := range m.teachers {
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (m *mockTeacherRepo) ReplaceSubjects(_ context.Context, teacher *model.Teacher, subjects []model.Subject) error {
	m.replaced[teacher.ID] = subjects
	return nil
}

// --- Mock StudentRepository ---

type mockStudentRepo struct {
	students   map[string]*model.Student
	failCreate bool
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[string]*model.Student)}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if m.failCreate {
		return errors.New("db down")
	}
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id string) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id string) error {
	delete(m.students, id)
	return nil
}

func (m *mockStudentRepo) List(_ context.Context, _ *scope.Filter, _, _ int) ([]model.Student, int64, error) {
	var out []model.Student
	for _, s := range m.students {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (m *mockStudentRepo) CountByClass(_ context.Context, classID int) (int64, error) {
	var n int64
	for _, s := range m.students {
		if s.ClassID == classID {
			n++
		}
	}
	return n, nil
}

// --- Mock ClassRepository ---

type mockClassRepo struct {
	classes map[int]*model.Class
}

func newMockClassRepo() *mockClassRepo {
	return &mockClassRepo{classes: make(map[int]*model.Class)}
}

func (m *mockClassRepo) Create(_ context.Context, class *model.Class) error {
	if class.ID == 0 {
		class.ID = len(m.classes) + 1
	}
	m.classes[class.ID] = class
	return nil
}

func (m *mockClassRepo) GetByID(_ context.Context, id int) (*model.Class, error) {
	if c, ok := m.classes[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassRepo) Update(_ context.Context, class *model.Class) error {
	m.classes[class.ID] = class
	return nil
}

func (m *mockClassRepo) Delete(_ context.Context, id int) error {
	delete(m.classes, id)
	return nil
}

func (m *mockClassRepo) List(_ context.Context, _ *scope.Filter, _, _ int) ([]model.Class, int64, error) {
	var out []model.Class
	for _, c := range m.classes {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (m *mockClassRepo) CountStudents(_ context.Context, classIDs []int) (map[int]int64, error) {
	return map[int]int64{}, nil
}

// --- Mock LessonRepository ---

type mockLessonRepo struct {
	nextID  int
	lessons map[int]*model.Lesson
}

func newMockLessonRepo() *mockLessonRepo {
	return &mockLessonRepo{lessons: make(map[int]*model.Lesson)}
}

func (m *mockLessonRepo) Create(_ context.Context, lesson *model.Lesson) error {
	if lesson.ID == 0 {
		m.nextID++
		lesson.ID = m.nextID
	}
	m.lessons[lesson.ID] = lesson
	return nil
}

func (m *mockLessonRepo) GetByID(_ context.Context, id int) (*model.Lesson, error) {
	if l, ok := m.lessons[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLessonRepo) Update(_ context.Context, lesson *model.Lesson) error {
	m.lessons[lesson.ID] = lesson
	return nil
}

func (m *mockLessonRepo) Delete(_ context.Context, id int) error {
	delete(m.lessons, id)
	return nil
}

func (m *mockLessonRepo) List(_ context.Context, _ *scope.Filter, _, _ int) ([]model.Lesson, int64, error) {
	var out []model.Lesson
	for _, l := range m.lessons {
		out = append(out, *l)
	}
	return out, int64(len(out)), nil
}

// testBirthday is an arbitrary fixed date for account fixtures.
var testBirthday = time.Date(1990, 3, 1, 0, 0, 0, 0, time.UTC)

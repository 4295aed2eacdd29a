package repository

import (
	"gorm.io/gorm"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/scope"
)

// Repository aggregates every data-access interface.
type Repository struct {
	Grade        GradeRepository
	Class        ClassRepository
	Subject      SubjectRepository
	Teacher      TeacherRepository
	Student      StudentRepository
	Parent       ParentRepository
	Lesson       LessonRepository
	Exam         ExamRepository
	Assignment   AssignmentRepository
	Submission   SubmissionRepository
	Result       ResultRepository
	Attendance   AttendanceRepository
	Announcement AnnouncementRepository
	Calendar     CalendarRepository
}

// NewRepository wires every repository onto one *gorm.DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Grade:        NewGradeRepo(db),
		Class:        NewClassRepo(db),
		Subject:      NewSubjectRepo(db),
		Teacher:      NewTeacherRepo(db),
		Student:      NewStudentRepo(db),
		Parent:       NewParentRepo(db),
		Lesson:       NewLessonRepo(db),
		Exam:         NewExamRepo(db),
		Assignment:   NewAssignmentRepo(db),
		Submission:   NewSubmissionRepo(db),
		Result:       NewResultRepo(db),
		Attendance:   NewAttendanceRepo(db),
		Announcement: NewAnnouncementRepo(db),
		Calendar:     NewCalendarRepo(db),
	}
}

// scoped applies a role filter fragment; a nil or empty filter is a no-op.
func scoped(db *gorm.DB, f *scope.Filter) *gorm.DB {
	if f == nil || f.Empty() {
		return db
	}
	return db.Where(f.Expr(), f.Args()...)
}

package service

import (
	"go.uber.org/zap"

	"github.com/NguyenMaiPhuong311/ISD-Final/config"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/repository"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/identity"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/redis"
)

// Service aggregates every business-logic interface.
type Service struct {
	Grade        GradeService
	Class        ClassService
	Subject      SubjectService
	Teacher      TeacherService
	Student      StudentService
	Parent       ParentService
	Lesson       LessonService
	Exam         ExamService
	Assignment   AssignmentService
	Submission   SubmissionService
	Result       ResultService
	Attendance   AttendanceService
	Announcement AnnouncementService
	Calendar     CalendarService
	Export       ExportService
}

// NewService wires every service. rdb may be nil when redis is unavailable;
// token revocation then degrades to token-lifetime expiry.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	idp identity.Provider,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	pageSize := cfg.Listing.PageSize
	projector := NewWeekProjector(logger)

	return &Service{
		Grade:        NewGradeService(repo, pageSize, logger),
		Class:        NewClassService(repo, pageSize, logger),
		Subject:      NewSubjectService(repo, pageSize, logger),
		Teacher:      NewTeacherService(repo, idp, rdb, cfg.Auth.TokenTTL, pageSize, logger),
		Student:      NewStudentService(repo, idp, rdb, cfg.Auth.TokenTTL, pageSize, logger),
		Parent:       NewParentService(repo, idp, rdb, cfg.Auth.TokenTTL, pageSize, logger),
		Lesson:       NewLessonService(repo, pageSize, logger),
		Exam:         NewExamService(repo, pageSize, logger),
		Assignment:   NewAssignmentService(repo, pageSize, logger),
		Submission:   NewSubmissionService(repo, pageSize, logger),
		Result:       NewResultService(repo, pageSize, logger),
		Attendance:   NewAttendanceService(repo, pageSize, logger),
		Announcement: NewAnnouncementService(repo, pageSize, logger),
		Calendar:     NewCalendarService(repo, projector, pageSize, logger),
		Export:       NewExportService(repo, logger),
	}
}

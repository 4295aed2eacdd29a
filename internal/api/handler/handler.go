package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/service"
	apperrors "github.com/NguyenMaiPhuong311/ISD-Final/pkg/errors"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/media"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/response"
)

// business error codes
const (
	CodeInvalidParam    = 10001
	CodeUnauthorized    = 10002
	CodeForbidden       = 10003
	CodeNotFound        = 20001
	CodeConflict        = 20002
	CodeClassFull       = 20003
	CodeNothingToExport = 20004
)

// Handler aggregates every HTTP handler.
type Handler struct {
	Grade        *GradeHandler
	Class        *ClassHandler
	Subject      *SubjectHandler
	Teacher      *TeacherHandler
	Student      *StudentHandler
	Parent       *ParentHandler
	Lesson       *LessonHandler
	Exam         *ExamHandler
	Assignment   *AssignmentHandler
	Submission   *SubmissionHandler
	Result       *ResultHandler
	Attendance   *AttendanceHandler
	Announcement *AnnouncementHandler
	Calendar     *CalendarHandler
	Upload       *UploadHandler
	Export       *ExportHandler
}

// NewHandler wires every handler onto the service aggregate. pageSize is
// echoed in paginated envelopes and must match the listing services.
func NewHandler(svc *service.Service, uploader media.Uploader, pageSize int) *Handler {
	return &Handler{
		Grade:        NewGradeHandler(svc.Grade, pageSize),
		Class:        NewClassHandler(svc.Class, pageSize),
		Subject:      NewSubjectHandler(svc.Subject, pageSize),
		Teacher:      NewTeacherHandler(svc.Teacher, pageSize),
		Student:      NewStudentHandler(svc.Student, pageSize),
		Parent:       NewParentHandler(svc.Parent, pageSize),
		Lesson:       NewLessonHandler(svc.Lesson, pageSize),
		Exam:         NewExamHandler(svc.Exam, pageSize),
		Assignment:   NewAssignmentHandler(svc.Assignment, pageSize),
		Submission:   NewSubmissionHandler(svc.Submission, pageSize),
		Result:       NewResultHandler(svc.Result, pageSize),
		Attendance:   NewAttendanceHandler(svc.Attendance, pageSize),
		Announcement: NewAnnouncementHandler(svc.Announcement, pageSize),
		Calendar:     NewCalendarHandler(svc.Calendar, pageSize),
		Upload:       NewUploadHandler(uploader),
		Export:       NewExportHandler(svc.Export),
	}
}

// notFoundErrs are service sentinels that map onto 404.
var notFoundErrs = []error{
	service.ErrGradeNotFound,
	service.ErrClassNotFound,
	service.ErrSubjectNotFound,
	service.ErrTeacherNotFound,
	service.ErrStudentNotFound,
	service.ErrParentNotFound,
	service.ErrLessonNotFound,
	service.ErrExamNotFound,
	service.ErrAssignmentNotFound,
	service.ErrSubmissionNotFound,
	service.ErrResultNotFound,
	service.ErrAttendanceNotFound,
	service.ErrAnnouncementNotFound,
	service.ErrCalendarNotFound,
}

// handleError maps service errors onto the response envelope.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidParam):
		response.BadRequest(c, CodeInvalidParam, err.Error())
	case errors.Is(err, service.ErrNotLessonOwner),
		errors.Is(err, service.ErrNotOwnSubmission):
		response.Forbidden(c, CodeForbidden, err.Error())
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrAlreadySubmitted):
		response.Error(c, http.StatusConflict, CodeConflict, err.Error())
	case errors.Is(err, service.ErrClassFull):
		response.Error(c, http.StatusConflict, CodeClassFull, err.Error())
	case errors.Is(err, service.ErrExportNoRows):
		response.NotFound(c, CodeNothingToExport, err.Error())
	default:
		for _, sentinel := range notFoundErrs {
			if errors.Is(err, sentinel) {
				response.NotFound(c, CodeNotFound, err.Error())
				return
			}
		}
		response.InternalError(c)
	}
}

// queryParams flattens the URL query into the filter-param map consumed by
// the listing services; paging keys are stripped.
func queryParams(c *gin.Context) map[string]string {
	params := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if key == "page" || len(values) == 0 {
			continue
		}
		params[key] = values[0]
	}
	return params
}

// pageQuery reads the 1-based page number, defaulting to 1.
func pageQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// intParam reads a numeric path parameter.
func intParam(c *gin.Context, name string) (int, bool) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil {
		response.BadRequest(c, CodeInvalidParam, name+" must be an integer")
		return 0, false
	}
	return n, true
}

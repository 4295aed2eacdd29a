package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/NguyenMaiPhuong311/ISD-Final/config"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/api/handler"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/api/middleware"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/jwt"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/redis"
)

// maxBodyBytes bounds JSON and multipart request bodies. Uploads are the
// largest payload the API accepts.
const maxBodyBytes = 16 << 20

// Setup builds the Gin engine with every route and middleware attached.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(rdb, 300, time.Minute))
	v1.Use(middleware.JWTAuth(jwtMgr, rdb))

	adminOnly := middleware.RoleAuth("admin")
	adminOrTeacher := middleware.RoleAuth("admin", "teacher")

	session := handler.NewSessionHandler(rdb)
	v1.POST("/auth/logout", session.Logout)

	{
		grades := v1.Group("/grades")
		{
			grades.GET("", h.Grade.List)
			grades.GET("/:id", h.Grade.Get)
			grades.POST("", adminOnly, h.Grade.Create)
			grades.PUT("/:id", adminOnly, h.Grade.Update)
			grades.DELETE("/:id", adminOnly, h.Grade.Delete)
		}

		classes := v1.Group("/classes")
		{
			classes.GET("", h.Class.List)
			classes.GET("/:id", h.Class.Get)
			classes.POST("", adminOnly, h.Class.Create)
			classes.PUT("/:id", adminOnly, h.Class.Update)
			classes.DELETE("/:id", adminOnly, h.Class.Delete)
		}

		subjects := v1.Group("/subjects")
		{
			subjects.GET("", h.Subject.List)
			subjects.GET("/:id", h.Subject.Get)
			subjects.POST("", adminOnly, h.Subject.Create)
			subjects.PUT("/:id", adminOnly, h.Subject.Update)
			subjects.DELETE("/:id", adminOnly, h.Subject.Delete)
		}

		teachers := v1.Group("/teachers")
		{
			teachers.GET("", h.Teacher.List)
			teachers.GET("/:id", h.Teacher.Get)
			teachers.POST("", adminOnly, h.Teacher.Create)
			teachers.PUT("/:id", adminOnly, h.Teacher.Update)
			teachers.DELETE("/:id", adminOnly, h.Teacher.Delete)
		}

		students := v1.Group("/students")
		{
			students.GET("", h.Student.List)
			students.GET("/:id", h.Student.Get)
			students.POST("", adminOnly, h.Student.Create)
			students.PUT("/:id", adminOnly, h.Student.Update)
			students.DELETE("/:id", adminOnly, h.Student.Delete)
		}

		parents := v1.Group("/parents")
		{
			parents.GET("", h.Parent.List)
			parents.GET("/:id", h.Parent.Get)
			parents.POST("", adminOnly, h.Parent.Create)
			parents.PUT("/:id", adminOnly, h.Parent.Update)
			parents.DELETE("/:id", adminOnly, h.Parent.Delete)
		}

		// Teachers may only touch their own lessons; the service enforces
		// ownership beyond the role gate.
		lessons := v1.Group("/lessons")
		{
			lessons.GET("", h.Lesson.List)
			lessons.GET("/:id", h.Lesson.Get)
			lessons.POST("", adminOrTeacher, h.Lesson.Create)
			lessons.PUT("/:id", adminOrTeacher, h.Lesson.Update)
			lessons.DELETE("/:id", adminOrTeacher, h.Lesson.Delete)
		}

		exams := v1.Group("/exams")
		{
			exams.GET("", h.Exam.List)
			exams.GET("/:id", h.Exam.Get)
			exams.POST("", adminOrTeacher, h.Exam.Create)
			exams.PUT("/:id", adminOrTeacher, h.Exam.Update)
			exams.DELETE("/:id", adminOrTeacher, h.Exam.Delete)
		}

		assignments := v1.Group("/assignments")
		{
			assignments.GET("", h.Assignment.List)
			assignments.GET("/:id", h.Assignment.Get)
			assignments.POST("", adminOrTeacher, h.Assignment.Create)
			assignments.PUT("/:id", adminOrTeacher, h.Assignment.Update)
			assignments.DELETE("/:id", adminOrTeacher, h.Assignment.Delete)
		}

		// Students submit their own work; visibility filtering happens in
		// the service for everyone else.
		submissions := v1.Group("/submissions")
		{
			submissions.GET("", h.Submission.List)
			submissions.GET("/:id", h.Submission.Get)
			submissions.POST("", middleware.RoleAuth("student"), h.Submission.Create)
			submissions.PUT("/:id", middleware.RoleAuth("student"), h.Submission.Update)
			submissions.DELETE("/:id", middleware.RoleAuth("student", "admin"), h.Submission.Delete)
		}

		results := v1.Group("/results")
		{
			results.GET("", h.Result.List)
			results.GET("/:id", h.Result.Get)
			results.POST("", adminOrTeacher, h.Result.Create)
			results.PUT("/:id", adminOrTeacher, h.Result.Update)
			results.DELETE("/:id", adminOrTeacher, h.Result.Delete)
		}

		attendances := v1.Group("/attendances")
		{
			attendances.GET("", h.Attendance.List)
			attendances.GET("/groups", h.Attendance.ListGroups)
			attendances.GET("/:id", h.Attendance.Get)
			attendances.POST("", adminOrTeacher, h.Attendance.Create)
			attendances.PUT("/:id", adminOrTeacher, h.Attendance.Update)
			attendances.DELETE("/groups", adminOrTeacher, h.Attendance.DeleteGroup)
			attendances.DELETE("/:id", adminOrTeacher, h.Attendance.Delete)
		}

		announcements := v1.Group("/announcements")
		{
			announcements.GET("", h.Announcement.List)
			announcements.GET("/:id", h.Announcement.Get)
			announcements.POST("", adminOnly, h.Announcement.Create)
			announcements.PUT("/:id", adminOnly, h.Announcement.Update)
			announcements.DELETE("/:id", adminOnly, h.Announcement.Delete)
		}

		calendars := v1.Group("/calendars")
		{
			calendars.GET("/week", h.Calendar.Week)
			calendars.GET("/week.ics", h.Calendar.WeekICS)
			calendars.GET("", adminOnly, h.Calendar.List)
			calendars.GET("/:id", adminOnly, h.Calendar.Get)
			calendars.POST("", adminOnly, h.Calendar.Create)
			calendars.PUT("/:id", adminOnly, h.Calendar.Update)
			calendars.DELETE("/:id", adminOnly, h.Calendar.Delete)
		}

		export := v1.Group("/export", adminOrTeacher)
		{
			export.GET("/results.xlsx", h.Export.Results)
			export.GET("/attendance.xlsx", h.Export.Attendance)
		}

		v1.POST("/uploads", h.Upload.Upload)
	}

	return r
}

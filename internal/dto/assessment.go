package dto

import "time"

// CreateExamRequest schedules an exam for a lesson.
type CreateExamRequest struct {
	Title     string    `json:"title"      binding:"required,min=1"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time"   binding:"required"`
	LessonID  int       `json:"lesson_id"  binding:"required,min=1"`
}

// UpdateExamRequest updates an exam.
type UpdateExamRequest struct {
	Title     string    `json:"title"      binding:"required,min=1"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time"   binding:"required"`
	LessonID  int       `json:"lesson_id"  binding:"required,min=1"`
}

// ExamResponse is an exam with its lesson context.
type ExamResponse struct {
	ID        int             `json:"id"`
	Title     string          `json:"title"`
	StartTime time.Time       `json:"start_time"`
	EndTime   time.Time       `json:"end_time"`
	LessonID  int             `json:"lesson_id"`
	Lesson    *LessonResponse `json:"lesson,omitempty"`
}

// CreateAssignmentRequest creates an assignment for a lesson.
type CreateAssignmentRequest struct {
	Title     string    `json:"title"      binding:"required,min=1"`
	StartDate time.Time `json:"start_date" binding:"required"`
	DueDate   time.Time `json:"due_date"   binding:"required"`
	LessonID  int       `json:"lesson_id"  binding:"required,min=1"`
	FileURL   *string   `json:"file_url"`
}

// UpdateAssignmentRequest updates an assignment.
type UpdateAssignmentRequest struct {
	Title     string    `json:"title"      binding:"required,min=1"`
	StartDate time.Time `json:"start_date" binding:"required"`
	DueDate   time.Time `json:"due_date"   binding:"required"`
	LessonID  int       `json:"lesson_id"  binding:"required,min=1"`
	FileURL   *string   `json:"file_url"`
}

// AssignmentResponse is an assignment with its lesson context.
type AssignmentResponse struct {
	ID        int             `json:"id"`
	Title     string          `json:"title"`
	StartDate time.Time       `json:"start_date"`
	DueDate   time.Time       `json:"due_date"`
	LessonID  int             `json:"lesson_id"`
	FileURL   *string         `json:"file_url,omitempty"`
	Lesson    *LessonResponse `json:"lesson,omitempty"`
}

// CreateSubmissionRequest records a student's submission for an assignment.
type CreateSubmissionRequest struct {
	AssignmentID int     `json:"assignment_id" binding:"required,min=1"`
	StudentID    string  `json:"student_id"    binding:"required,min=1"`
	FileURL      *string `json:"file_url"`
	Note         *string `json:"note"`
}

// SubmissionResponse is a submission row.
type SubmissionResponse struct {
	ID           int          `json:"id"`
	AssignmentID int          `json:"assignment_id"`
	StudentID    string       `json:"student_id"`
	FileURL      *string      `json:"file_url,omitempty"`
	Note         *string      `json:"note,omitempty"`
	SubmittedAt  time.Time    `json:"submitted_at"`
	Student      *PersonBrief `json:"student,omitempty"`
}

// CreateResultRequest records a score against exactly one of an exam or
// an assignment.
type CreateResultRequest struct {
	Score        float64 `json:"score"         binding:"min=0,max=100"`
	StudentID    string  `json:"student_id"    binding:"required,min=1"`
	ExamID       *int    `json:"exam_id"`
	AssignmentID *int    `json:"assignment_id"`
}

// UpdateResultRequest updates a result.
type UpdateResultRequest struct {
	Score        float64 `json:"score"         binding:"min=0,max=100"`
	StudentID    string  `json:"student_id"    binding:"required,min=1"`
	ExamID       *int    `json:"exam_id"`
	AssignmentID *int    `json:"assignment_id"`
}

// ResultResponse flattens a result with its assessment context for listing.
type ResultResponse struct {
	ID           int          `json:"id"`
	Score        float64      `json:"score"`
	StudentID    string       `json:"student_id"`
	ExamID       *int         `json:"exam_id,omitempty"`
	AssignmentID *int         `json:"assignment_id,omitempty"`
	Title        string       `json:"title"`
	StartTime    time.Time    `json:"start_time"`
	TeacherName  string       `json:"teacher_name"`
	ClassName    string       `json:"class_name"`
	Student      *PersonBrief `json:"student,omitempty"`
}

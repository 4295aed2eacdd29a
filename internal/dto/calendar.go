package dto

import "time"

// CreateCalendarRequest adds a recurring weekly slot. Times are wall-clock
// strings in HH:mm.
type CreateCalendarRequest struct {
	TeacherID  string `json:"teacher_id"  binding:"required,min=1"`
	ClassID    int    `json:"class_id"    binding:"required,min=1"`
	DayOfWeek  string `json:"day_of_week" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime  string `json:"start_time"  binding:"required,len=5"`
	EndTime    string `json:"end_time"    binding:"required,len=5"`
	SubjectIDs []int  `json:"subject_ids"`
}

// UpdateCalendarRequest updates a recurring weekly slot.
type UpdateCalendarRequest struct {
	TeacherID  string `json:"teacher_id"  binding:"required,min=1"`
	ClassID    int    `json:"class_id"    binding:"required,min=1"`
	DayOfWeek  string `json:"day_of_week" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime  string `json:"start_time"  binding:"required,len=5"`
	EndTime    string `json:"end_time"    binding:"required,len=5"`
	SubjectIDs []int  `json:"subject_ids"`
}

// CalendarResponse is a stored weekly slot.
type CalendarResponse struct {
	ID        int               `json:"id"`
	TeacherID string            `json:"teacher_id"`
	ClassID   int               `json:"class_id"`
	DayOfWeek string            `json:"day_of_week"`
	StartTime string            `json:"start_time"`
	EndTime   string            `json:"end_time"`
	Teacher   *PersonBrief      `json:"teacher,omitempty"`
	Class     *ClassBrief       `json:"class,omitempty"`
	Subjects  []SubjectResponse `json:"subjects,omitempty"`
}

// ProjectedEvent is a weekly slot pinned to a concrete date in the week
// that contains the reference instant.
type ProjectedEvent struct {
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// UploadResponse carries the hosted URL of an uploaded file.
type UploadResponse struct {
	URL string `json:"url"`
}

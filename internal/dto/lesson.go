package dto

import "time"

// CreateLessonRequest mirrors the lesson form schema.
type CreateLessonRequest struct {
	Name        string    `json:"name"       binding:"required,min=1"`
	Title       string    `json:"title"      binding:"required,min=1"`
	Day         string    `json:"day"        binding:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time"   binding:"required"`
	SubjectID   int       `json:"subject_id" binding:"required,min=1"`
	ClassID     int       `json:"class_id"   binding:"required,min=1"`
	TeacherID   string    `json:"teacher_id" binding:"required,min=1"`
	Description *string   `json:"description"`
	Content     *string   `json:"content"`
	FileURL     *string   `json:"file_url"`
}

// UpdateLessonRequest updates a lesson.
type UpdateLessonRequest struct {
	Name        string    `json:"name"       binding:"required,min=1"`
	Title       string    `json:"title"      binding:"required,min=1"`
	Day         string    `json:"day"        binding:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time"   binding:"required"`
	SubjectID   int       `json:"subject_id" binding:"required,min=1"`
	ClassID     int       `json:"class_id"   binding:"required,min=1"`
	TeacherID   string    `json:"teacher_id" binding:"required,min=1"`
	Description *string   `json:"description"`
	Content     *string   `json:"content"`
	FileURL     *string   `json:"file_url"`
}

// LessonResponse is a lesson record with brief relations.
type LessonResponse struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Title       string           `json:"title"`
	Day         string           `json:"day"`
	StartTime   time.Time        `json:"start_time"`
	EndTime     time.Time        `json:"end_time"`
	SubjectID   int              `json:"subject_id"`
	ClassID     int              `json:"class_id"`
	TeacherID   string           `json:"teacher_id"`
	Description *string          `json:"description,omitempty"`
	Content     *string          `json:"content,omitempty"`
	FileURL     *string          `json:"file_url,omitempty"`
	Subject     *SubjectResponse `json:"subject,omitempty"`
	Class       *ClassBrief      `json:"class,omitempty"`
	Teacher     *PersonBrief     `json:"teacher,omitempty"`
}

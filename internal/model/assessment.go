package model

import "time"

// Exam is a scheduled test for a lesson (table exams).
type Exam struct {
	ID        int       `gorm:"primaryKey"                 json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	StartTime time.Time `gorm:"not null"                   json:"start_time"`
	EndTime   time.Time `gorm:"not null"                   json:"end_time"`
	LessonID  int       `gorm:"not null"                   json:"lesson_id"`

	Lesson *Lesson `gorm:"foreignKey:LessonID" json:"lesson,omitempty"`
}

func (Exam) TableName() string { return "exams" }

// Assignment is graded homework for a lesson (table assignments).
type Assignment struct {
	ID        int       `gorm:"primaryKey"                 json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	StartDate time.Time `gorm:"not null"                   json:"start_date"`
	DueDate   time.Time `gorm:"not null"                   json:"due_date"`
	LessonID  int       `gorm:"not null"                   json:"lesson_id"`
	FileURL   *string   `gorm:"type:varchar(512)"          json:"file_url,omitempty"`

	Lesson      *Lesson      `gorm:"foreignKey:LessonID"     json:"lesson,omitempty"`
	Submissions []Submission `gorm:"foreignKey:AssignmentID" json:"submissions,omitempty"`
}

func (Assignment) TableName() string { return "assignments" }

// Submission is a student's answer to an assignment (table submissions).
type Submission struct {
	ID           int       `gorm:"primaryKey"                json:"id"`
	AssignmentID int       `gorm:"not null"                  json:"assignment_id"`
	StudentID    string    `gorm:"type:varchar(64);not null" json:"student_id"`
	FileURL      *string   `gorm:"type:varchar(512)"         json:"file_url,omitempty"`
	Note         *string   `gorm:"type:text"                 json:"note,omitempty"`
	SubmittedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"submitted_at"`

	Assignment *Assignment `gorm:"foreignKey:AssignmentID" json:"assignment,omitempty"`
	Student    *Student    `gorm:"foreignKey:StudentID"    json:"student,omitempty"`
}

func (Submission) TableName() string { return "submissions" }

// Result is a score for either an exam or an assignment, never both
// (table results, enforced by a CHECK constraint).
type Result struct {
	ID           int     `gorm:"primaryKey"                json:"id"`
	Score        float64 `gorm:"not null"                  json:"score"`
	ExamID       *int    `json:"exam_id,omitempty"`
	AssignmentID *int    `json:"assignment_id,omitempty"`
	StudentID    string  `gorm:"type:varchar(64);not null" json:"student_id"`

	Exam       *Exam       `gorm:"foreignKey:ExamID"       json:"exam,omitempty"`
	Assignment *Assignment `gorm:"foreignKey:AssignmentID" json:"assignment,omitempty"`
	Student    *Student    `gorm:"foreignKey:StudentID"    json:"student,omitempty"`
}

func (Result) TableName() string { return "results" }

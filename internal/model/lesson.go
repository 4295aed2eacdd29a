package model

import "time"

// Lesson day values. Lessons run on weekdays only.
const (
	DayMonday    = "MONDAY"
	DayTuesday   = "TUESDAY"
	DayWednesday = "WEDNESDAY"
	DayThursday  = "THURSDAY"
	DayFriday    = "FRIDAY"
)

// Lesson is a recurring class session (table lessons).
type Lesson struct {
	ID          int       `gorm:"primaryKey"                 json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Day         string    `gorm:"type:varchar(10);not null"  json:"day"`
	StartTime   time.Time `gorm:"not null"                   json:"start_time"`
	EndTime     time.Time `gorm:"not null"                   json:"end_time"`
	SubjectID   int       `gorm:"not null"                   json:"subject_id"`
	ClassID     int       `gorm:"not null"                   json:"class_id"`
	TeacherID   string    `gorm:"type:varchar(64);not null"  json:"teacher_id"`
	Description *string   `gorm:"type:text"                  json:"description,omitempty"`
	Content     *string   `gorm:"type:text"                  json:"content,omitempty"`
	FileURL     *string   `gorm:"type:varchar(512)"          json:"file_url,omitempty"`

	Subject *Subject `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	Class   *Class   `gorm:"foreignKey:ClassID"   json:"class,omitempty"`
	Teacher *Teacher `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
}

func (Lesson) TableName() string { return "lessons" }

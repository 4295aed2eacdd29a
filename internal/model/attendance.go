package model

import "time"

// Attendance is one per-student presence row (table attendances).
// StudentID is nullable: a session can be recorded for a class before any
// student is marked.
type Attendance struct {
	ID        int       `gorm:"primaryKey"             json:"id"`
	Date      time.Time `gorm:"not null"               json:"date"`
	Present   bool      `gorm:"not null;default:false" json:"present"`
	Capacity  int       `gorm:"not null;default:0"     json:"capacity"`
	StudentID *string   `gorm:"type:varchar(64)"       json:"student_id,omitempty"`
	ClassID   int       `gorm:"not null"               json:"class_id"`

	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Class   *Class   `gorm:"foreignKey:ClassID"   json:"class,omitempty"`
}

func (Attendance) TableName() string { return "attendances" }

package dto

import "time"

// CreateAttendanceRequest records one attendance mark. StudentID may be
// omitted for a roll-call placeholder row.
type CreateAttendanceRequest struct {
	Date      time.Time `json:"date"     binding:"required"`
	Present   bool      `json:"present"`
	Capacity  int       `json:"capacity" binding:"required,min=1"`
	ClassID   int       `json:"class_id" binding:"required,min=1"`
	StudentID *string   `json:"student_id"`
}

// UpdateAttendanceRequest updates an attendance record.
type UpdateAttendanceRequest struct {
	Date      time.Time `json:"date"     binding:"required"`
	Present   bool      `json:"present"`
	Capacity  int       `json:"capacity" binding:"required,min=1"`
	ClassID   int       `json:"class_id" binding:"required,min=1"`
	StudentID *string   `json:"student_id"`
}

// AttendanceResponse is a single attendance row.
type AttendanceResponse struct {
	ID        int          `json:"id"`
	Date      time.Time    `json:"date"`
	Present   bool         `json:"present"`
	Capacity  int          `json:"capacity"`
	ClassID   int          `json:"class_id"`
	StudentID *string      `json:"student_id,omitempty"`
	Student   *PersonBrief `json:"student,omitempty"`
}

// AttendanceGroup is one roll-call session: every record of a class that
// shares the same calendar day, presence flag and capacity, collapsed into
// a single row with the student names in insertion order.
type AttendanceGroup struct {
	Date         time.Time `json:"date"`
	Present      bool      `json:"present"`
	Capacity     int       `json:"capacity"`
	StudentNames []string  `json:"student_names"`
	RecordIDs    []int     `json:"record_ids"`
}

// DeleteAttendanceGroupRequest deletes every record in one roll-call
// session, addressed by its grouping key.
type DeleteAttendanceGroupRequest struct {
	ClassID  int       `json:"class_id" binding:"required,min=1"`
	Date     time.Time `json:"date"     binding:"required"`
	Present  bool      `json:"present"`
	Capacity int       `json:"capacity" binding:"required,min=1"`
}

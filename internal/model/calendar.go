package model

// Calendar is a recurring weekly teaching slot (table calendars).
// StartTime and EndTime are wall-clock "HH:mm" strings; DayOfWeek is a full
// weekday name ("Monday" .. "Sunday"). The projection onto concrete dates
// happens at read time, never in storage.
type Calendar struct {
	ID        int    `gorm:"primaryKey"                json:"id"`
	TeacherID string `gorm:"type:varchar(64);not null" json:"teacher_id"`
	ClassID   int    `gorm:"not null"                  json:"class_id"`
	StartTime string `gorm:"type:varchar(5);not null"  json:"start_time"`
	EndTime   string `gorm:"type:varchar(5);not null"  json:"end_time"`
	DayOfWeek string `gorm:"type:varchar(10);not null" json:"day_of_week"`

	Teacher  *Teacher  `gorm:"foreignKey:TeacherID"        json:"teacher,omitempty"`
	Class    *Class    `gorm:"foreignKey:ClassID"          json:"class,omitempty"`
	Subjects []Subject `gorm:"many2many:calendar_subjects" json:"subjects,omitempty"`
}

func (Calendar) TableName() string { return "calendars" }

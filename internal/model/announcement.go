package model

import "time"

// Announcement is a dated notice, either class-scoped or school-wide
// (ClassID NULL) (table announcements).
type Announcement struct {
	ID          int       `gorm:"primaryKey"                 json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null"         json:"description"`
	Date        time.Time `gorm:"not null"                   json:"date"`
	ClassID     *int      `json:"class_id,omitempty"`

	Class *Class `gorm:"foreignKey:ClassID" json:"class,omitempty"`
}

func (Announcement) TableName() string { return "announcements" }

package dto

import "time"

// CreateAnnouncementRequest posts an announcement. ClassID may be omitted
// for a school-wide notice.
type CreateAnnouncementRequest struct {
	Title       string    `json:"title"       binding:"required,min=1"`
	Description string    `json:"description" binding:"required,min=1"`
	Date        time.Time `json:"date"        binding:"required"`
	ClassID     *int      `json:"class_id"`
}

// UpdateAnnouncementRequest updates an announcement.
type UpdateAnnouncementRequest struct {
	Title       string    `json:"title"       binding:"required,min=1"`
	Description string    `json:"description" binding:"required,min=1"`
	Date        time.Time `json:"date"        binding:"required"`
	ClassID     *int      `json:"class_id"`
}

// AnnouncementResponse is an announcement row.
type AnnouncementResponse struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Date        time.Time   `json:"date"`
	ClassID     *int        `json:"class_id,omitempty"`
	Class       *ClassBrief `json:"class,omitempty"`
}

package dto

// --- grades ---

// CreateGradeRequest creates a year level.
type CreateGradeRequest struct {
	Level int `json:"level" binding:"required,min=1"`
}

// UpdateGradeRequest updates a year level.
type UpdateGradeRequest struct {
	Level *int `json:"level" binding:"omitempty,min=1"`
}

// GradeResponse is a grade record.
type GradeResponse struct {
	ID    int `json:"id"`
	Level int `json:"level"`
}

// --- classes ---

// CreateClassRequest mirrors the class form schema.
type CreateClassRequest struct {
	Name         string  `json:"name"          binding:"required,min=1"`
	Capacity     int     `json:"capacity"      binding:"required,min=1"`
	GradeID      int     `json:"grade_id"      binding:"required,min=1"`
	SupervisorID *string `json:"supervisor_id" binding:"omitempty"`
}

// UpdateClassRequest updates a class; nil fields are left unchanged.
type UpdateClassRequest struct {
	Name         *string `json:"name"          binding:"omitempty,min=1"`
	Capacity     *int    `json:"capacity"      binding:"omitempty,min=1"`
	GradeID      *int    `json:"grade_id"      binding:"omitempty,min=1"`
	SupervisorID *string `json:"supervisor_id"`
}

// ClassResponse is a class record with brief relations.
type ClassResponse struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Capacity     int           `json:"capacity"`
	GradeID      int           `json:"grade_id"`
	SupervisorID *string        `json:"supervisor_id,omitempty"`
	Grade        *GradeResponse `json:"grade,omitempty"`
	Supervisor   *PersonBrief   `json:"supervisor,omitempty"`
	StudentCount int64          `json:"student_count"`
}

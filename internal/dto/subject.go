package dto

// CreateSubjectRequest mirrors the subject form schema.
type CreateSubjectRequest struct {
	Name       string   `json:"name"        binding:"required,min=1"`
	TeacherIDs []string `json:"teacher_ids"`
}

// UpdateSubjectRequest updates a subject, replacing its teacher set.
type UpdateSubjectRequest struct {
	Name       string   `json:"name"        binding:"required,min=1"`
	TeacherIDs []string `json:"teacher_ids"`
}

// SubjectResponse is a subject record.
type SubjectResponse struct {
	ID       int           `json:"id"`
	Name     string        `json:"name"`
	Teachers []PersonBrief `json:"teachers,omitempty"`
}

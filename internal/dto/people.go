package dto

import "time"

// PersonBrief is a name-only view embedded in other responses.
type PersonBrief struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// --- teachers ---

// CreateTeacherRequest mirrors the teacher form schema. Username and
// password go to the identity provider; the rest is stored locally.
type CreateTeacherRequest struct {
	Username  string    `json:"username"   binding:"required,min=3,max=20"`
	Password  string    `json:"password"   binding:"required,min=8"`
	Name      string    `json:"name"       binding:"required,min=1"`
	Surname   string    `json:"surname"    binding:"required,min=1"`
	Email     *string   `json:"email"      binding:"omitempty,email"`
	Phone     *string   `json:"phone"`
	Address   string    `json:"address"    binding:"required"`
	Img       *string   `json:"img"`
	BloodType string    `json:"blood_type" binding:"required,min=1"`
	Sex       string    `json:"sex"        binding:"required,oneof=MALE FEMALE"`
	Birthday  time.Time `json:"birthday"   binding:"required"`

	SubjectIDs []int `json:"subject_ids"`
}

// UpdateTeacherRequest updates a teacher. Password is forwarded to the
// identity provider only when non-empty.
type UpdateTeacherRequest struct {
	Username  string    `json:"username"   binding:"required,min=3,max=20"`
	Password  string    `json:"password"   binding:"omitempty,min=8"`
	Name      string    `json:"name"       binding:"required,min=1"`
	Surname   string    `json:"surname"    binding:"required,min=1"`
	Email     *string   `json:"email"      binding:"omitempty,email"`
	Phone     *string   `json:"phone"`
	Address   string    `json:"address"    binding:"required"`
	Img       *string   `json:"img"`
	BloodType string    `json:"blood_type" binding:"required,min=1"`
	Sex       string    `json:"sex"        binding:"required,oneof=MALE FEMALE"`
	Birthday  time.Time `json:"birthday"   binding:"required"`

	SubjectIDs []int `json:"subject_ids"`
}

// TeacherResponse is a teacher record.
type TeacherResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Address   string    `json:"address"`
	Img       *string   `json:"img,omitempty"`
	BloodType string    `json:"blood_type"`
	Sex       string    `json:"sex"`
	Birthday  time.Time `json:"birthday"`

	Subjects []SubjectResponse `json:"subjects,omitempty"`
}

// --- students ---

// CreateStudentRequest mirrors the student form schema.
type CreateStudentRequest struct {
	Username  string    `json:"username"   binding:"required,min=3,max=20"`
	Password  string    `json:"password"   binding:"required,min=8"`
	Name      string    `json:"name"       binding:"required,min=1"`
	Surname   string    `json:"surname"    binding:"required,min=1"`
	Email     *string   `json:"email"      binding:"omitempty,email"`
	Phone     *string   `json:"phone"`
	Address   string    `json:"address"    binding:"required"`
	Img       *string   `json:"img"`
	BloodType string    `json:"blood_type" binding:"required,min=1"`
	Sex       string    `json:"sex"        binding:"required,oneof=MALE FEMALE"`
	Birthday  time.Time `json:"birthday"   binding:"required"`
	GradeID   int       `json:"grade_id"   binding:"required,min=1"`
	ClassID   int       `json:"class_id"   binding:"required,min=1"`
	ParentID  string    `json:"parent_id"  binding:"required,min=1"`
}

// UpdateStudentRequest updates a student.
type UpdateStudentRequest struct {
	Username  string    `json:"username"   binding:"required,min=3,max=20"`
	Password  string    `json:"password"   binding:"omitempty,min=8"`
	Name      string    `json:"name"       binding:"required,min=1"`
	Surname   string    `json:"surname"    binding:"required,min=1"`
	Email     *string   `json:"email"      binding:"omitempty,email"`
	Phone     *string   `json:"phone"`
	Address   string    `json:"address"    binding:"required"`
	Img       *string   `json:"img"`
	BloodType string    `json:"blood_type" binding:"required,min=1"`
	Sex       string    `json:"sex"        binding:"required,oneof=MALE FEMALE"`
	Birthday  time.Time `json:"birthday"   binding:"required"`
	GradeID   int       `json:"grade_id"   binding:"required,min=1"`
	ClassID   int       `json:"class_id"   binding:"required,min=1"`
	ParentID  string    `json:"parent_id"  binding:"required,min=1"`
}

// StudentResponse is a student record with brief relations.
type StudentResponse struct {
	ID        string       `json:"id"`
	Username  string       `json:"username"`
	Name      string       `json:"name"`
	Surname   string       `json:"surname"`
	Email     *string      `json:"email,omitempty"`
	Phone     *string      `json:"phone,omitempty"`
	Address   string       `json:"address"`
	Img       *string      `json:"img,omitempty"`
	BloodType string       `json:"blood_type"`
	Sex       string       `json:"sex"`
	Birthday  time.Time    `json:"birthday"`
	GradeID   int          `json:"grade_id"`
	ClassID   int          `json:"class_id"`
	ParentID  string       `json:"parent_id"`
	Class     *ClassBrief  `json:"class,omitempty"`
	Parent    *PersonBrief `json:"parent,omitempty"`
}

// ClassBrief is a name-only class view embedded in other responses.
type ClassBrief struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// --- parents ---

// CreateParentRequest mirrors the parent form schema.
type CreateParentRequest struct {
	Username string  `json:"username" binding:"required,min=3,max=20"`
	Password string  `json:"password" binding:"required,min=8"`
	Name     string  `json:"name"     binding:"required,min=1"`
	Surname  string  `json:"surname"  binding:"required,min=1"`
	Email    *string `json:"email"    binding:"omitempty,email"`
	Phone    string  `json:"phone"    binding:"required,min=1"`
	Address  string  `json:"address"  binding:"required,min=1"`
}

// UpdateParentRequest updates a parent.
type UpdateParentRequest struct {
	Username string  `json:"username" binding:"required,min=3,max=20"`
	Password string  `json:"password" binding:"omitempty,min=8"`
	Name     string  `json:"name"     binding:"required,min=1"`
	Surname  string  `json:"surname"  binding:"required,min=1"`
	Email    *string `json:"email"    binding:"omitempty,email"`
	Phone    string  `json:"phone"    binding:"required,min=1"`
	Address  string  `json:"address"  binding:"required,min=1"`
}

// ParentResponse is a parent record.
type ParentResponse struct {
	ID       string        `json:"id"`
	Username string        `json:"username"`
	Name     string        `json:"name"`
	Surname  string        `json:"surname"`
	Email    *string       `json:"email,omitempty"`
	Phone    string        `json:"phone"`
	Address  string        `json:"address"`
	Students []PersonBrief `json:"students,omitempty"`
}

package model

import "time"

// Sex values mirror the form enum.
const (
	SexMale   = "MALE"
	SexFemale = "FEMALE"
)

// Teacher is an account-linked staff record (table teachers).
// ID is the identity-provider user id, assigned on account creation.
type Teacher struct {
	ID        string    `gorm:"type:varchar(64);primaryKey"      json:"id"`
	Username  string    `gorm:"type:varchar(20);not null;unique" json:"username"`
	Name      string    `gorm:"type:varchar(100);not null"       json:"name"`
	Surname   string    `gorm:"type:varchar(100);not null"       json:"surname"`
	Email     *string   `gorm:"type:varchar(255);unique"         json:"email,omitempty"`
	Phone     *string   `gorm:"type:varchar(20);unique"          json:"phone,omitempty"`
	Address   string    `gorm:"type:varchar(255);not null"       json:"address"`
	Img       *string   `gorm:"type:varchar(512)"                json:"img,omitempty"`
	BloodType string    `gorm:"type:varchar(5);not null"         json:"blood_type"`
	Sex       string    `gorm:"type:varchar(10);not null"        json:"sex"`
	Birthday  time.Time `gorm:"not null"                         json:"birthday"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Subjects []Subject `gorm:"many2many:subject_teachers" json:"subjects,omitempty"`
	Lessons  []Lesson  `gorm:"foreignKey:TeacherID"       json:"lessons,omitempty"`
	Classes  []Class   `gorm:"foreignKey:SupervisorID"    json:"classes,omitempty"`
}

func (Teacher) TableName() string { return "teachers" }

// Student is an account-linked pupil record (table students).
type Student struct {
	ID        string    `gorm:"type:varchar(64);primaryKey"      json:"id"`
	Username  string    `gorm:"type:varchar(20);not null;unique" json:"username"`
	Name      string    `gorm:"type:varchar(100);not null"       json:"name"`
	Surname   string    `gorm:"type:varchar(100);not null"       json:"surname"`
	Email     *string   `gorm:"type:varchar(255);unique"         json:"email,omitempty"`
	Phone     *string   `gorm:"type:varchar(20);unique"          json:"phone,omitempty"`
	Address   string    `gorm:"type:varchar(255);not null"       json:"address"`
	Img       *string   `gorm:"type:varchar(512)"                json:"img,omitempty"`
	BloodType string    `gorm:"type:varchar(5);not null"         json:"blood_type"`
	Sex       string    `gorm:"type:varchar(10);not null"        json:"sex"`
	Birthday  time.Time `gorm:"not null"                         json:"birthday"`
	GradeID   int       `gorm:"not null"                         json:"grade_id"`
	ClassID   int       `gorm:"not null"                         json:"class_id"`
	ParentID  string    `gorm:"type:varchar(64);not null"        json:"parent_id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Grade  *Grade  `gorm:"foreignKey:GradeID"  json:"grade,omitempty"`
	Class  *Class  `gorm:"foreignKey:ClassID"  json:"class,omitempty"`
	Parent *Parent `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
}

func (Student) TableName() string { return "students" }

// Parent is an account-linked guardian record (table parents).
type Parent struct {
	ID        string    `gorm:"type:varchar(64);primaryKey"      json:"id"`
	Username  string    `gorm:"type:varchar(20);not null;unique" json:"username"`
	Name      string    `gorm:"type:varchar(100);not null"       json:"name"`
	Surname   string    `gorm:"type:varchar(100);not null"       json:"surname"`
	Email     *string   `gorm:"type:varchar(255);unique"         json:"email,omitempty"`
	Phone     string    `gorm:"type:varchar(20);not null;unique" json:"phone"`
	Address   string    `gorm:"type:varchar(255);not null"       json:"address"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Students []Student `gorm:"foreignKey:ParentID" json:"students,omitempty"`
}

func (Parent) TableName() string { return "parents" }

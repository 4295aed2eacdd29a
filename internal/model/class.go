package model

// Grade is a school year level (table grades).
type Grade struct {
	ID    int `gorm:"primaryKey" json:"id"`
	Level int `gorm:"not null;unique" json:"level"`

	Classes  []Class   `gorm:"foreignKey:GradeID" json:"classes,omitempty"`
	Students []Student `gorm:"foreignKey:GradeID" json:"students,omitempty"`
}

func (Grade) TableName() string { return "grades" }

// Class is a homeroom group of students (table classes).
type Class struct {
	ID           int     `gorm:"primaryKey"                 json:"id"`
	Name         string  `gorm:"type:varchar(50);not null;unique" json:"name"`
	Capacity     int     `gorm:"not null"                   json:"capacity"`
	GradeID      int     `gorm:"not null"                   json:"grade_id"`
	SupervisorID *string `gorm:"type:varchar(64)"           json:"supervisor_id,omitempty"`

	Grade      *Grade    `gorm:"foreignKey:GradeID"      json:"grade,omitempty"`
	Supervisor *Teacher  `gorm:"foreignKey:SupervisorID" json:"supervisor,omitempty"`
	Students   []Student `gorm:"foreignKey:ClassID"      json:"students,omitempty"`
	Lessons    []Lesson  `gorm:"foreignKey:ClassID"      json:"lessons,omitempty"`
}

func (Class) TableName() string { return "classes" }

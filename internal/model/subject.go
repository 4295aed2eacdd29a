package model

// Subject is a taught discipline (table subjects).
type Subject struct {
	ID   int    `gorm:"primaryKey"                        json:"id"`
	Name string `gorm:"type:varchar(100);not null;unique" json:"name"`

	Teachers []Teacher `gorm:"many2many:subject_teachers" json:"teachers,omitempty"`
	Lessons  []Lesson  `gorm:"foreignKey:SubjectID"       json:"lessons,omitempty"`
}

func (Subject) TableName() string { return "subjects" }

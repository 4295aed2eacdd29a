// Package scope builds role-scoped listing filters. Every listing endpoint
// composes the same two layers: explicit query parameters (optional,
// validated), then a mandatory role-derived visibility restriction that
// query parameters can never widen. The result is a SQL predicate fragment
// applied through GORM's Where.
package scope

import (
	"sort"
	"strconv"
	"strings"

	apperrors "github.com/NguyenMaiPhuong311/ISD-Final/pkg/errors"
)

// Role is the caller's visibility class.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleParent  Role = "parent"
)

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent, RoleParent:
		return true
	}
	return false
}

// Entity selects the per-entity field paths used by Build.
type Entity string

const (
	EntityLesson       Entity = "lesson"
	EntityExam         Entity = "exam"
	EntityAssignment   Entity = "assignment"
	EntityResult       Entity = "result"
	EntityStudent      Entity = "student"
	EntityTeacher      Entity = "teacher"
	EntityParent       Entity = "parent"
	EntityClass        Entity = "class"
	EntityAnnouncement Entity = "announcement"
	EntityCalendar     Entity = "calendar"
)

// Filter is an AND-composed SQL predicate fragment.
type Filter struct {
	exprs []string
	args  []interface{}
}

// And appends one predicate to the filter.
func (f *Filter) And(expr string, args ...interface{}) *Filter {
	f.exprs = append(f.exprs, expr)
	f.args = append(f.args, args...)
	return f
}

// Empty reports whether the filter has no predicates.
func (f *Filter) Empty() bool { return len(f.exprs) == 0 }

// Expr returns the combined predicate expression.
func (f *Filter) Expr() string { return strings.Join(f.exprs, " AND ") }

// Args returns the placeholder arguments in expression order.
func (f *Filter) Args() []interface{} { return f.args }

type paramBuilder func(f *Filter, value string) error

type entitySpec struct {
	params     map[string]paramBuilder
	visibility func(f *Filter, role Role, userID string)
}

// Build composes the filter for one listing request. Unrecognized keys are
// ignored; a malformed value for a recognized key fails the whole build so
// no partial filter is ever applied. The role restriction is layered last
// and cannot be overridden by parameters.
func Build(entity Entity, role Role, userID string, params map[string]string) (*Filter, error) {
	spec, ok := specs[entity]
	if !ok {
		return nil, apperrors.NewValidation("entity", "unknown entity "+string(entity))
	}

	f := &Filter{}

	// deterministic parameter order
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		builder, recognized := spec.params[k]
		if !recognized {
			continue
		}
		v := params[k]
		if v == "" {
			continue
		}
		if err := builder(f, v); err != nil {
			return nil, err
		}
	}

	if spec.visibility != nil && role != RoleAdmin {
		spec.visibility(f, role, userID)
	}

	return f, nil
}

// --- parameter builders ---

func intColumn(column, key string) paramBuilder {
	return func(f *Filter, value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return apperrors.NewValidation(key, "must be an integer")
		}
		f.And(column+" = ?", n)
		return nil
	}
}

func stringColumn(column string) paramBuilder {
	return func(f *Filter, value string) error {
		f.And(column+" = ?", value)
		return nil
	}
}

// searchColumns matches a case-insensitive substring against any of the
// given text columns.
func searchColumns(columns ...string) paramBuilder {
	return func(f *Filter, value string) error {
		parts := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, col := range columns {
			parts[i] = col + " ILIKE ?"
			args[i] = "%" + value + "%"
		}
		f.And("("+strings.Join(parts, " OR ")+")", args...)
		return nil
	}
}

// --- reachability fragments ---

const (
	classOfStudent   = "(SELECT class_id FROM students WHERE students.id = ?)"
	classesOfParent  = "(SELECT class_id FROM students WHERE students.parent_id = ?)"
	lessonsOfTeacher = "(SELECT id FROM lessons WHERE lessons.teacher_id = ?)"
)

var specs = map[Entity]entitySpec{
	EntityLesson: {
		params: map[string]paramBuilder{
			"classId":   intColumn("lessons.class_id", "classId"),
			"teacherId": stringColumn("lessons.teacher_id"),
			"search": searchColumns(
				"lessons.name", "lessons.title", "lessons.description", "lessons.content",
			),
		},
		visibility: func(f *Filter, role Role, userID string) {
			switch role {
			case RoleTeacher:
				f.And("lessons.teacher_id = ?", userID)
			case RoleStudent:
				f.And("lessons.class_id IN "+classOfStudent, userID)
			case RoleParent:
				f.And("lessons.class_id IN "+classesOfParent, userID)
			}
		},
	},
	EntityExam: {
		params: map[string]paramBuilder{
			"classId": func(f *Filter, value string) error {
				n, err := strconv.Atoi(value)
				if err != nil {
					return apperrors.NewValidation("classId", "must be an integer")
				}
				f.And("exams.lesson_id IN (SELECT id FROM lessons WHERE lessons.class_id = ?)", n)
				return nil
			},
			"teacherId": func(f *Filter, value string) error {
				f.And("exams.lesson_id IN "+lessonsOfTeacher, value)
				return nil
			},
			"search": func(f *Filter, value string) error {
				f.And("exams.lesson_id IN (SELECT id FROM lessons WHERE lessons.subject_id IN (SELECT id FROM subjects WHERE subjects.name ILIKE ?))", "%"+value+"%")
				return nil
			},
		},
		visibility: lessonOwnedVisibility("exams"),
	},
	EntityAssignment: {
		params: map[string]paramBuilder{
			"classId": func(f *Filter, value string) error {
				n, err := strconv.Atoi(value)
				if err != nil {
					return apperrors.NewValidation("classId", "must be an integer")
				}
				f.And("assignments.lesson_id IN (SELECT id FROM lessons WHERE lessons.class_id = ?)", n)
				return nil
			},
			"teacherId": func(f *Filter, value string) error {
				f.And("assignments.lesson_id IN "+lessonsOfTeacher, value)
				return nil
			},
			"search": func(f *Filter, value string) error {
				f.And("assignments.lesson_id IN (SELECT id FROM lessons WHERE lessons.subject_id IN (SELECT id FROM subjects WHERE subjects.name ILIKE ?))", "%"+value+"%")
				return nil
			},
		},
		visibility: lessonOwnedVisibility("assignments"),
	},
	EntityResult: {
		params: map[string]paramBuilder{
			"studentId": stringColumn("results.student_id"),
			"search": func(f *Filter, value string) error {
				like := "%" + value + "%"
				f.And("(results.exam_id IN (SELECT id FROM exams WHERE exams.title ILIKE ?)"+
					" OR results.assignment_id IN (SELECT id FROM assignments WHERE assignments.title ILIKE ?)"+
					" OR results.student_id IN (SELECT id FROM students WHERE students.name ILIKE ?))",
					like, like, like)
				return nil
			},
		},
		visibility: func(f *Filter, role Role, userID string) {
			switch role {
			case RoleTeacher:
				f.And("(results.exam_id IN (SELECT e.id FROM exams e JOIN lessons l ON e.lesson_id = l.id WHERE l.teacher_id = ?)"+
					" OR results.assignment_id IN (SELECT a.id FROM assignments a JOIN lessons l ON a.lesson_id = l.id WHERE l.teacher_id = ?))",
					userID, userID)
			case RoleStudent:
				f.And("results.student_id = ?", userID)
			case RoleParent:
				f.And("results.student_id IN (SELECT id FROM students WHERE students.parent_id = ?)", userID)
			}
		},
	},
	EntityStudent: {
		params: map[string]paramBuilder{
			"classId": intColumn("students.class_id", "classId"),
			"teacherId": func(f *Filter, value string) error {
				f.And("students.class_id IN (SELECT class_id FROM lessons WHERE lessons.teacher_id = ?)", value)
				return nil
			},
			"search": searchColumns("students.name", "students.surname"),
		},
		visibility: func(f *Filter, role Role, userID string) {
			switch role {
			case RoleTeacher:
				f.And("students.class_id IN (SELECT class_id FROM lessons WHERE lessons.teacher_id = ?)", userID)
			case RoleStudent:
				f.And("students.id = ?", userID)
			case RoleParent:
				f.And("students.parent_id = ?", userID)
			}
		},
	},
	EntityTeacher: {
		params: map[string]paramBuilder{
			"classId": func(f *Filter, value string) error {
				n, err := strconv.Atoi(value)
				if err != nil {
					return apperrors.NewValidation("classId", "must be an integer")
				}
				f.And("teachers.id IN (SELECT teacher_id FROM lessons WHERE lessons.class_id = ?)", n)
				return nil
			},
			"search": searchColumns("teachers.name", "teachers.surname"),
		},
	},
	EntityParent: {
		params: map[string]paramBuilder{
			"search": searchColumns("parents.name", "parents.surname"),
		},
	},
	EntityClass: {
		params: map[string]paramBuilder{
			"supervisorId": stringColumn("classes.supervisor_id"),
			"search":       searchColumns("classes.name"),
		},
	},
	EntityAnnouncement: {
		params: map[string]paramBuilder{
			"classId": intColumn("announcements.class_id", "classId"),
			"search":  searchColumns("announcements.title"),
		},
		visibility: func(f *Filter, role Role, userID string) {
			switch role {
			case RoleTeacher:
				f.And("announcements.class_id IN (SELECT class_id FROM lessons WHERE lessons.teacher_id = ?)", userID)
			case RoleStudent:
				f.And("announcements.class_id IN "+classOfStudent, userID)
			case RoleParent:
				f.And("announcements.class_id IN "+classesOfParent, userID)
			}
		},
	},
	EntityCalendar: {
		params: map[string]paramBuilder{
			"teacherId": stringColumn("calendars.teacher_id"),
			"classId":   intColumn("calendars.class_id", "classId"),
			"search":    searchColumns("calendars.day_of_week"),
		},
	},
}

// lessonOwnedVisibility scopes entities reached through their owning lesson
// (exams, assignments).
func lessonOwnedVisibility(table string) func(f *Filter, role Role, userID string) {
	return func(f *Filter, role Role, userID string) {
		col := table + ".lesson_id"
		switch role {
		case RoleTeacher:
			f.And(col+" IN "+lessonsOfTeacher, userID)
		case RoleStudent:
			f.And(col+" IN (SELECT id FROM lessons WHERE lessons.class_id IN "+classOfStudent+")", userID)
		case RoleParent:
			f.And(col+" IN (SELECT id FROM lessons WHERE lessons.class_id IN "+classesOfParent+")", userID)
		}
	}
}

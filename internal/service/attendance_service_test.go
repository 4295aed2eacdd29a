package service

import (
	"testing"
	"time"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/model"
)

func rollCallRow(id int, date time.Time, present bool, capacity int, student *model.Student) model.Attendance {
	return model.Attendance{
		ID:       id,
		Date:     date,
		Present:  present,
		Capacity: capacity,
		ClassID:  1,
		Student:  student,
	}
}

func TestGroupAttendance_CollapsesSameSession(t *testing.T) {
	morning := time.Date(2024, 5, 13, 8, 0, 0, 0, time.UTC)
	lateMorning := time.Date(2024, 5, 13, 8, 5, 0, 0, time.UTC)

	rows := []model.Attendance{
		rollCallRow(1, morning, true, 30, &model.Student{Name: "Anna", Surname: "Tran"}),
		rollCallRow(2, lateMorning, true, 30, &model.Student{Name: "Binh", Surname: "Le"}),
		rollCallRow(3, morning, false, 30, &model.Student{Name: "Chi", Surname: "Ngo"}),
	}

	groups := GroupAttendance(rows)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	present := groups[0]
	if !present.Present || present.Capacity != 30 {
		t.Errorf("first group = %+v, want present capacity-30 session", present)
	}
	if len(present.StudentNames) != 2 || present.StudentNames[0] != "Anna Tran" || present.StudentNames[1] != "Binh Le" {
		t.Errorf("present names = %v", present.StudentNames)
	}
	if len(present.RecordIDs) != 2 || present.RecordIDs[0] != 1 || present.RecordIDs[1] != 2 {
		t.Errorf("present record ids = %v", present.RecordIDs)
	}

	absent := groups[1]
	if absent.Present {
		t.Error("second group should be the absent session")
	}
	if len(absent.RecordIDs) != 1 || absent.RecordIDs[0] != 3 {
		t.Errorf("absent record ids = %v", absent.RecordIDs)
	}
}

func TestGroupAttendance_CapacitySplitsGroups(t *testing.T) {
	day := time.Date(2024, 5, 13, 8, 0, 0, 0, time.UTC)

	rows := []model.Attendance{
		rollCallRow(1, day, true, 30, nil),
		rollCallRow(2, day, true, 25, nil),
	}

	groups := GroupAttendance(rows)
	if len(groups) != 2 {
		t.Fatalf("expected capacity to split groups, got %d", len(groups))
	}
}

func TestGroupAttendance_NilStudentAddsNoName(t *testing.T) {
	day := time.Date(2024, 5, 13, 8, 0, 0, 0, time.UTC)

	rows := []model.Attendance{
		rollCallRow(1, day, true, 30, nil),
		rollCallRow(2, day, true, 30, &model.Student{Name: "Anna", Surname: "Tran"}),
	}

	groups := GroupAttendance(rows)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if len(groups[0].StudentNames) != 1 {
		t.Errorf("names = %v, want only the named row", groups[0].StudentNames)
	}
	if len(groups[0].RecordIDs) != 2 {
		t.Errorf("record ids = %v, want both rows tracked", groups[0].RecordIDs)
	}
}

func TestGroupAttendance_DuplicateNamesKept(t *testing.T) {
	day := time.Date(2024, 5, 13, 8, 0, 0, 0, time.UTC)
	anna := &model.Student{Name: "Anna", Surname: "Tran"}

	rows := []model.Attendance{
		rollCallRow(1, day, true, 30, anna),
		rollCallRow(2, day, true, 30, anna),
	}

	groups := GroupAttendance(rows)
	if len(groups[0].StudentNames) != 2 {
		t.Errorf("names = %v, duplicates must be kept", groups[0].StudentNames)
	}
}

func TestGroupAttendance_GroupOrderIsFirstOccurrence(t *testing.T) {
	monday := time.Date(2024, 5, 13, 8, 0, 0, 0, time.UTC)
	tuesday := time.Date(2024, 5, 14, 8, 0, 0, 0, time.UTC)

	rows := []model.Attendance{
		rollCallRow(1, tuesday, true, 30, nil),
		rollCallRow(2, monday, true, 30, nil),
		rollCallRow(3, tuesday, true, 30, nil),
	}

	groups := GroupAttendance(rows)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	// Group dates are truncated to midnight, so compare against the day.
	tuesdayMidnight := time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC)
	if !groups[0].Date.Equal(tuesdayMidnight) {
		t.Errorf("first group date = %v, want the first-seen session day %v", groups[0].Date, tuesdayMidnight)
	}
}

func TestGroupAttendance_EmptyInput(t *testing.T) {
	groups := GroupAttendance(nil)
	if len(groups) != 0 {
		t.Errorf("expected no groups, got %d", len(groups))
	}
}

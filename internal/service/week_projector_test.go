package service

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/NguyenMaiPhuong311/ISD-Final/pkg/errors"
)

// Wednesday, 2024-05-15. The week's Monday is 2024-05-13.
var refWednesday = time.Date(2024, 5, 15, 12, 30, 0, 0, time.UTC)

func TestProjectWeek_PinsToCurrentWeek(t *testing.T) {
	p := NewWeekProjector(zap.NewNop())

	events, err := p.ProjectWeek(refWednesday, []WeeklySlot{
		{Title: "Math", Day: "Monday", Start: "08:00", End: "09:30"},
		{Title: "English", Day: "Friday", Start: "13:15", End: "14:00"},
	})
	if err != nil {
		t.Fatalf("ProjectWeek: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	wantStart := time.Date(2024, 5, 13, 8, 0, 0, 0, time.UTC)
	if !events[0].Start.Equal(wantStart) {
		t.Errorf("Monday start = %v, want %v", events[0].Start, wantStart)
	}
	wantEnd := time.Date(2024, 5, 13, 9, 30, 0, 0, time.UTC)
	if !events[0].End.Equal(wantEnd) {
		t.Errorf("Monday end = %v, want %v", events[0].End, wantEnd)
	}

	wantFriday := time.Date(2024, 5, 17, 13, 15, 0, 0, time.UTC)
	if !events[1].Start.Equal(wantFriday) {
		t.Errorf("Friday start = %v, want %v", events[1].Start, wantFriday)
	}
}

func TestProjectWeek_AllSevenWeekdaysLandInAnchorWeek(t *testing.T) {
	p := NewWeekProjector(zap.NewNop())

	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	slots := make([]WeeklySlot, 0, len(days))
	for _, d := range days {
		slots = append(slots, WeeklySlot{Title: d, Day: d, Start: "08:00", End: "09:00"})
	}

	events, err := p.ProjectWeek(refWednesday, slots)
	if err != nil {
		t.Fatalf("ProjectWeek: %v", err)
	}
	if len(events) != len(days) {
		t.Fatalf("expected %d events, got %d", len(days), len(events))
	}

	monday := time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC)
	weekEnd := monday.AddDate(0, 0, 7)
	for i, ev := range events {
		if ev.Start.Before(monday) || !ev.Start.Before(weekEnd) {
			t.Errorf("%s: start %v outside week [%v, %v)", days[i], ev.Start, monday, weekEnd)
		}
		if got := ev.Start.Weekday().String(); got != days[i] {
			t.Errorf("slot %s projected onto %s", days[i], got)
		}
		wantStart := monday.AddDate(0, 0, i).Add(8 * time.Hour)
		if !ev.Start.Equal(wantStart) {
			t.Errorf("%s: start = %v, want %v", days[i], ev.Start, wantStart)
		}
	}
}

func TestProjectWeek_SundayBelongsToPrecedingMonday(t *testing.T) {
	p := NewWeekProjector(zap.NewNop())

	// Sunday, 2024-05-19: its week anchor is still Monday 2024-05-13.
	sunday := time.Date(2024, 5, 19, 23, 0, 0, 0, time.UTC)
	events, err := p.ProjectWeek(sunday, []WeeklySlot{
		{Title: "Club", Day: "Monday", Start: "10:00", End: "11:00"},
	})
	if err != nil {
		t.Fatalf("ProjectWeek: %v", err)
	}

	wantStart := time.Date(2024, 5, 13, 10, 0, 0, 0, time.UTC)
	if !events[0].Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", events[0].Start, wantStart)
	}
}

func TestProjectWeek_AcceptsRFC3339Timestamps(t *testing.T) {
	p := NewWeekProjector(zap.NewNop())

	// Only the wall-clock part of the timestamp matters; the date is
	// discarded in favor of the current week.
	events, err := p.ProjectWeek(refWednesday, []WeeklySlot{
		{Title: "History", Day: "Tuesday", Start: "2020-01-01T09:45:00Z", End: "2020-01-01T10:30:00Z"},
	})
	if err != nil {
		t.Fatalf("ProjectWeek: %v", err)
	}

	wantStart := time.Date(2024, 5, 14, 9, 45, 0, 0, time.UTC)
	if !events[0].Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", events[0].Start, wantStart)
	}
}

func TestProjectWeek_ZeroLengthSlotIsPadded(t *testing.T) {
	p := NewWeekProjector(zap.NewNop())

	events, err := p.ProjectWeek(refWednesday, []WeeklySlot{
		{Title: "Flag raising", Day: "Monday", Start: "07:30", End: "07:30"},
	})
	if err != nil {
		t.Fatalf("ProjectWeek: %v", err)
	}

	got := events[0].End.Sub(events[0].Start)
	if got != 5*time.Minute {
		t.Errorf("padded duration = %v, want 5m", got)
	}
}

func TestProjectWeek_InvertedRangeRejected(t *testing.T) {
	p := NewWeekProjector(zap.NewNop())

	_, err := p.ProjectWeek(refWednesday, []WeeklySlot{
		{Title: "Broken", Day: "Monday", Start: "10:00", End: "09:00"},
	})
	if err == nil {
		t.Fatal("expected error for inverted range")
	}
	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
}

func TestProjectWeek_UnknownDayRejected(t *testing.T) {
	p := NewWeekProjector(zap.NewNop())

	_, err := p.ProjectWeek(refWednesday, []WeeklySlot{
		{Title: "Oops", Day: "Funday", Start: "08:00", End: "09:00"},
	})
	if err == nil {
		t.Fatal("expected error for unknown weekday")
	}
}

func TestProjectWeek_PreservesInputOrder(t *testing.T) {
	p := NewWeekProjector(zap.NewNop())

	slots := []WeeklySlot{
		{Title: "Third", Day: "Friday", Start: "08:00", End: "09:00"},
		{Title: "First", Day: "Monday", Start: "08:00", End: "09:00"},
		{Title: "Second", Day: "Wednesday", Start: "08:00", End: "09:00"},
	}
	events, err := p.ProjectWeek(refWednesday, slots)
	if err != nil {
		t.Fatalf("ProjectWeek: %v", err)
	}

	for i, slot := range slots {
		if events[i].Title != slot.Title {
			t.Errorf("events[%d].Title = %q, want %q", i, events[i].Title, slot.Title)
		}
	}
}

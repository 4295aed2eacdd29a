package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/dto"
	apperrors "github.com/NguyenMaiPhuong311/ISD-Final/pkg/errors"
)

// WeeklySlot is a recurring time-slot to be pinned onto the current week.
// Start and End accept either a bare "HH:mm" wall-clock string or an
// RFC 3339 timestamp, from which only hour and minute are used.
type WeeklySlot struct {
	Title string
	Day   string
	Start string
	End   string
}

// dayOffsets maps full weekday names onto offsets from the week's Monday.
var dayOffsets = map[string]int{
	"Monday":    0,
	"Tuesday":   1,
	"Wednesday": 2,
	"Thursday":  3,
	"Friday":    4,
	"Saturday":  5,
	"Sunday":    6,
}

// zeroLengthPad keeps degenerate slots visible on a calendar grid that
// cannot render zero-duration events.
const zeroLengthPad = 5 * time.Minute

// WeekProjector pins recurring weekly slots to concrete timestamps in the
// week containing a reference instant.
type WeekProjector struct {
	logger *zap.Logger
}

// NewWeekProjector creates a WeekProjector instance.
func NewWeekProjector(logger *zap.Logger) *WeekProjector {
	return &WeekProjector{logger: logger}
}

// ProjectWeek maps each slot onto the Monday-anchored week containing now.
// Output order matches input order. A slot whose end equals its start is
// padded by five minutes; an end before the start is rejected.
func (p *WeekProjector) ProjectWeek(now time.Time, slots []WeeklySlot) ([]dto.ProjectedEvent, error) {
	anchor := anchorMonday(now)

	events := make([]dto.ProjectedEvent, 0, len(slots))
	for _, slot := range slots {
		offset, ok := dayOffsets[slot.Day]
		if !ok {
			return nil, apperrors.NewValidation("dayOfWeek", "unknown weekday name: "+slot.Day)
		}

		startHour, startMin, err := parseClock(slot.Start)
		if err != nil {
			return nil, apperrors.NewValidation("startTime", err.Error())
		}
		endHour, endMin, err := parseClock(slot.End)
		if err != nil {
			return nil, apperrors.NewValidation("endTime", err.Error())
		}

		day := anchor.AddDate(0, 0, offset)
		start := time.Date(day.Year(), day.Month(), day.Day(), startHour, startMin, 0, 0, day.Location())
		end := time.Date(day.Year(), day.Month(), day.Day(), endHour, endMin, 0, 0, day.Location())

		switch {
		case end.Before(start):
			return nil, apperrors.NewValidation("endTime", "end is before start")
		case end.Equal(start):
			end = end.Add(zeroLengthPad)
			p.logger.Warn("zero-length slot padded for display",
				zap.String("title", slot.Title),
				zap.String("day", slot.Day),
				zap.String("start", slot.Start))
		}

		events = append(events, dto.ProjectedEvent{
			Title: slot.Title,
			Start: start,
			End:   end,
		})
	}
	return events, nil
}

// anchorMonday returns midnight of the Monday of the week containing t.
// Sunday belongs to the preceding Monday's week.
func anchorMonday(t time.Time) time.Time {
	offset := int(time.Monday - t.Weekday())
	if t.Weekday() == time.Sunday {
		offset = -6
	}
	day := t.AddDate(0, 0, offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
}

// parseClock extracts hour and minute from "HH:mm" or an RFC 3339 timestamp.
func parseClock(s string) (hour, minute int, err error) {
	if t, perr := time.Parse("15:04", s); perr == nil {
		return t.Hour(), t.Minute(), nil
	}
	t, perr := time.Parse(time.RFC3339, s)
	if perr != nil {
		return 0, 0, perr
	}
	return t.Hour(), t.Minute(), nil
}

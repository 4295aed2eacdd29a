package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/dto"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/model"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/repository"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/scope"
)

var ErrCalendarNotFound = errors.New("calendar slot not found")

// CalendarService is the weekly-calendar business interface. Stored slots
// are recurrence rules; WeekEvents pins them onto the current week.
type CalendarService interface {
	Create(ctx context.Context, req *dto.CreateCalendarRequest) (*dto.CalendarResponse, error)
	GetByID(ctx context.Context, id int) (*dto.CalendarResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateCalendarRequest) (*dto.CalendarResponse, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, params map[string]string, page int) ([]dto.CalendarResponse, int64, error)
	// WeekEvents projects the visible slots onto the week containing now.
	WeekEvents(ctx context.Context, now time.Time, params map[string]string) ([]dto.ProjectedEvent, error)
	// WeekICS renders the same events as an iCalendar document.
	WeekICS(ctx context.Context, now time.Time, params map[string]string) (string, error)
}

type calendarService struct {
	repo      *repository.Repository
	projector *WeekProjector
	pageSize  int
	logger    *zap.Logger
}

// NewCalendarService creates a CalendarService instance.
func NewCalendarService(repo *repository.Repository, projector *WeekProjector, pageSize int, logger *zap.Logger) CalendarService {
	return &calendarService{repo: repo, projector: projector, pageSize: pageSize, logger: logger}
}

func (s *calendarService) Create(ctx context.Context, req *dto.CreateCalendarRequest) (*dto.CalendarResponse, error) {
	if _, err := s.repo.Teacher.GetByID(ctx, req.TeacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Class.GetByID(ctx, req.ClassID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	calendar := &model.Calendar{
		TeacherID: req.TeacherID,
		ClassID:   req.ClassID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		DayOfWeek: req.DayOfWeek,
		Subjects:  subjectRefs(req.SubjectIDs),
	}
	if err := s.repo.Calendar.Create(ctx, calendar); err != nil {
		s.logger.Error("create calendar slot failed", zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, calendar.ID)
}

func (s *calendarService) GetByID(ctx context.Context, id int) (*dto.CalendarResponse, error) {
	calendar, err := s.repo.Calendar.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCalendarNotFound
		}
		return nil, err
	}
	return toCalendarResponse(calendar), nil
}

func (s *calendarService) Update(ctx context.Context, id int, req *dto.UpdateCalendarRequest) (*dto.CalendarResponse, error) {
	calendar, err := s.repo.Calendar.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCalendarNotFound
		}
		return nil, err
	}

	calendar.TeacherID = req.TeacherID
	calendar.ClassID = req.ClassID
	calendar.StartTime = req.StartTime
	calendar.EndTime = req.EndTime
	calendar.DayOfWeek = req.DayOfWeek
	calendar.Teacher = nil
	calendar.Class = nil
	calendar.Subjects = nil
	if err := s.repo.Calendar.Update(ctx, calendar, subjectRefs(req.SubjectIDs)); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *calendarService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.Calendar.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCalendarNotFound
		}
		return err
	}
	return s.repo.Calendar.Delete(ctx, id)
}

func (s *calendarService) List(ctx context.Context, params map[string]string, page int) ([]dto.CalendarResponse, int64, error) {
	f, err := scope.Build(scope.EntityCalendar, scope.RoleAdmin, "", params)
	if err != nil {
		return nil, 0, err
	}
	calendars, total, err := s.repo.Calendar.List(ctx, f, pageOffset(page, s.pageSize), s.pageSize)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.CalendarResponse, len(calendars))
	for i := range calendars {
		out[i] = *toCalendarResponse(&calendars[i])
	}
	return out, total, nil
}

func (s *calendarService) WeekEvents(ctx context.Context, now time.Time, params map[string]string) ([]dto.ProjectedEvent, error) {
	f, err := scope.Build(scope.EntityCalendar, scope.RoleAdmin, "", params)
	if err != nil {
		return nil, err
	}
	calendars, err := s.repo.Calendar.ListAll(ctx, f)
	if err != nil {
		return nil, err
	}

	slots := make([]WeeklySlot, len(calendars))
	for i := range calendars {
		slots[i] = WeeklySlot{
			Title: slotTitle(&calendars[i]),
			Day:   calendars[i].DayOfWeek,
			Start: calendars[i].StartTime,
			End:   calendars[i].EndTime,
		}
	}
	return s.projector.ProjectWeek(now, slots)
}

func (s *calendarService) WeekICS(ctx context.Context, now time.Time, params map[string]string) (string, error) {
	events, err := s.WeekEvents(ctx, now, params)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//school-api//weekly schedule//EN")
	for i, ev := range events {
		vevent := cal.AddEvent(fmt.Sprintf("week-%s-%d", ev.Start.Format("20060102T1504"), i))
		vevent.SetSummary(ev.Title)
		vevent.SetStartAt(ev.Start)
		vevent.SetEndAt(ev.End)
		vevent.SetDtStampTime(now)
	}
	return cal.Serialize(), nil
}

// slotTitle labels a projected event with its subjects, falling back to
// the class name.
func slotTitle(c *model.Calendar) string {
	if len(c.Subjects) > 0 {
		names := make([]string, len(c.Subjects))
		for i, sub := range c.Subjects {
			names[i] = sub.Name
		}
		return strings.Join(names, ", ")
	}
	if c.Class != nil {
		return c.Class.Name
	}
	return c.DayOfWeek
}

func toCalendarResponse(c *model.Calendar) *dto.CalendarResponse {
	resp := &dto.CalendarResponse{
		ID:        c.ID,
		TeacherID: c.TeacherID,
		ClassID:   c.ClassID,
		DayOfWeek: c.DayOfWeek,
		StartTime: c.StartTime,
		EndTime:   c.EndTime,
	}
	if c.Teacher != nil {
		resp.Teacher = toPersonBrief(c.Teacher.ID, c.Teacher.Name, c.Teacher.Surname)
	}
	if c.Class != nil {
		resp.Class = &dto.ClassBrief{ID: c.Class.ID, Name: c.Class.Name}
	}
	for _, sub := range c.Subjects {
		resp.Subjects = append(resp.Subjects, dto.SubjectResponse{ID: sub.ID, Name: sub.Name})
	}
	return resp
}

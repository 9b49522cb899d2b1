package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/ReewajAdhikari/LearningTree/internal/domain/entity"
	"github.com/ReewajAdhikari/LearningTree/internal/domain/repository"
	"github.com/ReewajAdhikari/LearningTree/internal/domain/service"
	"github.com/ReewajAdhikari/LearningTree/pkg/errors"
)

type EventUseCase struct {
	eventRepo repository.EventRepository
}

func NewEventUseCase(eventRepo repository.EventRepository) *EventUseCase {
	return &EventUseCase{eventRepo: eventRepo}
}

type CreateEventInput struct {
	Title       string `json:"title"`
	Date        string `json:"date" validate:"required"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

func (uc *EventUseCase) CreateEvent(ctx context.Context, userID string, input CreateEventInput) (*entity.Event, error) {
	if userID == "" {
		return nil, errors.Unauthorized("Please sign in to add events", nil)
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, errors.BadRequest("Please enter an event title", nil)
	}
	if _, err := service.ParseEventDate(input.Date); err != nil {
		return nil, errors.BadRequest("Please pick a valid date", err)
	}

	event := &entity.Event{
		UserID:      userID,
		Title:       input.Title,
		Date:        input.Date,
		Type:        input.Type,
		Description: input.Description,
		CreatedAt:   time.Now(),
	}

	if err := uc.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (uc *EventUseCase) ListEvents(ctx context.Context, userID string) ([]*entity.Event, error) {
	return uc.eventRepo.ListByUser(ctx, userID)
}

// DeleteEvent removes one of the caller's events. The ownership check
// runs against the stored document, not the request.
func (uc *EventUseCase) DeleteEvent(ctx context.Context, userID, eventID string) error {
	event, err := uc.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.UserID != userID {
		return errors.Forbidden("You can only delete your own events", nil)
	}

	return uc.eventRepo.Delete(ctx, eventID)
}

type CalendarView struct {
	Grid   service.MonthGrid          `json:"grid"`
	Events map[string][]*entity.Event `json:"events"`
}

// Calendar returns the month grid plus the caller's events bucketed by
// calendar date. Events outside the requested month still appear in the
// map; the client only renders the days the grid covers.
func (uc *EventUseCase) Calendar(ctx context.Context, userID string, year int, month time.Month) (*CalendarView, error) {
	events, err := uc.eventRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &CalendarView{
		Grid:   service.BuildMonthGrid(year, month),
		Events: service.GroupEventsByDate(events),
	}, nil
}

type EventExport struct {
	GoogleCalendarURL string `json:"google_calendar_url"`
	ICS               string `json:"ics"`
}

func (uc *EventUseCase) ExportEvent(ctx context.Context, userID, eventID string) (*EventExport, error) {
	event, err := uc.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.UserID != userID {
		return nil, errors.Forbidden("You can only export your own events", nil)
	}

	link, err := service.GoogleCalendarLink(event)
	if err != nil {
		return nil, errors.BadRequest("This event has no valid date", err)
	}
	ics, err := service.ICSPayload(event)
	if err != nil {
		return nil, errors.BadRequest("This event has no valid date", err)
	}

	return &EventExport{GoogleCalendarURL: link, ICS: ics}, nil
}

package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ReewajAdhikari/LearningTree/internal/domain/entity"
	"github.com/ReewajAdhikari/LearningTree/pkg/errors"
)

func TestCreateEvent(t *testing.T) {
	eventRepo := newFakeEventRepo()
	uc := NewEventUseCase(eventRepo)

	event, err := uc.CreateEvent(context.Background(), "uid-1", CreateEventInput{
		Title: "Midterm review",
		Date:  "2024-03-01T10:00:00Z",
		Type:  "exam",
	})

	assert.NoError(t, err)
	assert.Equal(t, "uid-1", event.UserID)
	assert.Equal(t, 1, eventRepo.createCalls)
}

func TestCreateEventRejectsBlankTitle(t *testing.T) {
	eventRepo := newFakeEventRepo()
	uc := NewEventUseCase(eventRepo)

	_, err := uc.CreateEvent(context.Background(), "uid-1", CreateEventInput{
		Title: "   ",
		Date:  "2024-03-01T10:00:00Z",
	})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Zero(t, eventRepo.createCalls)
}

func TestCreateEventRejectsInvalidDate(t *testing.T) {
	eventRepo := newFakeEventRepo()
	uc := NewEventUseCase(eventRepo)

	_, err := uc.CreateEvent(context.Background(), "uid-1", CreateEventInput{
		Title: "Study group",
		Date:  "next tuesday",
	})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Zero(t, eventRepo.createCalls)
}

func TestCreateEventRequiresSignIn(t *testing.T) {
	eventRepo := newFakeEventRepo()
	uc := NewEventUseCase(eventRepo)

	_, err := uc.CreateEvent(context.Background(), "", CreateEventInput{
		Title: "Study group",
		Date:  "2024-03-01T10:00:00Z",
	})

	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
	assert.Zero(t, eventRepo.createCalls)
}

func TestDeleteEventOwnershipCheck(t *testing.T) {
	eventRepo := newFakeEventRepo(&entity.Event{ID: "event-1", UserID: "owner"})
	uc := NewEventUseCase(eventRepo)

	err := uc.DeleteEvent(context.Background(), "intruder", "event-1")
	assert.True(t, errors.Is(err, "FORBIDDEN"))
	assert.Len(t, eventRepo.events, 1)

	err = uc.DeleteEvent(context.Background(), "owner", "event-1")
	assert.NoError(t, err)
	assert.Empty(t, eventRepo.events)
}

func TestCalendarGroupsOwnEvents(t *testing.T) {
	eventRepo := newFakeEventRepo(
		&entity.Event{ID: "e1", UserID: "uid-1", Title: "Quiz", Date: "2024-03-01T10:00:00Z"},
		&entity.Event{ID: "e2", UserID: "uid-1", Title: "Lab", Date: "2024-03-01T15:00:00Z"},
		&entity.Event{ID: "e3", UserID: "uid-1", Title: "Essay due", Date: "2024-03-02T09:00:00Z"},
		&entity.Event{ID: "e4", UserID: "someone-else", Title: "Hidden", Date: "2024-03-01T10:00:00Z"},
	)
	uc := NewEventUseCase(eventRepo)

	view, err := uc.Calendar(context.Background(), "uid-1", 2024, time.March)

	assert.NoError(t, err)
	assert.Equal(t, 5, view.Grid.StartOffset)
	assert.Equal(t, 31, view.Grid.Days)
	assert.Len(t, view.Events["2024-03-01"], 2)
	assert.Len(t, view.Events["2024-03-02"], 1)
}

func TestExportEvent(t *testing.T) {
	eventRepo := newFakeEventRepo(&entity.Event{
		ID:     "event-1",
		UserID: "uid-1",
		Title:  "Midterm review",
		Type:   "exam",
		Date:   "2024-03-01T10:00:00Z",
	})
	uc := NewEventUseCase(eventRepo)

	export, err := uc.ExportEvent(context.Background(), "uid-1", "event-1")

	assert.NoError(t, err)
	assert.Contains(t, export.GoogleCalendarURL, "calendar.google.com")
	assert.Contains(t, export.ICS, "SUMMARY:EXAM: Midterm review")

	_, err = uc.ExportEvent(context.Background(), "intruder", "event-1")
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

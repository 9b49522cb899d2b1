package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ReewajAdhikari/LearningTree/internal/domain/entity"
)

func TestBuildMonthGrid(t *testing.T) {
	// March 2024 starts on a Friday and has 31 days.
	grid := BuildMonthGrid(2024, time.March)

	assert.Equal(t, 2024, grid.Year)
	assert.Equal(t, 3, grid.Month)
	assert.Equal(t, "March 2024", grid.Label)
	assert.Equal(t, 5, grid.StartOffset)
	assert.Equal(t, 31, grid.Days)
}

func TestBuildMonthGridLeapFebruary(t *testing.T) {
	grid := BuildMonthGrid(2024, time.February)

	assert.Equal(t, 29, grid.Days)
	assert.Equal(t, 4, grid.StartOffset) // Thursday
}

func TestGoogleCalendarLink(t *testing.T) {
	event := &entity.Event{
		Title:       "Midterm review",
		Type:        "exam",
		Date:        "2024-03-01T10:00:00Z",
		Description: "Chapters 1-5",
	}

	link, err := GoogleCalendarLink(event)

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "https://calendar.google.com/calendar/render?"))
	assert.Contains(t, link, "action=TEMPLATE")
	assert.Contains(t, link, "dates=20240301T100000Z%2F20240301T110000Z")
	assert.Contains(t, link, "text=EXAM%3A+Midterm+review")
}

func TestGoogleCalendarLinkRejectsBadDate(t *testing.T) {
	_, err := GoogleCalendarLink(&entity.Event{Title: "x", Date: "garbage"})

	assert.Error(t, err)
}

func TestICSPayload(t *testing.T) {
	event := &entity.Event{
		Title: "Study group",
		Type:  "meeting",
		Date:  "2024-03-01T10:00:00Z",
	}

	payload, err := ICSPayload(event)

	assert.NoError(t, err)
	assert.Contains(t, payload, "BEGIN:VCALENDAR")
	assert.Contains(t, payload, "DTSTART:20240301T100000Z")
	assert.Contains(t, payload, "DTEND:20240301T110000Z")
	assert.Contains(t, payload, "SUMMARY:MEETING: Study group")
	assert.Contains(t, payload, "END:VCALENDAR")
}

func TestICSPayloadEscapesSummary(t *testing.T) {
	event := &entity.Event{
		Title: "Lab, part 2; review",
		Date:  "2024-03-01T10:00:00Z",
	}

	payload, err := ICSPayload(event)

	assert.NoError(t, err)
	assert.Contains(t, payload, `SUMMARY:Lab\, part 2\; review`)
}

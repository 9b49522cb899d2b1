package service

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ReewajAdhikari/LearningTree/internal/domain/entity"
)

// MonthGrid describes the calendar layout for one month: how many leading
// blanks the grid needs (weekday of the 1st, Sunday = 0) and the day count.
type MonthGrid struct {
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Label       string `json:"label"`
	StartOffset int    `json:"start_offset"`
	Days        int    `json:"days"`
}

func BuildMonthGrid(year int, month time.Month) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	return MonthGrid{
		Year:        year,
		Month:       int(month),
		Label:       first.Format("January 2006"),
		StartOffset: int(first.Weekday()),
		Days:        last.Day(),
	}
}

// GoogleCalendarLink builds the prefilled "add event" URL for an event.
// Exported events get a one hour duration, matching the ICS payload.
func GoogleCalendarLink(event *entity.Event) (string, error) {
	start, err := ParseEventDate(event.Date)
	if err != nil {
		return "", err
	}
	end := start.Add(time.Hour)

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", eventSummary(event))
	params.Set("dates", calendarStamp(start)+"/"+calendarStamp(end))
	if event.Description != "" {
		params.Set("details", event.Description)
	}

	return "https://calendar.google.com/calendar/render?" + params.Encode(), nil
}

// ICSPayload renders a minimal single-event iCalendar document with a one
// hour duration.
func ICSPayload(event *entity.Event) (string, error) {
	start, err := ParseEventDate(event.Date)
	if err != nil {
		return "", err
	}
	end := start.Add(time.Hour)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
		"DTSTART:" + calendarStamp(start),
		"DTEND:" + calendarStamp(end),
		"SUMMARY:" + eventSummaryEscaped(event),
		"END:VEVENT",
		"END:VCALENDAR",
	}

	return strings.Join(lines, "\r\n") + "\r\n", nil
}

func eventSummary(event *entity.Event) string {
	if event.Type == "" {
		return event.Title
	}
	return fmt.Sprintf("%s: %s", strings.ToUpper(event.Type), event.Title)
}

func eventSummaryEscaped(event *entity.Event) string {
	summary := eventSummary(event)
	summary = strings.ReplaceAll(summary, `\`, `\\`)
	summary = strings.ReplaceAll(summary, ",", `\,`)
	summary = strings.ReplaceAll(summary, ";", `\;`)
	return summary
}

func calendarStamp(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

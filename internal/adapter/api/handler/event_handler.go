package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ReewajAdhikari/LearningTree/internal/usecase"
	"github.com/ReewajAdhikari/LearningTree/pkg/errors"
	"github.com/ReewajAdhikari/LearningTree/pkg/response"
)

type EventHandler struct {
	eventUseCase *usecase.EventUseCase
}

func NewEventHandler(eventUseCase *usecase.EventUseCase) *EventHandler {
	return &EventHandler{
		eventUseCase: eventUseCase,
	}
}

func (h *EventHandler) CreateEvent(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req usecase.CreateEventInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	event, err := h.eventUseCase.CreateEvent(c.Request().Context(), uid, req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, event)
}

func (h *EventHandler) ListEvents(c echo.Context) error {
	uid := c.Get("uid").(string)

	events, err := h.eventUseCase.ListEvents(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"events": events,
		"total":  len(events),
	})
}

func (h *EventHandler) DeleteEvent(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.eventUseCase.DeleteEvent(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Event deleted",
	})
}

// Calendar serves the month view. Year and month default to the current
// month when omitted: ?year=2024&month=3
func (h *EventHandler) Calendar(c echo.Context) error {
	uid := c.Get("uid").(string)

	now := time.Now()
	year := now.Year()
	month := now.Month()

	if raw := c.QueryParam("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.Error(c, errors.BadRequest("Invalid year", err))
		}
		year = parsed
	}
	if raw := c.QueryParam("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			return response.Error(c, errors.BadRequest("Invalid month", err))
		}
		month = time.Month(parsed)
	}

	view, err := h.eventUseCase.Calendar(c.Request().Context(), uid, year, month)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, view)
}

func (h *EventHandler) ExportEvent(c echo.Context) error {
	uid := c.Get("uid").(string)

	export, err := h.eventUseCase.ExportEvent(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, export)
}

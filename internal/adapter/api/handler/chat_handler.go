package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ReewajAdhikari/LearningTree/internal/usecase"
	"github.com/ReewajAdhikari/LearningTree/pkg/errors"
	"github.com/ReewajAdhikari/LearningTree/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	var req usecase.SendMessageInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), uid, req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *ChatHandler) ListRooms(c echo.Context) error {
	uid := c.Get("uid").(string)

	rooms, err := h.chatUseCase.ListRooms(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"rooms": rooms,
		"total": len(rooms),
	})
}

// History returns the conversation with another user, oldest first.
func (h *ChatHandler) History(c echo.Context) error {
	uid := c.Get("uid").(string)

	otherID := c.QueryParam("with")
	if otherID == "" {
		return response.Error(c, errors.BadRequest("Missing 'with' query parameter", nil))
	}

	room := h.chatUseCase.RoomWith(uid, otherID)
	messages, err := h.chatUseCase.History(c.Request().Context(), uid, room)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"room":     room,
		"messages": messages,
		"total":    len(messages),
	})
}

package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/ReewajAdhikari/LearningTree/internal/adapter/api/middleware"
	"github.com/ReewajAdhikari/LearningTree/internal/domain/entity"
	"github.com/ReewajAdhikari/LearningTree/internal/domain/service"
	"github.com/ReewajAdhikari/LearningTree/internal/infrastructure/livequery"
	ws "github.com/ReewajAdhikari/LearningTree/internal/infrastructure/websocket"
	"github.com/ReewajAdhikari/LearningTree/pkg/errors"
	"github.com/ReewajAdhikari/LearningTree/pkg/logger"
)

type WebSocketHandler struct {
	wsManager      *ws.Manager
	subscriber     *livequery.Subscriber
	authMiddleware *middleware.AuthMiddleware
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: restrict to the web app origin once it is stable
	},
}

func NewWebSocketHandler(wsManager *ws.Manager, subscriber *livequery.Subscriber, authMiddleware *middleware.AuthMiddleware) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager:      wsManager,
		subscriber:     subscriber,
		authMiddleware: authMiddleware,
	}
}

// HandleWebSocket upgrades the connection and binds the caller's live
// feeds to it. The token arrives as a query param because browsers cannot
// set headers on websocket handshakes. Each connection gets its own
// subscription keys so a second tab never tears down the first.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return errors.Unauthorized("Authentication token is required", nil)
	}

	userID, err := h.authMiddleware.GetUIDFromToken(c.Request().Context(), token)
	if err != nil {
		return errors.Unauthorized("Invalid or expired token", err)
	}

	room := c.QueryParam("room")
	if room != "" && !service.RoomHasParticipant(room, userID) {
		return errors.Forbidden("You are not part of this conversation", nil)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	connID := uuid.New().String()
	client := &ws.Client{
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}

	// The request context dies when this handler returns; the feeds must
	// outlive it and are torn down explicitly in OnClose.
	feedCtx := context.Background()

	eventsSub := h.subscriber.Subscribe(
		feedCtx,
		"events:"+connID,
		"events",
		[]livequery.Predicate{{Field: "userId", Value: userID}},
		func(docs []livequery.Doc, err error) {
			h.pushEvents(client, docs, err)
		},
	)

	var messagesSub *livequery.Subscription
	if room != "" {
		messagesSub = h.subscriber.Subscribe(
			feedCtx,
			"messages:"+connID,
			"messages",
			[]livequery.Predicate{{Field: "room", Value: room}},
			func(docs []livequery.Doc, err error) {
				h.pushMessages(client, docs, err)
			},
		)
	}

	client.OnClose = func() {
		eventsSub.Stop()
		if messagesSub != nil {
			messagesSub.Stop()
		}
		logger.Debug("Live feeds released for connection %s", connID)
	}

	h.wsManager.Register <- client

	go client.ReadPump(h.wsManager)
	go client.WritePump()

	return nil
}

func (h *WebSocketHandler) pushEvents(client *ws.Client, docs []livequery.Doc, err error) {
	if err != nil {
		h.wsManager.Push(client, ws.Envelope{Type: "error", Error: err.Error()})
		return
	}

	events := make([]*entity.Event, 0, len(docs))
	for _, doc := range docs {
		events = append(events, entity.EventFromRecord(doc.ID, doc.Data))
	}

	h.wsManager.Push(client, ws.Envelope{Type: "events", Data: events})
}

func (h *WebSocketHandler) pushMessages(client *ws.Client, docs []livequery.Doc, err error) {
	if err != nil {
		h.wsManager.Push(client, ws.Envelope{Type: "error", Error: err.Error()})
		return
	}

	messages := make([]*entity.ChatMessage, 0, len(docs))
	for _, doc := range docs {
		messages = append(messages, entity.ChatMessageFromRecord(doc.ID, doc.Data))
	}

	h.wsManager.Push(client, ws.Envelope{Type: "messages", Data: messages})
}

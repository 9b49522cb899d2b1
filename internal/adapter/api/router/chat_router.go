package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ReewajAdhikari/LearningTree/internal/adapter/api/handler"
	"github.com/ReewajAdhikari/LearningTree/internal/adapter/api/middleware"
)

func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	chatHandler := handler.GetChatHandler()

	chats := e.Group("/v1/chats")
	chats.Use(authMiddleware.Authenticate)

	chats.POST("/messages", chatHandler.SendMessage)
	chats.GET("/messages", chatHandler.History)
	chats.GET("/rooms", chatHandler.ListRooms)
}

// SetupWebSocketRouter wires the realtime endpoint. The handler does its
// own token check, so no middleware here.
func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler) {
	e.GET("/ws", wsHandler.HandleWebSocket)
}

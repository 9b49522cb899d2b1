package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ReewajAdhikari/LearningTree/internal/adapter/api/handler"
	"github.com/ReewajAdhikari/LearningTree/internal/adapter/api/middleware"
)

func SetupEventRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	eventHandler := handler.GetEventHandler()

	events := e.Group("/v1/events")
	events.Use(authMiddleware.Authenticate)

	events.POST("", eventHandler.CreateEvent)
	events.GET("", eventHandler.ListEvents)
	events.GET("/calendar", eventHandler.Calendar)
	events.GET("/:id/export", eventHandler.ExportEvent)
	events.DELETE("/:id", eventHandler.DeleteEvent)
}

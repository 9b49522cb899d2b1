package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ReewajAdhikari/LearningTree/internal/adapter/api/handler"
	"github.com/ReewajAdhikari/LearningTree/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/v1/users")
	users.Use(authMiddleware.Authenticate)

	users.GET("/me", userHandler.GetProfile)
	users.PATCH("/me/name", userHandler.UpdateDisplayName)
	users.PATCH("/me/email", userHandler.UpdateEmail)
	users.PATCH("/me/password", userHandler.UpdatePassword)
	users.POST("/me/tutor", userHandler.RegisterAsTutor)
	users.POST("/me/subjects", userHandler.AddSubject)
}

package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ReewajAdhikari/LearningTree/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupTutorRouter(e, authMiddleware)
	SetupEventRouter(e, authMiddleware)
	SetupChatRouter(e, authMiddleware)
	SetupCatalogRouter(e)
	SetupHealthRouter(e)
}

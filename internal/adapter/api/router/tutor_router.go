package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ReewajAdhikari/LearningTree/internal/adapter/api/handler"
	"github.com/ReewajAdhikari/LearningTree/internal/adapter/api/middleware"
)

func SetupTutorRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	tutorHandler := handler.GetTutorHandler()
	ratingHandler := handler.GetRatingHandler()

	// The directory is public; rating requires a signed-in caller.
	e.GET("/v1/tutors", tutorHandler.ListTutors)
	e.GET("/v1/tutors/:id", tutorHandler.GetTutor)
	e.GET("/v1/tutors/:tutorId/ratings", ratingHandler.ListTutorRatings)

	protected := e.Group("/v1/tutors")
	protected.Use(authMiddleware.Authenticate)
	protected.POST("/:tutorId/ratings", ratingHandler.SubmitRating)
}

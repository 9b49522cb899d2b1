package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ReewajAdhikari/LearningTree/internal/usecase"
	"github.com/ReewajAdhikari/LearningTree/pkg/errors"
	"github.com/ReewajAdhikari/LearningTree/pkg/response"
)

type RatingHandler struct {
	ratingUseCase *usecase.RatingUseCase
}

func NewRatingHandler(ratingUseCase *usecase.RatingUseCase) *RatingHandler {
	return &RatingHandler{
		ratingUseCase: ratingUseCase,
	}
}

type submitRatingRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Subject string `json:"subject"`
}

func (h *RatingHandler) SubmitRating(c echo.Context) error {
	tutorID := c.Param("tutorId")
	if tutorID == "" {
		return response.Error(c, errors.BadRequest("Tutor ID is required", nil))
	}

	var req submitRatingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	uid, _ := c.Get("uid").(string)

	result, err := h.ratingUseCase.SubmitRating(c.Request().Context(), uid, usecase.SubmitRatingInput{
		TutorID: tutorID,
		Rating:  req.Rating,
		Comment: req.Comment,
		Subject: req.Subject,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

func (h *RatingHandler) ListTutorRatings(c echo.Context) error {
	tutorID := c.Param("tutorId")
	if tutorID == "" {
		return response.Error(c, errors.BadRequest("Tutor ID is required", nil))
	}

	result, err := h.ratingUseCase.ListTutorRatings(c.Request().Context(), tutorID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

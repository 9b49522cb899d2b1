package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ReewajAdhikari/LearningTree/internal/usecase"
	"github.com/ReewajAdhikari/LearningTree/pkg/response"
	"github.com/ReewajAdhikari/LearningTree/pkg/utils"
)

type TutorHandler struct {
	tutorUseCase *usecase.TutorUseCase
}

func NewTutorHandler(tutorUseCase *usecase.TutorUseCase) *TutorHandler {
	return &TutorHandler{
		tutorUseCase: tutorUseCase,
	}
}

// ListTutors serves the directory. Filters arrive as query params:
// ?q=free text&subjects=Mathematics,Physics
func (h *TutorHandler) ListTutors(c echo.Context) error {
	query := c.QueryParam("q")
	subjects := utils.SplitCSV(c.QueryParam("subjects"))

	listings, err := h.tutorUseCase.ListTutors(c.Request().Context(), query, subjects)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"tutors": listings,
		"total":  len(listings),
	})
}

func (h *TutorHandler) GetTutor(c echo.Context) error {
	listing, err := h.tutorUseCase.GetTutor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

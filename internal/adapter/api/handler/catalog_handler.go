package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ReewajAdhikari/LearningTree/internal/usecase"
	"github.com/ReewajAdhikari/LearningTree/pkg/response"
)

type CatalogHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

func (h *CatalogHandler) Search(c echo.Context) error {
	entries := h.catalogUseCase.Search(c.QueryParam("q"))

	return response.Success(c, map[string]interface{}{
		"subjects": entries,
		"total":    len(entries),
	})
}

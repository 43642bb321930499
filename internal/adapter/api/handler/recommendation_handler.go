package handler

import (
	"github.com/labstack/echo/v4"

	"moviehub/internal/usecase"
	"moviehub/pkg/response"
)

type RecommendationHandler struct {
	recommendationUseCase *usecase.RecommendationUseCase
}

func NewRecommendationHandler(recommendationUseCase *usecase.RecommendationUseCase) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationUseCase: recommendationUseCase,
	}
}

func (h *RecommendationHandler) GetRecommendations(c echo.Context) error {
	userID := c.Get("uid").(string)

	items, err := h.recommendationUseCase.Get(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}

func (h *RecommendationHandler) ShowMore(c echo.Context) error {
	userID := c.Get("uid").(string)

	items, err := h.recommendationUseCase.ShowMore(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}

package handler

import (
	"github.com/labstack/echo/v4"

	"moviehub/internal/usecase"
	"moviehub/pkg/errors"
	"moviehub/pkg/response"
)

type ActivityHandler struct {
	activityUseCase *usecase.ActivityUseCase
}

func NewActivityHandler(activityUseCase *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{
		activityUseCase: activityUseCase,
	}
}

type submitRatingRequest struct {
	Score      int    `json:"score" validate:"min=0,max=10"`
	Title      string `json:"title"`
	PosterPath string `json:"poster_path"`
}

func (h *ActivityHandler) SubmitRating(c echo.Context) error {
	userID := c.Get("uid").(string)

	movieID := c.Param("movieId")
	if movieID == "" {
		return response.Error(c, errors.BadRequest("Movie ID is required", nil))
	}

	var req submitRatingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	err := h.activityUseCase.SubmitRating(c.Request().Context(), userID, usecase.SubmitRatingInput{
		MovieID:    movieID,
		Title:      req.Title,
		PosterPath: req.PosterPath,
		Score:      req.Score,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Rating saved",
	})
}

type submitReviewRequest struct {
	MovieTitle string `json:"movie_title" validate:"required"`
	Content    string `json:"content" validate:"required"`
}

func (h *ActivityHandler) SubmitReview(c echo.Context) error {
	userID := c.Get("uid").(string)
	displayName, _ := c.Get("displayName").(string)

	var req submitReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.activityUseCase.SubmitReview(c.Request().Context(), userID, displayName, usecase.SubmitReviewInput{
		MovieTitle: req.MovieTitle,
		Content:    req.Content,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

type editReviewRequest struct {
	Content string `json:"content" validate:"required"`
}

func (h *ActivityHandler) EditReview(c echo.Context) error {
	userID := c.Get("uid").(string)

	reviewID := c.Param("id")
	if reviewID == "" {
		return response.Error(c, errors.BadRequest("Review ID is required", nil))
	}

	var req editReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.activityUseCase.EditReview(c.Request().Context(), userID, reviewID, req.Content); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Review updated",
	})
}

func (h *ActivityHandler) DeleteReview(c echo.Context) error {
	userID := c.Get("uid").(string)

	reviewID := c.Param("id")
	if reviewID == "" {
		return response.Error(c, errors.BadRequest("Review ID is required", nil))
	}

	if err := h.activityUseCase.DeleteReview(c.Request().Context(), userID, reviewID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Review deleted",
	})
}

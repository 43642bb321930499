package handler

import (
	"github.com/labstack/echo/v4"

	"moviehub/internal/usecase"
	"moviehub/pkg/errors"
	"moviehub/pkg/response"
)

type WatchlistHandler struct {
	watchlistUseCase *usecase.WatchlistUseCase
}

func NewWatchlistHandler(watchlistUseCase *usecase.WatchlistUseCase) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistUseCase: watchlistUseCase,
	}
}

type addWatchlistRequest struct {
	MovieID     string   `json:"movie_id" validate:"required"`
	Title       string   `json:"title"`
	Genres      []string `json:"genres"`
	PosterPath  string   `json:"poster_path"`
	ReleaseDate string   `json:"release_date"`
}

func (h *WatchlistHandler) Add(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req addWatchlistRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	entry, err := h.watchlistUseCase.Add(c.Request().Context(), userID, usecase.AddWatchlistInput{
		MovieID:     req.MovieID,
		Title:       req.Title,
		Genres:      req.Genres,
		PosterPath:  req.PosterPath,
		ReleaseDate: req.ReleaseDate,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, entry)
}

func (h *WatchlistHandler) Remove(c echo.Context) error {
	userID := c.Get("uid").(string)

	entryID := c.Param("id")
	if entryID == "" {
		return response.Error(c, errors.BadRequest("Entry ID is required", nil))
	}

	if err := h.watchlistUseCase.Remove(c.Request().Context(), userID, entryID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Movie removed from watchlist",
	})
}

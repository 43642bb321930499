package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"moviehub/internal/domain/entity"
	"moviehub/internal/usecase"
	"moviehub/pkg/errors"
	"moviehub/pkg/response"
	"moviehub/pkg/utils"
)

type MovieHandler struct {
	movieUseCase *usecase.MovieUseCase
	liveSessions *usecase.LiveSessionUseCase
}

func NewMovieHandler(movieUseCase *usecase.MovieUseCase, liveSessions *usecase.LiveSessionUseCase) *MovieHandler {
	return &MovieHandler{
		movieUseCase: movieUseCase,
		liveSessions: liveSessions,
	}
}

func (h *MovieHandler) Home(c echo.Context) error {
	feed, err := h.movieUseCase.HomeFeed(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, feed)
}

func (h *MovieHandler) Trending(c echo.Context) error {
	window := c.QueryParam("window")

	cards, err := h.movieUseCase.Trending(c.Request().Context(), window)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, cards)
}

func (h *MovieHandler) Upcoming(c echo.Context) error {
	cards, err := h.movieUseCase.Upcoming(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, cards)
}

func (h *MovieHandler) Popular(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	cards, err := h.movieUseCase.Popular(c.Request().Context(), pagination.Page)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, cards)
}

func (h *MovieHandler) Backdrop(c echo.Context) error {
	return response.Success(c, map[string]string{
		"backdrop": h.movieUseCase.RandomBackdrop(c.Request().Context()),
	})
}

func (h *MovieHandler) Detail(c echo.Context) error {
	movieID := c.Param("id")
	if movieID == "" {
		return response.Error(c, errors.BadRequest("Movie ID is required", nil))
	}

	detail, err := h.movieUseCase.GetDetail(c.Request().Context(), movieID)
	if err != nil {
		return response.Error(c, err)
	}

	// An attached live session sees the detail page through its vote overlay,
	// so earlier votes in the same session stay visible.
	if userID, ok := c.Get("uid").(string); ok && userID != "" {
		if overlay := h.liveSessions.Overlay(userID); overlay != nil {
			detail.Reviews = overlay.Seed(movieID, detail.Reviews)
		}
	}

	return response.Success(c, detail)
}

func (h *MovieHandler) Person(c echo.Context) error {
	person, err := h.movieUseCase.GetPerson(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, person)
}

func (h *MovieHandler) PersonCredits(c echo.Context) error {
	cards, err := h.movieUseCase.GetPersonCredits(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, cards)
}

func (h *MovieHandler) UpvoteReview(c echo.Context) error {
	return h.vote(c, true)
}

func (h *MovieHandler) DownvoteReview(c echo.Context) error {
	return h.vote(c, false)
}

// vote applies a session-local review vote. Tallies live only in the user's
// attached session; nothing is persisted.
func (h *MovieHandler) vote(c echo.Context, up bool) error {
	userID := c.Get("uid").(string)
	movieID := c.Param("id")

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return response.Error(c, errors.Validation("Review index must be a non-negative integer", err))
	}

	overlay := h.liveSessions.Overlay(userID)
	if overlay == nil {
		return response.Error(c, errors.BadRequest("No active live session; connect to /v1/ws first", nil))
	}

	reviews, ok := voteOnOverlay(overlay, movieID, index, up)
	if !ok {
		// The session has not looked at this movie yet; seed its reviews
		// from the catalog and retry once.
		detail, err := h.movieUseCase.GetDetail(c.Request().Context(), movieID)
		if err != nil {
			return response.Error(c, err)
		}
		overlay.Seed(movieID, detail.Reviews)
		reviews, _ = voteOnOverlay(overlay, movieID, index, up)
	}

	return response.Success(c, map[string]interface{}{
		"movie_id": movieID,
		"reviews":  reviews,
	})
}

func voteOnOverlay(overlay *usecase.VoteOverlay, movieID string, index int, up bool) ([]entity.MovieReview, bool) {
	if up {
		return overlay.Upvote(movieID, index)
	}
	return overlay.Downvote(movieID, index)
}

package handler

import (
	"github.com/labstack/echo/v4"

	"moviehub/internal/domain/entity"
	"moviehub/internal/usecase"
	"moviehub/pkg/response"
)

type ProfileHandler struct {
	profileUseCase *usecase.ProfileUseCase
}

func NewProfileHandler(profileUseCase *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID := c.Get("uid").(string)

	profile, err := h.profileUseCase.Get(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

type updateProfileRequest struct {
	Username       string   `json:"username"`
	ProfilePicture string   `json:"profile_picture" validate:"omitempty,url"`
	Preferences    []string `json:"preferences"`
}

func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	profile, err := h.profileUseCase.Update(c.Request().Context(), userID, usecase.UpdateProfileInput{
		Username:       req.Username,
		ProfilePicture: req.ProfilePicture,
		Preferences:    req.Preferences,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

// Genres lists the selectable preference genres.
func (h *ProfileHandler) Genres(c echo.Context) error {
	return response.Success(c, entity.GenreNames())
}

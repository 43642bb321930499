package router

import (
	"github.com/labstack/echo/v4"

	"moviehub/internal/adapter/api/handler"
	"moviehub/internal/adapter/api/middleware"
)

func SetupProfileRouter(e *echo.Echo, profileHandler *handler.ProfileHandler, authMiddleware *middleware.AuthMiddleware) {
	e.GET("/v1/genres", profileHandler.Genres)

	profile := e.Group("/v1/me/profile")
	profile.Use(authMiddleware.Authenticate)

	profile.GET("", profileHandler.GetProfile)
	profile.PUT("", profileHandler.UpdateProfile)
}

package router

import (
	"github.com/labstack/echo/v4"

	"moviehub/internal/adapter/api/handler"
	"moviehub/internal/adapter/api/middleware"
)

func SetupRecommendationRouter(e *echo.Echo, recommendationHandler *handler.RecommendationHandler, authMiddleware *middleware.AuthMiddleware) {
	recommendations := e.Group("/v1/me/recommendations")
	recommendations.Use(authMiddleware.Authenticate)

	recommendations.GET("", recommendationHandler.GetRecommendations)
	recommendations.POST("/more", recommendationHandler.ShowMore)
}

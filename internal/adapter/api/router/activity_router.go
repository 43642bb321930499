package router

import (
	"github.com/labstack/echo/v4"

	"moviehub/internal/adapter/api/handler"
	"moviehub/internal/adapter/api/middleware"
)

func SetupActivityRouter(e *echo.Echo, activityHandler *handler.ActivityHandler, authMiddleware *middleware.AuthMiddleware, rateLimit *middleware.RateLimitMiddleware) {
	me := e.Group("/v1/me")
	me.Use(authMiddleware.Authenticate)

	me.PUT("/ratings/:movieId", activityHandler.SubmitRating, rateLimit.Limit("submit_rating"))
	me.POST("/reviews", activityHandler.SubmitReview, rateLimit.Limit("submit_review"))
	me.PATCH("/reviews/:id", activityHandler.EditReview, rateLimit.Limit("submit_review"))
	me.DELETE("/reviews/:id", activityHandler.DeleteReview)
}

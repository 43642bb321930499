package router

import (
	"github.com/labstack/echo/v4"

	"moviehub/internal/adapter/api/handler"
	"moviehub/internal/adapter/api/middleware"
)

func SetupWatchlistRouter(e *echo.Echo, watchlistHandler *handler.WatchlistHandler, authMiddleware *middleware.AuthMiddleware, rateLimit *middleware.RateLimitMiddleware) {
	watchlist := e.Group("/v1/me/watchlist")
	watchlist.Use(authMiddleware.Authenticate)

	watchlist.POST("", watchlistHandler.Add, rateLimit.Limit("watchlist"))
	watchlist.DELETE("/:id", watchlistHandler.Remove)
}

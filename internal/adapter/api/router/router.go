package router

import (
	"github.com/labstack/echo/v4"

	"moviehub/internal/adapter/api/handler"
	"moviehub/internal/adapter/api/middleware"
)

type Handlers struct {
	Health         *handler.HealthHandler
	Movie          *handler.MovieHandler
	Activity       *handler.ActivityHandler
	Watchlist      *handler.WatchlistHandler
	Profile        *handler.ProfileHandler
	Recommendation *handler.RecommendationHandler
	WebSocket      *handler.WebSocketHandler
}

func Setup(e *echo.Echo, h Handlers, authMiddleware *middleware.AuthMiddleware, rateLimit *middleware.RateLimitMiddleware) {
	SetupHealthRouter(e, h.Health)
	SetupMovieRouter(e, h.Movie, authMiddleware, rateLimit)
	SetupActivityRouter(e, h.Activity, authMiddleware, rateLimit)
	SetupWatchlistRouter(e, h.Watchlist, authMiddleware, rateLimit)
	SetupProfileRouter(e, h.Profile, authMiddleware)
	SetupRecommendationRouter(e, h.Recommendation, authMiddleware)
	SetupWebSocketRouter(e, h.WebSocket)
}

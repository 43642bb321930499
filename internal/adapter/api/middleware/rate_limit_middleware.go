package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"moviehub/internal/infrastructure/ratelimit"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// Limit throttles a mutation action per authenticated user. Unauthenticated
// requests fall back to the client IP as the bucket key.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key, _ := c.Get("uid").(string)
			if key == "" {
				key = c.RealIP()
			}

			allowed, retryAfter := m.limiter.Allow(key, action)
			if !allowed {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "Rate limit exceeded",
					"retry_after": int(retryAfter.Seconds()),
				})
			}
			return next(c)
		}
	}
}

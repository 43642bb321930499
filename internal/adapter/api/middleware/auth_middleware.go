package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"moviehub/pkg/errors"
	"moviehub/pkg/response"
)

// TokenVerifier resolves a bearer token to an opaque user id and display
// name. Satisfied by the identity provider client.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, idToken string) (uid string, displayName string, err error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

// Authenticate requires a valid bearer token and stores the opaque user id
// and display name on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return response.Error(c, errors.AuthRequired("Authorization header is required"))
		}

		uid, displayName, err := m.verifier.VerifyToken(c.Request().Context(), token)
		if err != nil {
			return response.Error(c, errors.AuthRequired("Invalid or expired token"))
		}

		c.Set("uid", uid)
		c.Set("displayName", displayName)
		return next(c)
	}
}

// OptionalAuthenticate identifies the user when a valid bearer token is
// present and lets the request through anonymously otherwise. Public routes
// whose responses are enriched for attached sessions use this.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token, ok := bearerToken(c); ok {
			if uid, displayName, err := m.verifier.VerifyToken(c.Request().Context(), token); err == nil {
				c.Set("uid", uid)
				c.Set("displayName", displayName)
			}
		}
		return next(c)
	}
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		return "", false
	}
	return header[len(prefix):], true
}

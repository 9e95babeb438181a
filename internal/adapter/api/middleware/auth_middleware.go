package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"realestate/pkg/logger"
)

var errNoVerifier = errors.New("no token verifier accepted the token")

// TokenVerifier resolves a bearer token to a user ID.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}

// AuthMiddleware tries each verifier in order; the first that accepts the
// token decides the caller identity.
type AuthMiddleware struct {
	verifiers []TokenVerifier
}

func NewAuthMiddleware(verifiers ...TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifiers: verifiers,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		uid, err := m.GetUIDFromToken(c.Request().Context(), parts[1])
		if err != nil {
			logger.Debug("rejected token on %s: %v", c.Path(), err)
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("uid", uid)

		return next(c)
	}
}

func (m *AuthMiddleware) GetUIDFromToken(ctx context.Context, token string) (string, error) {
	var lastErr error
	for _, v := range m.verifiers {
		uid, err := v.VerifyToken(ctx, token)
		if err == nil && uid != "" {
			return uid, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = errNoVerifier
	}
	return "", lastErr
}

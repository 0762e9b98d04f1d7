package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"admin-service/app/port"
)

// AuthMiddleware resolves the caller's session before admin operations run
type AuthMiddleware struct {
	identity port.IdentityGateway
	logger   *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(identity port.IdentityGateway, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		identity: identity,
		logger:   logger,
	}
}

// RequireSession middleware that requires a resolvable session
func (m *AuthMiddleware) RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			sessionToken := m.extractSessionToken(c)
			if sessionToken == "" {
				return unauthenticated(c, "authentication required")
			}

			caller, err := m.identity.ResolveSession(ctx, sessionToken)
			if err != nil {
				m.logger.Error("session resolution failed", "error", err)
				return unauthenticated(c, "invalid session")
			}

			c.Set("caller", caller)

			return next(c)
		}
	}
}

// extractSessionToken extracts session token from request
// For browser requests, returns entire Cookie header
// For API requests, returns token from Authorization or X-Session-Token header
func (m *AuthMiddleware) extractSessionToken(c echo.Context) string {
	if cookieHeader := c.Request().Header.Get("Cookie"); cookieHeader != "" && strings.Contains(cookieHeader, "ory_kratos_session") {
		return cookieHeader
	}

	auth := c.Request().Header.Get("Authorization")
	if auth != "" {
		if strings.HasPrefix(auth, "Bearer ") {
			return strings.TrimPrefix(auth, "Bearer ")
		}
		return auth
	}

	return c.Request().Header.Get("X-Session-Token")
}

func unauthenticated(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{
		"error": message,
		"code":  "UNAUTHENTICATED",
	})
}

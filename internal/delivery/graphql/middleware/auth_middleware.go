// Package middleware contains echo middleware for the GraphQL delivery.
package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the caller identity from the Authorization header.
type AuthMiddleware struct {
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenService service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService, logger: logger}
}

// ExtractCaller validates the bearer token, when one is present, and stores
// the caller's account ID in the request context. It never rejects the
// request itself: some mutations accept anonymous callers, so each resolver
// decides whether a missing identity is an error.
func (m *AuthMiddleware) ExtractCaller(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return next(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			m.logger.Warn("Authorization header without bearer scheme")

			return next(c)
		}

		claims, err := m.tokenService.Validate(tokenString)
		if err != nil {
			m.logger.Warn("Rejected session token", slog.Any("error", err))

			return next(c)
		}

		ctx := deliverycontext.WithCallerID(c.Request().Context(), claims.AccountID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

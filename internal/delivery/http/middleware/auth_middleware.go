package middleware

import (
	"strings"

	domainerrors "moim/internal/domain/errors"
	"moim/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// UserIDContextKey is the echo context key the authenticated user ID is
// stored under.
const UserIDContextKey = "userID"

// AuthMiddleware validates Bearer access tokens and exposes the user ID to
// handlers.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthorized
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthorized.WithDetails("Authorization header must carry a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired access token")
		}

		c.Set(UserIDContextKey, claims.UserID)

		return next(c)
	}
}

// AuthenticateOptional sets the user ID when a valid Bearer token is present
// and lets anonymous requests through. The travel-times endpoint uses it so
// the demo mode works without an account.
func (m *AuthMiddleware) AuthenticateOptional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader {
			return next(c)
		}

		if claims, err := m.tokenSvc.ValidateAccessToken(tokenString); err == nil {
			c.Set(UserIDContextKey, claims.UserID)
		}

		return next(c)
	}
}

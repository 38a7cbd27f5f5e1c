package middleware

import (
	"strings"

	deliverycontext "fittrack/internal/delivery/context"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the bearer token to the current user.
type AuthMiddleware struct {
	auth usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Authenticate rejects requests without a valid token and stores the user for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrInvalidToken.WrapMessage("authorization header is missing")
		}

		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return domainerrors.ErrInvalidToken.WrapMessage("authorization header is not a bearer token")
		}

		user, err := m.auth.CurrentUser(c.Request().Context(), strings.TrimSpace(authHeader[len(bearerPrefix):]))
		if err != nil {
			return err
		}

		deliverycontext.SetCurrentUser(c, user)

		return next(c)
	}
}

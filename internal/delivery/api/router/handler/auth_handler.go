package handler

import (
	"net/http"

	"fittrack/internal/errors"
	"fittrack/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler issues access tokens.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Token handles POST /auth/token. It accepts a form-encoded or JSON password grant.
func (h *AuthHandler) Token(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return success(c, http.StatusOK, &TokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		ExpiresIn:   output.ExpiresIn,
	})
}

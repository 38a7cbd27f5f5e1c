// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	deliverycontext "fittrack/internal/delivery/context"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/errors"
	"fittrack/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// AddUser handles POST /users.
func (h *UserHandler) AddUser(c echo.Context) error {
	input := new(usecase.AddUserInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	user, err := h.uc.AddUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return successUser(c, http.StatusCreated, user)
}

// ListUsers handles GET /users, optionally filtered by ?username=.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.FetchAllUsers(c.Request().Context(), c.QueryParam("username"))
	if err != nil {
		return errors.WithStack(err)
	}

	return success(c, http.StatusOK, toUserResponses(users))
}

// Me returns the authenticated user.
func (h *UserHandler) Me(c echo.Context) error {
	return successUser(c, http.StatusOK, deliverycontext.GetCurrentUser(c))
}

// GetByID handles GET /users/:id.
func (h *UserHandler) GetByID(c echo.Context) error {
	user, err := h.uc.FetchByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return successUser(c, http.StatusOK, user)
}

// GetByUsername handles GET /users/by-username/:username. An unknown name yields null data.
func (h *UserHandler) GetByUsername(c echo.Context) error {
	user, err := h.uc.FetchByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return errors.WithStack(err)
	}

	return successUser(c, http.StatusOK, user)
}

// EditUser handles PATCH /users/:id.
func (h *UserHandler) EditUser(c echo.Context) error {
	input := new(usecase.UpdateUserInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	user, err := h.uc.EditUser(c.Request().Context(), c.Param("id"), input, deliverycontext.GetCurrentUser(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return successUser(c, http.StatusOK, user)
}

// RemoveUser handles DELETE /users/:id and returns the deleted user.
func (h *UserHandler) RemoveUser(c echo.Context) error {
	user, err := h.uc.RemoveUser(c.Request().Context(), c.Param("id"), deliverycontext.GetCurrentUser(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return successUser(c, http.StatusOK, user)
}

func bindAndValidate(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed request body")
	}

	return c.Validate(input)
}

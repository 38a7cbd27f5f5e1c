package middleware

import (
	"net/http"

	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/errors"

	"github.com/labstack/echo/v4"
)

func statusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

package handler

import (
	"net/http"

	"fittrack/internal/delivery/api/response"
	"fittrack/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// HealthCheck handles GET /health.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

func success(c echo.Context, status int, data any) error {
	return response.Success(c, status, data)
}

// successUser renders a nil user as JSON null rather than a typed nil pointer.
func successUser(c echo.Context, status int, user *entity.User) error {
	if user == nil {
		return response.Success(c, status, nil)
	}

	return response.Success(c, status, toUserResponse(user))
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fittrack/internal/delivery/api/middleware"
	"fittrack/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/token", r.authHandler.Token)
	}

	// Sign-up is public; everything else under /users needs a bearer token.
	// Route-level middleware keeps POST /users outside the auth check.
	authenticated := r.authMiddleware.Authenticate
	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.userHandler.AddUser)
		userGroup.GET("", r.userHandler.ListUsers, authenticated)
		userGroup.GET("/me", r.userHandler.Me, authenticated)
		userGroup.GET("/by-username/:username", r.userHandler.GetByUsername, authenticated)
		userGroup.GET("/:id", r.userHandler.GetByID, authenticated)
		userGroup.PATCH("/:id", r.userHandler.EditUser, authenticated)
		userGroup.DELETE("/:id", r.userHandler.RemoveUser, authenticated)
	}
}

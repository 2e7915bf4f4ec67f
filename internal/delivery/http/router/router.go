// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"facelock/internal/delivery/http/middleware"
	"facelock/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	FaceHandler    *handler.FaceHandler
	UserHandler    *handler.UserHandler
	SystemHandler  *handler.SystemHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	faceHandler    *handler.FaceHandler
	userHandler    *handler.UserHandler
	systemHandler  *handler.SystemHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		faceHandler:    params.FaceHandler,
		userHandler:    params.UserHandler,
		systemHandler:  params.SystemHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Paths are registered without a trailing slash; the server strips it before routing.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.systemHandler.Root)
	e.GET("/health", r.systemHandler.Health)
	e.POST("/token", r.systemHandler.Token)

	// Face routes
	e.POST("/register", r.faceHandler.Register)
	e.POST("/verify", r.faceHandler.Verify)

	// User routes that require a session token
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.userHandler.List)
		userGroup.GET("/me", r.userHandler.Me)
		userGroup.DELETE("/:user_id", r.userHandler.Delete)
	}
}

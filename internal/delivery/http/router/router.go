// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"warden/internal/delivery/http/middleware"
	"warden/internal/delivery/http/router/handler"
	"warden/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public account routes
	accountGroup := e.Group("/account")
	{
		accountGroup.POST("/register", r.accountHandler.Register)
		accountGroup.POST("/login", r.accountHandler.Login)
	}

	// Account routes that require authentication
	authedGroup := e.Group("/account")
	authedGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		authedGroup.GET("/:username", r.accountHandler.GetAccount)

		// An account may change its own password; admins may change anyone's.
		authedGroup.PUT("/:username/password",
			r.accountHandler.ChangePassword,
			r.authMiddleware.RequireSelfOrRole(entity.RoleAdmin.String()),
		)
	}

	// Admin routes require authentication and the "admin" role
	adminGroup := e.Group("/admin",
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleAdmin.String()),
	)
	{
		adminGroup.GET("/accounts/:username", r.accountHandler.GetAccount)
	}
}

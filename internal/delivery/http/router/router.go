// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"roost/internal/delivery/http/middleware"
	"roost/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PropertyHandler    *handler.PropertyHandler
	IdentityMiddleware *middleware.IdentityMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	propertyHandler    *handler.PropertyHandler
	identityMiddleware *middleware.IdentityMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		propertyHandler:    params.PropertyHandler,
		identityMiddleware: params.IdentityMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	propertyGroup := e.Group("/properties")
	propertyGroup.Use(r.identityMiddleware.Extract)
	{
		propertyGroup.GET("", r.propertyHandler.Search)
		propertyGroup.GET("/:id", r.propertyHandler.GetByID)
		propertyGroup.GET("/:id/leases", r.propertyHandler.Leases)

		// Only managers may publish listings
		propertyGroup.POST("", r.propertyHandler.Create, r.identityMiddleware.RequireManager)
	}
}

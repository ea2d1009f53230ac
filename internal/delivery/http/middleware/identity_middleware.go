package middleware

import (
	deliverycontext "roost/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// IdentityMiddleware reads the caller identity forwarded by the API gateway.
// The service itself never verifies credentials; it trusts the upstream
// headers the same way it trusts the network it is deployed in.
type IdentityMiddleware struct{}

// NewIdentityMiddleware creates a new identity middleware
func NewIdentityMiddleware() *IdentityMiddleware {
	return &IdentityMiddleware{}
}

// Extract stores the forwarded identity headers in the request context.
func (m *IdentityMiddleware) Extract(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set(string(deliverycontext.KeyUserID), c.Request().Header.Get(deliverycontext.HeaderXUserID))
		c.Set(string(deliverycontext.KeyUserRole), c.Request().Header.Get(deliverycontext.HeaderXUserRole))

		return next(c)
	}
}

// RequireManager rejects requests whose forwarded role is not "manager".
func (m *IdentityMiddleware) RequireManager(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.GetUserID(c) == "" {
			return echo.ErrUnauthorized
		}
		if deliverycontext.GetUserRole(c) != "manager" {
			return echo.ErrForbidden
		}

		return next(c)
	}
}

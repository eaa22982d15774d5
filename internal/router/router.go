package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework used for routing

	"github.com/iliyamo/restaurant-table-reservation/internal/handler"    // handlers implementing the HTTP surface
	"github.com/iliyamo/restaurant-table-reservation/internal/middleware" // JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.  This
// endpoint can be used by load balancers or monitoring systems to verify
// that the service is up and running.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the staff account endpoints under /v1/auth.
// Register and login do not require an existing session; every other
// /v1 route does.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
}

// RegisterAllocation registers the protected allocation and catalog
// endpoints under /v1.  All of them sit behind JWT authentication, a
// role check accepting ADMIN and STAFF, and the rate limiter.  The
// response cache wraps only the catalog reads; meal-period,
// availability and booking routes always hit the database so the
// answer reflects live table state.
func RegisterAllocation(
	e *echo.Echo,
	alloc *handler.AllocationHandler,
	catalog *handler.CatalogHandler,
	jwtSecret string,
	limiter echo.MiddlewareFunc,
	cache echo.MiddlewareFunc,
) {
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("ADMIN", "STAFF"))
	auth.Use(limiter)

	// Seating catalog, cacheable.
	auth.GET("/outlets/:id/tables", catalog.ListTables, cache)
	auth.GET("/outlets/:id/sections", catalog.ListSections, cache)

	// Allocation engine operations.
	auth.GET("/outlets/:id/meal-period", alloc.ResolveMealPeriod)
	auth.POST("/outlets/:id/availability", alloc.FindAvailability)
	auth.POST("/bookings", alloc.ConfirmBooking)
	auth.POST("/bookings/:id/move", alloc.MoveBooking)
	auth.POST("/group-tables/:id/possibilities", alloc.CreatePossibility)
	auth.DELETE("/group-tables/:id", alloc.DeleteGroupTable)
}

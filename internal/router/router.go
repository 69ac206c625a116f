// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/AllexanderGM/feeling-sub002/internal/handler"
	"github.com/AllexanderGM/feeling-sub002/internal/middleware"
	"github.com/AllexanderGM/feeling-sub002/internal/model"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance: the health check used by load balancers
// and the system-info endpoint used by operators and smoke tests.
func RegisterRoutes(e *echo.Echo, sys *handler.SystemHandler) {
	e.GET("/healthz", handler.Health)
	e.GET("/v1/system", sys.Info)
}

// RegisterAuth registers all authentication-related routes.
// Unauthenticated operations live under /v1/auth, while the protected
// profile endpoint lives under /v1 behind the JWT middleware.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	// Logout accepts a JSON body containing a `refresh_token` and
	// invalidates that token; it does not require a JWT.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(model.RoleAdmin, model.RoleClient))
	auth.GET("/me", a.Me)
}

// RegisterCatalog registers the unauthenticated browse endpoints: tour
// listing with tag filters, single-tour detail, availability range
// queries and payment methods.  These routes carry no JWT or role
// middleware and are intended for guests browsing before signing up.
// The optional middleware (response caching) applies to these routes
// only; authenticated routes must never share a cache entry.
func RegisterCatalog(e *echo.Echo, t *handler.TourHandler, av *handler.AvailabilityHandler, pm *handler.PaymentMethodHandler, mws ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mws...)
	g.GET("/tours", t.ListTours)
	g.GET("/tours/:id", t.GetTour)
	g.GET("/availabilities", av.ListSlots)
	g.GET("/payment-methods", pm.ListMethods)
}

// RegisterBookings registers the authenticated booking endpoints and
// the administrative slot-creation route.  Creating, listing and
// reading bookings is open to both roles; slot creation is ADMIN only.
func RegisterBookings(e *echo.Echo, b *handler.BookingHandler, av *handler.AvailabilityHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleAdmin, model.RoleClient))
	g.POST("/bookings", b.CreateBooking)
	g.GET("/bookings", b.ListBookings)
	g.GET("/bookings/:id", b.GetBooking)

	admin := e.Group("/v1")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.POST("/availabilities", av.CreateSlot)
}

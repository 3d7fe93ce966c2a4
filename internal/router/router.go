package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/restaurant-table-booking/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/restaurant-table-booking/internal/middleware" // import middleware for JWT authentication and role enforcement
	"github.com/iliyamo/restaurant-table-booking/internal/model"      // staff role constants
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterBooking wires the front-desk API under /api.  When jwtSecret
// is empty the server runs open, matching the original single-terminal
// deployment; with a secret set, every /api route requires a staff
// token and the daily report additionally requires the Manager role.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, jwtSecret string) {
	api := e.Group("/api")
	if jwtSecret != "" {
		api.Use(middleware.JWTAuth(jwtSecret))
	}

	api.GET("/tables", b.GetTables)
	api.GET("/reservations", b.GetReservations)
	api.GET("/orders", b.GetOrders)
	api.GET("/menu", b.GetMenu)
	api.GET("/staff", b.GetStaff)

	api.POST("/reservations", b.CreateReservation)
	api.POST("/walkins", b.CreateWalkIn)
	api.POST("/orders", b.PlaceOrder)
	api.POST("/reservations/:id/status", b.UpdateStatus)
	api.POST("/reservations/:id/table", b.AssignTable)
	api.DELETE("/reservations/:id", b.DeleteReservation)

	// Only managers may pull revenue numbers.
	report := api.Group("/report")
	if jwtSecret != "" {
		report.Use(middleware.RequireRole(model.RoleManager))
	}
	report.GET("", b.GetReport)
}

// RegisterAuth registers the staff login route and the protected /me
// probe.  Login stays open; /me requires a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/api/auth")
	g.POST("/login", a.Login)

	me := e.Group("/api/auth/me")
	me.Use(middleware.JWTAuth(jwtSecret))
	me.GET("", a.Me)
}

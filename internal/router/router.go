package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/toolshedapp/toolshed/internal/handler"
	"github.com/toolshedapp/toolshed/internal/middleware"
)

// RegisterRoutes wires the whole HTTP surface onto the provided Echo
// instance. Browsing routes are public so the UI can show the catalog before
// the owner unlocks the device; every route that mutates store state runs
// behind the JWT middleware signed with jwtSecret.
func RegisterRoutes(e *echo.Echo, a *handler.AuthHandler, cat *handler.CatalogHandler, cart *handler.CartHandler, bk *handler.BookingHandler, jwtSecret string) {
	// Liveness probe for supervisors and the UI's startup check.
	e.GET("/healthz", handler.Health)

	// Device login. The only unauthenticated POST in the API.
	e.POST("/v1/auth/login", a.Login)

	// Public browse: catalog search and single-listing reads.
	e.GET("/v1/tools", cat.Browse)
	e.GET("/v1/tools/:id", cat.Get)

	// Everything below mutates or reads private state and requires a valid
	// access token.
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))

	// Catalog management.
	g.POST("/tools", cat.Create)
	g.PATCH("/tools/:id", cat.Update)
	g.POST("/tools/:id/archive", cat.Archive)
	g.DELETE("/tools/:id", cat.Delete)

	// Favorites.
	g.GET("/favorites", cat.Favorites)
	g.POST("/tools/:id/favorite", cat.ToggleFavorite)

	// Rental cart.
	g.GET("/cart", cart.View)
	g.POST("/cart", cart.Add)
	g.PATCH("/cart/:toolId", cart.UpdateDays)
	g.DELETE("/cart/:toolId", cart.Remove)
	g.DELETE("/cart", cart.Clear)

	// Bookings: history, checkout, status updates.
	g.GET("/bookings", bk.List)
	g.POST("/checkout", bk.Checkout)
	g.PATCH("/bookings/:id/status", bk.SetStatus)
	g.DELETE("/bookings", bk.ClearAll)
}

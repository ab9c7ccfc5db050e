// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/library-seat-reservation/internal/config"
	"github.com/iliyamo/library-seat-reservation/internal/handler"
	"github.com/iliyamo/library-seat-reservation/internal/middleware"
	"github.com/iliyamo/library-seat-reservation/internal/model"
)

// Handlers bundles every handler the API mounts.
type Handlers struct {
	Auth      *handler.AuthHandler
	Booking   *handler.BookingHandler
	Seat      *handler.SeatHandler
	Admin     *handler.AdminHandler
	Assistant *handler.AssistantHandler
}

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAPI mounts the full API surface. Register and login live under
// /v1/auth without a token; everything else under /v1 requires a valid
// access token, and /v1/admin additionally requires the ADMIN role. The
// rate limiter protects the whole authenticated surface and degrades to a
// passthrough when Redis is down.
func RegisterAPI(e *echo.Echo, h Handlers, cfg config.Config, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	g := e.Group("/v1/auth")
	g.POST("/register", h.Auth.Register)
	g.POST("/login", h.Auth.Login)

	api := e.Group("/v1")
	api.Use(middleware.JWTAuth(cfg.JWTSecret))
	api.Use(middleware.RequireRole(string(model.RoleStudent), string(model.RoleAdmin)))
	api.Use(middleware.NewTokenBucket(rlCfg, rdb))

	api.GET("/me", h.Auth.Me)
	api.POST("/auth/logout", h.Auth.Logout)

	api.GET("/seats", h.Seat.List)
	api.GET("/slots", h.Booking.Slots)
	api.POST("/bookings", h.Booking.Create)
	api.PUT("/bookings/:id/cancel", h.Booking.Cancel)
	api.GET("/my-bookings", h.Booking.MyBookings)

	api.POST("/assistant/chat", h.Assistant.Chat)

	admin := api.Group("/admin")
	admin.Use(middleware.RequireRole(string(model.RoleAdmin)))

	admin.GET("/users", h.Admin.ListUsers)
	admin.PUT("/users/:id/block", h.Admin.SetBlocked)
	admin.GET("/bookings", h.Admin.ListBookings)
	admin.GET("/reports/bookings.csv", h.Admin.ExportCSV)

	admin.POST("/seats", h.Seat.Add)
	admin.PUT("/seats/:id/move", h.Seat.Move)
	admin.PUT("/seats/:id/rotate", h.Seat.Rotate)
	admin.PUT("/seats/:id/type", h.Seat.ChangeType)
	admin.PUT("/seats/:id/maintenance", h.Seat.ToggleMaintenance)
	admin.DELETE("/seats/:id", h.Seat.Delete)
}

package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/library-seat-reservation/internal/auth"
	"github.com/iliyamo/library-seat-reservation/internal/booking"
	"github.com/iliyamo/library-seat-reservation/internal/report"
	"github.com/iliyamo/library-seat-reservation/internal/store"
)

// AdminHandler serves user moderation, the booking overview and the CSV
// export. All routes are behind the ADMIN role middleware.
type AdminHandler struct {
	Auth  *auth.Controller
	Store store.Store
}

func NewAdminHandler(a *auth.Controller, s store.Store) *AdminHandler {
	return &AdminHandler{Auth: a, Store: s}
}

// ListUsers handles GET /v1/admin/users.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	users, err := h.Store.ListUsers(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load users"})
	}
	out := make([]userDTO, 0, len(users))
	for _, u := range users {
		out = append(out, toUserDTO(u))
	}
	return c.JSON(http.StatusOK, out)
}

type setBlockedRequest struct {
	Blocked bool `json:"blocked"`
}

// SetBlocked handles PUT /v1/admin/users/:id/block. Blocking an ADMIN is
// silently ignored and the unchanged record is returned.
func (h *AdminHandler) SetBlocked(c echo.Context) error {
	var in setBlockedRequest
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	u, err := h.Auth.SetBlocked(ctx, c.Param("id"), in.Blocked)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update user"})
	}
	return c.JSON(http.StatusOK, toUserDTO(u))
}

// ListBookings handles GET /v1/admin/bookings and returns every booking
// with seat labels resolved.
func (h *AdminHandler) ListBookings(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	bookings, err := h.Store.ListBookings(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
	}
	labels := map[string]string{}
	if seats, err := h.Store.ListSeats(ctx); err == nil {
		for _, s := range seats {
			labels[s.ID] = s.Label
		}
	}
	out := make([]bookingDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingDTO(b, labels))
	}
	return c.JSON(http.StatusOK, out)
}

// ExportCSV handles GET /v1/admin/reports/bookings.csv?from=&to=. Both
// bounds are inclusive calendar days; an omitted bound defaults to an
// open range on that side.
func (h *AdminHandler) ExportCSV(c echo.Context) error {
	from, to, err := parseRange(c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date range"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	bookings, err := h.Store.ListBookings(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
	}
	users, err := h.Store.ListUsers(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load users"})
	}
	seats, err := h.Store.ListSeats(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load seats"})
	}

	csv := report.BookingsCSV(bookings, users, seats, from, to)
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="bookings.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}

func parseRange(fromStr, toStr string) (time.Time, time.Time, error) {
	from := time.Time{}
	to := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	if fromStr != "" {
		d, err := time.Parse(booking.DateLayout, fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = d
	}
	if toStr != "" {
		d, err := time.Parse(booking.DateLayout, toStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = d
	}
	return from, to, nil
}

package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/library-seat-reservation/internal/layout"
	"github.com/iliyamo/library-seat-reservation/internal/model"
	"github.com/iliyamo/library-seat-reservation/internal/store"
)

// SeatHandler serves the floor plan and the admin layout editor. Editor
// operations follow a read-modify-replace cycle: load the collection,
// apply the pure layout function, write the whole collection back.
type SeatHandler struct {
	Store store.Store
}

func NewSeatHandler(s store.Store) *SeatHandler {
	return &SeatHandler{Store: s}
}

// List handles GET /v1/seats and returns the full floor plan.
func (h *SeatHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	seats, err := h.Store.ListSeats(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load seats"})
	}
	if seats == nil {
		seats = []model.Seat{}
	}
	return c.JSON(http.StatusOK, seats)
}

type addSeatRequest struct {
	X    int            `json:"x"`
	Y    int            `json:"y"`
	Type model.SeatType `json:"type"`
}

// Add handles POST /v1/admin/seats. Placing a seat on an occupied grid
// cell yields 409.
func (h *SeatHandler) Add(c echo.Context) error {
	var in addSeatRequest
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if in.X < 0 || in.Y < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid grid position"})
	}
	if in.Type == "" {
		in.Type = model.SeatStandard
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	seats, err := h.Store.ListSeats(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load seats"})
	}
	next, seat, err := layout.Add(seats, in.X, in.Y, in.Type)
	if err != nil {
		if errors.Is(err, layout.ErrCellOccupied) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "cell already occupied"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to add seat"})
	}
	if err := h.Store.ReplaceSeats(ctx, next); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save seats"})
	}
	return c.JSON(http.StatusCreated, seat)
}

type moveSeatRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Move handles PUT /v1/admin/seats/:id/move. The label is recomputed from
// the new cell.
func (h *SeatHandler) Move(c echo.Context) error {
	var in moveSeatRequest
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if in.X < 0 || in.Y < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid grid position"})
	}
	return h.mutate(c, func(seats []model.Seat) ([]model.Seat, error) {
		return layout.Move(seats, c.Param("id"), in.X, in.Y)
	})
}

// Rotate handles PUT /v1/admin/seats/:id/rotate, a quarter turn clockwise.
func (h *SeatHandler) Rotate(c echo.Context) error {
	return h.mutate(c, func(seats []model.Seat) ([]model.Seat, error) {
		return layout.Rotate(seats, c.Param("id"))
	})
}

type changeTypeRequest struct {
	Type model.SeatType `json:"type"`
}

// ChangeType handles PUT /v1/admin/seats/:id/type.
func (h *SeatHandler) ChangeType(c echo.Context) error {
	var in changeTypeRequest
	if err := c.Bind(&in); err != nil || in.Type == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	return h.mutate(c, func(seats []model.Seat) ([]model.Seat, error) {
		return layout.ChangeType(seats, c.Param("id"), in.Type)
	})
}

// Delete handles DELETE /v1/admin/seats/:id. Deleting an unknown id is a
// no-op and still returns 204; bookings referencing the seat are left in
// place and render with an "Unknown" label.
func (h *SeatHandler) Delete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	seats, err := h.Store.ListSeats(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load seats"})
	}
	if err := h.Store.ReplaceSeats(ctx, layout.Delete(seats, c.Param("id"))); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save seats"})
	}
	return c.NoContent(http.StatusNoContent)
}

// ToggleMaintenance handles PUT /v1/admin/seats/:id/maintenance. Unlike
// the layout operations this goes straight through the store, which flips
// the flag on the stored record.
func (h *SeatHandler) ToggleMaintenance(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	if err := h.Store.ToggleMaintenance(ctx, c.Param("id")); err != nil {
		if errors.Is(err, store.ErrSeatNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update seat"})
	}
	return c.NoContent(http.StatusNoContent)
}

// mutate runs one read-modify-replace cycle and maps the layout sentinels.
func (h *SeatHandler) mutate(c echo.Context, fn func([]model.Seat) ([]model.Seat, error)) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	seats, err := h.Store.ListSeats(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load seats"})
	}
	next, err := fn(seats)
	if err != nil {
		switch {
		case errors.Is(err, layout.ErrCellOccupied):
			return c.JSON(http.StatusConflict, echo.Map{"error": "cell already occupied"})
		case errors.Is(err, layout.ErrSeatNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update seat"})
		}
	}
	if err := h.Store.ReplaceSeats(ctx, next); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save seats"})
	}
	return c.NoContent(http.StatusNoContent)
}

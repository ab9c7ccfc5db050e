package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/library-seat-reservation/internal/booking"
	"github.com/iliyamo/library-seat-reservation/internal/model"
	"github.com/iliyamo/library-seat-reservation/internal/queue"
	queuepub "github.com/iliyamo/library-seat-reservation/internal/service"
	"github.com/iliyamo/library-seat-reservation/internal/store"
)

// BookingHandler serves slot listing, reservation and cancellation.
type BookingHandler struct {
	Engine *booking.Engine
	Store  store.Store
}

func NewBookingHandler(e *booking.Engine, s store.Store) *BookingHandler {
	return &BookingHandler{Engine: e, Store: s}
}

type createBookingRequest struct {
	SeatID    string `json:"seatId"`
	Date      string `json:"date"`
	StartHour int    `json:"startHour"`
}

// bookingDTO is a booking enriched with the seat's display label. The
// label is resolved at read time; a booking can outlive its seat, in
// which case the label falls back to "Unknown".
type bookingDTO struct {
	ID        string `json:"id"`
	SeatID    string `json:"seatId"`
	SeatLabel string `json:"seatLabel"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func toBookingDTO(b model.Booking, seatLabels map[string]string) bookingDTO {
	label, ok := seatLabels[b.SeatID]
	if !ok {
		label = "Unknown"
	}
	return bookingDTO{
		ID:        b.ID,
		SeatID:    b.SeatID,
		SeatLabel: label,
		UserID:    b.UserID,
		UserName:  b.UserName,
		Date:      b.Date,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Status:    string(b.Status),
		Timestamp: b.Timestamp.UTC().Format(time.RFC3339),
	}
}

func (h *BookingHandler) seatLabels(ctx context.Context) map[string]string {
	labels := map[string]string{}
	seats, err := h.Store.ListSeats(ctx)
	if err != nil {
		return labels
	}
	for _, s := range seats {
		labels[s.ID] = s.Label
	}
	return labels
}

// Slots handles GET /v1/slots?seatId=&date=. Without a seatId it returns
// the purely time-filtered start hours for the date; with one it also
// removes hours already taken on that seat.
func (h *BookingHandler) Slots(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date is required"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	hours, err := h.Engine.AvailableSlots(ctx, c.QueryParam("seatId"), date, time.Now())
	if err != nil {
		if errors.Is(err, booking.ErrInvalidDate) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load slots"})
	}
	type slot struct {
		StartHour int    `json:"startHour"`
		Label     string `json:"label"`
	}
	out := make([]slot, 0, len(hours))
	for _, hr := range hours {
		out = append(out, slot{StartHour: hr, Label: booking.SlotLabel(hr)})
	}
	return c.JSON(http.StatusOK, echo.Map{"date": date, "slots": out})
}

// Create handles POST /v1/bookings. A student may hold at most one active
// booking per date and start hour, regardless of seat; that check runs
// here, the seat-level conflict check runs inside the engine.
func (h *BookingHandler) Create(c echo.Context) error {
	userID, _, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var in createBookingRequest
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if in.SeatID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seatId is required"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	taken, err := h.Engine.HasActiveBooking(ctx, userID, in.Date, in.StartHour)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to check bookings"})
	}
	if taken {
		return c.JSON(http.StatusConflict, echo.Map{"error": "you already have a booking for this slot"})
	}

	userName := h.lookupUserName(ctx, userID)
	b, err := h.Engine.Create(ctx, in.SeatID, userID, userName, in.Date, in.StartHour)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSeatTaken):
			return c.JSON(http.StatusConflict, echo.Map{"error": "seat already booked for this slot"})
		case errors.Is(err, booking.ErrInvalidSlot), errors.Is(err, booking.ErrInvalidDate):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create booking"})
		}
	}

	labels := h.seatLabels(ctx)
	go publishCreated(b, labels)

	return c.JSON(http.StatusCreated, toBookingDTO(b, labels))
}

// Cancel handles PUT /v1/bookings/:id/cancel. Cancellation is idempotent;
// an already cancelled booking stays cancelled and the call succeeds.
func (h *BookingHandler) Cancel(c echo.Context) error {
	userID, _, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id := c.Param("id")
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	if err := h.Engine.Cancel(ctx, id); err != nil {
		if errors.Is(err, store.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to cancel booking"})
	}

	go func() {
		pctx, pcancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pcancel()
		_ = queuepub.PublishBookingCancelled(pctx, queue.BookingCancelledEvent{
			BookingID:   id,
			CancelledBy: userID,
			CancelledAt: time.Now().UTC().Format(time.RFC3339),
		})
	}()

	return c.NoContent(http.StatusNoContent)
}

// MyBookings handles GET /v1/my-bookings and returns all of the user's
// bookings, newest first, with seat labels resolved.
func (h *BookingHandler) MyBookings(c echo.Context) error {
	userID, _, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	bookings, err := h.Store.ListBookings(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
	}
	labels := h.seatLabels(ctx)
	out := make([]bookingDTO, 0)
	for _, b := range bookings {
		if b.UserID == userID {
			out = append(out, toBookingDTO(b, labels))
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) lookupUserName(ctx context.Context, userID string) string {
	users, err := h.Store.ListUsers(ctx)
	if err != nil {
		return "Unknown"
	}
	for _, u := range users {
		if u.ID == userID {
			return u.Name
		}
	}
	return "Unknown"
}

func publishCreated(b model.Booking, labels map[string]string) {
	label, ok := labels[b.SeatID]
	if !ok {
		label = "Unknown"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = queuepub.PublishBookingCreated(ctx, queue.BookingCreatedEvent{
		BookingID: b.ID,
		UserID:    b.UserID,
		UserName:  b.UserName,
		SeatID:    b.SeatID,
		SeatLabel: label,
		Date:      b.Date,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		CreatedAt: b.Timestamp.UTC().Format(time.RFC3339),
	})
}

// Package booking implements the reservation rules: the hourly slot
// domain, conflict checks and the create/cancel operations.
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/library-seat-reservation/internal/model"
	"github.com/iliyamo/library-seat-reservation/internal/store"
)

// Slots run hourly from 08:00 through the 19:00 start, 12 per day.
const (
	OpenHour  = 8
	CloseHour = 19
)

// DateLayout is the calendar-day format used throughout the system.
const DateLayout = "2006-01-02"

var (
	// ErrInvalidSlot rejects a start hour outside the slot domain.
	ErrInvalidSlot = errors.New("start hour outside booking hours")
	// ErrInvalidDate rejects a date not formatted as 2006-01-02.
	ErrInvalidDate = errors.New("invalid booking date")
	// ErrSeatTaken means another active booking already occupies the
	// seat/date/slot tuple.
	ErrSeatTaken = errors.New("seat already booked for this slot")
)

// Store is the slice of the persistence layer the engine needs.
type Store interface {
	ListBookings(ctx context.Context) ([]model.Booking, error)
	CreateBooking(ctx context.Context, b model.Booking) error
	CancelBooking(ctx context.Context, id string) error
}

// Engine validates and records reservations against a Store.
type Engine struct {
	store Store
}

func NewEngine(s Store) *Engine {
	return &Engine{store: s}
}

// SlotLabel formats a start hour as HH:00.
func SlotLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// Slots returns the selectable start hours for a date. On the current
// calendar day every slot whose start hour is not strictly greater than
// the current hour is excluded; future dates always offer all 12 slots.
// Past dates offer none.
func Slots(date string, now time.Time) ([]int, error) {
	d, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return nil, ErrInvalidDate
	}
	today := now.Format(DateLayout)
	var hours []int
	for h := OpenHour; h <= CloseHour; h++ {
		if date == today && h <= now.Hour() {
			continue
		}
		if d.Before(now) && date != today {
			continue
		}
		hours = append(hours, h)
	}
	return hours, nil
}

// AvailableSlots narrows Slots to the hours not already taken by an
// active booking on the given seat. An empty seatID skips the occupancy
// filter and returns the purely time-filtered slots.
func (e *Engine) AvailableSlots(ctx context.Context, seatID, date string, now time.Time) ([]int, error) {
	hours, err := Slots(date, now)
	if err != nil {
		return nil, err
	}
	if seatID == "" || len(hours) == 0 {
		return hours, nil
	}
	bookings, err := e.store.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool)
	for _, b := range bookings {
		if b.Status == model.BookingActive && b.SeatID == seatID && b.Date == date {
			taken[b.StartTime] = true
		}
	}
	free := hours[:0]
	for _, h := range hours {
		if !taken[SlotLabel(h)] {
			free = append(free, h)
		}
	}
	return free, nil
}

// HasActiveBooking reports whether the user already holds an active
// booking for the date and start hour. The booking handler runs this
// check before Create; the engine itself only re-checks the seat side.
func (e *Engine) HasActiveBooking(ctx context.Context, userID, date string, hour int) (bool, error) {
	bookings, err := e.store.ListBookings(ctx)
	if err != nil {
		return false, err
	}
	start := SlotLabel(hour)
	for _, b := range bookings {
		if b.Status == model.BookingActive && b.UserID == userID && b.Date == date && b.StartTime == start {
			return true, nil
		}
	}
	return false, nil
}

// Create validates the slot, re-checks the seat-level conflict and
// persists a new ACTIVE booking. The check and the write are not atomic;
// the backend performs its own authoritative check and a conflict there
// surfaces as the same ErrSeatTaken.
func (e *Engine) Create(ctx context.Context, seatID, userID, userName, date string, hour int) (model.Booking, error) {
	if hour < OpenHour || hour > CloseHour {
		return model.Booking{}, ErrInvalidSlot
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return model.Booking{}, ErrInvalidDate
	}
	start := SlotLabel(hour)
	bookings, err := e.store.ListBookings(ctx)
	if err != nil {
		return model.Booking{}, err
	}
	for _, b := range bookings {
		if b.Status == model.BookingActive && b.SeatID == seatID && b.Date == date && b.StartTime == start {
			return model.Booking{}, ErrSeatTaken
		}
	}
	b := model.Booking{
		ID:        uuid.NewString(),
		SeatID:    seatID,
		UserID:    userID,
		UserName:  userName,
		Date:      date,
		StartTime: start,
		EndTime:   SlotLabel(hour + 1),
		Timestamp: time.Now().UTC(),
		Status:    model.BookingActive,
	}
	if err := e.store.CreateBooking(ctx, b); err != nil {
		if errors.Is(err, store.ErrBookingConflict) {
			return model.Booking{}, ErrSeatTaken
		}
		return model.Booking{}, err
	}
	return b, nil
}

// Cancel sets the booking status to CANCELLED. There is deliberately no
// ownership check here: the observed system lets any caller holding the
// id cancel any booking, and hiding that gap silently would misrepresent
// the contract. Cancelling an already cancelled booking succeeds and
// leaves it CANCELLED.
func (e *Engine) Cancel(ctx context.Context, id string) error {
	return e.store.CancelBooking(ctx, id)
}

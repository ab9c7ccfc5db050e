// Package store implements the persistence layer: a remote JSON-over-HTTP
// backend, a local key-value fallback holding whole collections as blobs,
// and a decorator that switches from the former to the latter the first
// time the remote backend fails.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/iliyamo/library-seat-reservation/internal/model"
)

// Collection blob keys shared by the local store and the session holder.
const (
	KeyUsers    = "users"
	KeySeats    = "seats"
	KeyBookings = "bookings"
	KeySession  = "current-session"
)

// Store is the uniform persistence contract consumed by the domain
// packages. Both backends and the fallback decorator implement it.
type Store interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, u model.User) error
	UpdateUser(ctx context.Context, u model.User) error

	ListSeats(ctx context.Context) ([]model.Seat, error)
	ReplaceSeats(ctx context.Context, seats []model.Seat) error
	ToggleMaintenance(ctx context.Context, seatID string) error

	ListBookings(ctx context.Context) ([]model.Booking, error)
	CreateBooking(ctx context.Context, b model.Booking) error
	CancelBooking(ctx context.Context, id string) error
}

// ErrBookingConflict is returned by CreateBooking when the backend refuses
// the record because the seat/date/slot tuple is already taken.
var ErrBookingConflict = errors.New("booking conflict")

// ErrBookingNotFound is returned by CancelBooking for an unknown id.
var ErrBookingNotFound = errors.New("booking not found")

// ErrSeatNotFound is returned when a seat mutation targets an unknown id.
var ErrSeatNotFound = errors.New("seat not found")

// ErrUserNotFound is returned when a user mutation targets an unknown id.
var ErrUserNotFound = errors.New("user not found")

// TransportError wraps any network failure, timeout or 5xx answer from the
// remote backend. The fallback decorator treats it as the signal to switch
// to the local store; every other error passes through untouched.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("remote %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

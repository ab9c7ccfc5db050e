package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iliyamo/library-seat-reservation/internal/model"
)

// LocalStore persists each collection as one JSON blob in a KV area.
// Reads deserialize the whole blob, writes serialize and overwrite the
// whole blob; there are no partial updates. The first read of an empty
// area seeds it with the built-in dataset so the application is usable
// with no backend at all.
type LocalStore struct {
	kv KV
}

func NewLocalStore(kv KV) *LocalStore {
	return &LocalStore{kv: kv}
}

// ensureSeeded writes the built-in dataset when the users blob is absent.
// Seeding is keyed on users alone: the three collections are always
// written together, so a missing users blob means a fresh area.
func (s *LocalStore) ensureSeeded(ctx context.Context) error {
	b, err := s.kv.Get(ctx, KeyUsers)
	if err != nil {
		return err
	}
	if b != nil {
		return nil
	}
	if err := s.writeCollection(ctx, KeyUsers, seedUsers()); err != nil {
		return err
	}
	if err := s.writeCollection(ctx, KeySeats, seedSeats()); err != nil {
		return err
	}
	return s.writeCollection(ctx, KeyBookings, []model.Booking{})
}

func (s *LocalStore) readCollection(ctx context.Context, key string, out any) error {
	if err := s.ensureSeeded(ctx); err != nil {
		return err
	}
	b, err := s.kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if b == nil {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode %s blob: %w", key, err)
	}
	return nil
}

func (s *LocalStore) writeCollection(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key, b)
}

func (s *LocalStore) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := s.readCollection(ctx, KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *LocalStore) CreateUser(ctx context.Context, u model.User) error {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return err
	}
	users = append(users, u)
	return s.writeCollection(ctx, KeyUsers, users)
}

func (s *LocalStore) UpdateUser(ctx context.Context, u model.User) error {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == u.ID {
			users[i] = u
			return s.writeCollection(ctx, KeyUsers, users)
		}
	}
	return ErrUserNotFound
}

func (s *LocalStore) ListSeats(ctx context.Context) ([]model.Seat, error) {
	var seats []model.Seat
	if err := s.readCollection(ctx, KeySeats, &seats); err != nil {
		return nil, err
	}
	return seats, nil
}

func (s *LocalStore) ReplaceSeats(ctx context.Context, seats []model.Seat) error {
	if err := s.ensureSeeded(ctx); err != nil {
		return err
	}
	if seats == nil {
		seats = []model.Seat{}
	}
	return s.writeCollection(ctx, KeySeats, seats)
}

func (s *LocalStore) ToggleMaintenance(ctx context.Context, seatID string) error {
	seats, err := s.ListSeats(ctx)
	if err != nil {
		return err
	}
	for i := range seats {
		if seats[i].ID == seatID {
			seats[i].IsMaintenance = !seats[i].IsMaintenance
			return s.writeCollection(ctx, KeySeats, seats)
		}
	}
	return ErrSeatNotFound
}

func (s *LocalStore) ListBookings(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := s.readCollection(ctx, KeyBookings, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateBooking appends the booking after re-checking the slot. The local
// store is authoritative when the process runs in fallback mode, so it
// enforces the same 201-or-conflict contract as the remote backend.
func (s *LocalStore) CreateBooking(ctx context.Context, b model.Booking) error {
	bookings, err := s.ListBookings(ctx)
	if err != nil {
		return err
	}
	for _, existing := range bookings {
		if existing.Status == model.BookingActive &&
			existing.SeatID == b.SeatID &&
			existing.Date == b.Date &&
			existing.StartTime == b.StartTime {
			return ErrBookingConflict
		}
	}
	bookings = append(bookings, b)
	return s.writeCollection(ctx, KeyBookings, bookings)
}

// CancelBooking sets the status to CANCELLED. Cancelling an already
// cancelled booking is a no-op that still succeeds.
func (s *LocalStore) CancelBooking(ctx context.Context, id string) error {
	bookings, err := s.ListBookings(ctx)
	if err != nil {
		return err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			bookings[i].Status = model.BookingCancelled
			return s.writeCollection(ctx, KeyBookings, bookings)
		}
	}
	return ErrBookingNotFound
}

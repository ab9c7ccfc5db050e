package store

import (
	"context"
	"errors"
	"testing"

	"github.com/iliyamo/library-seat-reservation/internal/model"
)

func newLocal(t *testing.T) *LocalStore {
	t.Helper()
	return NewLocalStore(NewMemoryKV())
}

func TestFirstReadSeedsDataset(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	users, err := s.ListUsers(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 2 {
		t.Fatalf("seeded %d users, want 2", len(users))
	}
	var admin, student bool
	for _, u := range users {
		switch u.Role {
		case model.RoleAdmin:
			admin = true
		case model.RoleStudent:
			student = true
		}
	}
	if !admin || !student {
		t.Errorf("seed is missing an admin or a student: %+v", users)
	}

	seats, err := s.ListSeats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(seats) != 12 {
		t.Errorf("seeded %d seats, want 12", len(seats))
	}

	bookings, err := s.ListBookings(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(bookings) != 0 {
		t.Errorf("seeded %d bookings, want 0", len(bookings))
	}
}

func TestSeedRunsOnce(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	if err := s.CreateUser(ctx, model.User{ID: "extra", Email: "x@library.local"}); err != nil {
		t.Fatal(err)
	}
	users, err := s.ListUsers(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 3 {
		t.Errorf("len = %d, want 3; a second seed would have clobbered the write", len(users))
	}
}

func TestReplaceSeatsOverwritesCollection(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	next := []model.Seat{{ID: "only", Label: "A1"}}
	if err := s.ReplaceSeats(ctx, next); err != nil {
		t.Fatal(err)
	}
	seats, err := s.ListSeats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(seats) != 1 || seats[0].ID != "only" {
		t.Errorf("seats = %+v, want the single replacement seat", seats)
	}
}

func TestCreateBookingConflict(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	b := model.Booking{ID: "b1", SeatID: "s1", Date: "2026-03-11", StartTime: "09:00", Status: model.BookingActive}
	if err := s.CreateBooking(ctx, b); err != nil {
		t.Fatal(err)
	}

	dup := b
	dup.ID = "b2"
	dup.UserID = "someone-else"
	if err := s.CreateBooking(ctx, dup); !errors.Is(err, ErrBookingConflict) {
		t.Errorf("err = %v, want ErrBookingConflict", err)
	}

	// a different slot on the same seat is fine
	other := b
	other.ID = "b3"
	other.StartTime = "10:00"
	if err := s.CreateBooking(ctx, other); err != nil {
		t.Errorf("different slot: %v", err)
	}
}

func TestCancelledBookingFreesSlot(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	b := model.Booking{ID: "b1", SeatID: "s1", Date: "2026-03-11", StartTime: "09:00", Status: model.BookingActive}
	if err := s.CreateBooking(ctx, b); err != nil {
		t.Fatal(err)
	}
	if err := s.CancelBooking(ctx, "b1"); err != nil {
		t.Fatal(err)
	}

	again := b
	again.ID = "b2"
	if err := s.CreateBooking(ctx, again); err != nil {
		t.Errorf("rebooking a cancelled slot: %v", err)
	}
}

func TestCancelBookingIdempotent(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	b := model.Booking{ID: "b1", SeatID: "s1", Date: "2026-03-11", StartTime: "09:00", Status: model.BookingActive}
	if err := s.CreateBooking(ctx, b); err != nil {
		t.Fatal(err)
	}
	if err := s.CancelBooking(ctx, "b1"); err != nil {
		t.Fatal(err)
	}
	if err := s.CancelBooking(ctx, "b1"); err != nil {
		t.Errorf("second cancel: %v, want success", err)
	}

	bookings, _ := s.ListBookings(ctx)
	if bookings[0].Status != model.BookingCancelled {
		t.Errorf("status = %q, want CANCELLED", bookings[0].Status)
	}
}

func TestCancelUnknownBooking(t *testing.T) {
	s := newLocal(t)
	if err := s.CancelBooking(context.Background(), "nope"); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("err = %v, want ErrBookingNotFound", err)
	}
}

func TestToggleMaintenance(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	seats, err := s.ListSeats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	id := seats[0].ID

	if err := s.ToggleMaintenance(ctx, id); err != nil {
		t.Fatal(err)
	}
	seats, _ = s.ListSeats(ctx)
	if !seats[0].IsMaintenance {
		t.Error("flag not set after toggle")
	}
	if err := s.ToggleMaintenance(ctx, id); err != nil {
		t.Fatal(err)
	}
	seats, _ = s.ListSeats(ctx)
	if seats[0].IsMaintenance {
		t.Error("flag not cleared after second toggle")
	}

	if err := s.ToggleMaintenance(ctx, "nope"); !errors.Is(err, ErrSeatNotFound) {
		t.Errorf("err = %v, want ErrSeatNotFound", err)
	}
}

func TestUpdateUnknownUser(t *testing.T) {
	s := newLocal(t)
	err := s.UpdateUser(context.Background(), model.User{ID: "nope"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

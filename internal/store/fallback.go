package store

import (
	"context"
	"errors"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/iliyamo/library-seat-reservation/internal/model"
)

// FallbackStore serves every operation from the remote backend until the
// first transport failure, then switches the instance to the local store
// for the remainder of its lifetime. The switch is sticky on purpose: the
// observed system never probes the remote backend again once it has
// failed, and flip-flopping between backends would let the two diverge
// mid-session. The flag lives on the instance, not in package state, so
// independent stores (as in tests) cannot interfere with each other.
type FallbackStore struct {
	remote  *RemoteStore
	local   *LocalStore
	offline atomic.Bool
	log     *zap.Logger
}

// NewFallbackStore wires the two backends. A nil remote starts the store
// directly in fallback mode, which is how a deployment with no remote API
// configured runs.
func NewFallbackStore(remote *RemoteStore, local *LocalStore, log *zap.Logger) *FallbackStore {
	if log == nil {
		log = zap.NewNop()
	}
	s := &FallbackStore{remote: remote, local: local, log: log}
	if remote == nil {
		s.offline.Store(true)
	}
	return s
}

// Offline reports whether the store has switched to the local backend.
func (s *FallbackStore) Offline() bool { return s.offline.Load() }

// failover flips the sticky flag when err is a transport failure and
// reports whether the caller should retry against the local store.
func (s *FallbackStore) failover(err error) bool {
	var te *TransportError
	if !errors.As(err, &te) {
		return false
	}
	if s.offline.CompareAndSwap(false, true) {
		s.log.Warn("remote backend unreachable, switching to local fallback for the rest of the process",
			zap.String("op", te.Op), zap.Error(te.Err))
	}
	return true
}

func (s *FallbackStore) ListUsers(ctx context.Context) ([]model.User, error) {
	if !s.offline.Load() {
		users, err := s.remote.ListUsers(ctx)
		if !s.failover(err) {
			return users, err
		}
	}
	return s.local.ListUsers(ctx)
}

func (s *FallbackStore) CreateUser(ctx context.Context, u model.User) error {
	if !s.offline.Load() {
		err := s.remote.CreateUser(ctx, u)
		if !s.failover(err) {
			return err
		}
	}
	return s.local.CreateUser(ctx, u)
}

func (s *FallbackStore) UpdateUser(ctx context.Context, u model.User) error {
	if !s.offline.Load() {
		err := s.remote.UpdateUser(ctx, u)
		if !s.failover(err) {
			return err
		}
	}
	return s.local.UpdateUser(ctx, u)
}

func (s *FallbackStore) ListSeats(ctx context.Context) ([]model.Seat, error) {
	if !s.offline.Load() {
		seats, err := s.remote.ListSeats(ctx)
		if !s.failover(err) {
			return seats, err
		}
	}
	return s.local.ListSeats(ctx)
}

func (s *FallbackStore) ReplaceSeats(ctx context.Context, seats []model.Seat) error {
	if !s.offline.Load() {
		err := s.remote.ReplaceSeats(ctx, seats)
		if !s.failover(err) {
			return err
		}
	}
	return s.local.ReplaceSeats(ctx, seats)
}

func (s *FallbackStore) ToggleMaintenance(ctx context.Context, seatID string) error {
	if !s.offline.Load() {
		err := s.remote.ToggleMaintenance(ctx, seatID)
		if !s.failover(err) {
			return err
		}
	}
	return s.local.ToggleMaintenance(ctx, seatID)
}

func (s *FallbackStore) ListBookings(ctx context.Context) ([]model.Booking, error) {
	if !s.offline.Load() {
		bookings, err := s.remote.ListBookings(ctx)
		if !s.failover(err) {
			return bookings, err
		}
	}
	return s.local.ListBookings(ctx)
}

func (s *FallbackStore) CreateBooking(ctx context.Context, b model.Booking) error {
	if !s.offline.Load() {
		err := s.remote.CreateBooking(ctx, b)
		if !s.failover(err) {
			return err
		}
	}
	return s.local.CreateBooking(ctx, b)
}

func (s *FallbackStore) CancelBooking(ctx context.Context, id string) error {
	if !s.offline.Load() {
		err := s.remote.CancelBooking(ctx, id)
		if !s.failover(err) {
			return err
		}
	}
	return s.local.CancelBooking(ctx, id)
}

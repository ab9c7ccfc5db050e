package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/iliyamo/library-seat-reservation/internal/model"
)

// RemoteStore talks to the external persistence API over plain JSON HTTP.
// Every call is bounded by a fixed timeout; a network failure, timeout or
// 5xx answer surfaces as a *TransportError so the fallback decorator can
// react. Application-level rejections (e.g. a booking conflict) are normal
// errors and never trigger the fallback.
type RemoteStore struct {
	base   string
	client *http.Client
}

// NewRemoteStore builds a RemoteStore for the given base URL. The timeout
// applies per call and bounds how long a caller waits before the store
// gives up on the remote backend.
func NewRemoteStore(baseURL string, timeout time.Duration) *RemoteStore {
	return &RemoteStore{
		base:   strings.TrimRight(baseURL, "/"),
		client: &http.Client{Timeout: timeout},
	}
}

// do issues one JSON request and decodes the body into out when the answer
// is 2xx. It returns the status code so callers can interpret non-2xx
// answers; transport failures and 5xx are wrapped in *TransportError.
func (s *RemoteStore) do(ctx context.Context, method, path string, in, out any) (int, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, s.base+path, body)
	if err != nil {
		return 0, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return 0, &TransportError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 500 {
		return resp.StatusCode, &TransportError{Op: method + " " + path, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}
	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, &TransportError{Op: method + " " + path, Err: err}
		}
	}
	return resp.StatusCode, nil
}

func (s *RemoteStore) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	st, err := s.do(ctx, http.MethodGet, "/users", nil, &users)
	if err != nil {
		return nil, err
	}
	if st != http.StatusOK {
		return nil, fmt.Errorf("list users: unexpected status %d", st)
	}
	return users, nil
}

func (s *RemoteStore) CreateUser(ctx context.Context, u model.User) error {
	st, err := s.do(ctx, http.MethodPost, "/users", u, nil)
	if err != nil {
		return err
	}
	if st != http.StatusCreated && st != http.StatusOK {
		return fmt.Errorf("create user: unexpected status %d", st)
	}
	return nil
}

func (s *RemoteStore) UpdateUser(ctx context.Context, u model.User) error {
	st, err := s.do(ctx, http.MethodPut, "/users/"+u.ID, u, nil)
	if err != nil {
		return err
	}
	if st == http.StatusNotFound {
		return ErrUserNotFound
	}
	if st != http.StatusOK && st != http.StatusNoContent {
		return fmt.Errorf("update user: unexpected status %d", st)
	}
	return nil
}

func (s *RemoteStore) ListSeats(ctx context.Context) ([]model.Seat, error) {
	var seats []model.Seat
	st, err := s.do(ctx, http.MethodGet, "/seats", nil, &seats)
	if err != nil {
		return nil, err
	}
	if st != http.StatusOK {
		return nil, fmt.Errorf("list seats: unexpected status %d", st)
	}
	return seats, nil
}

// ReplaceSeats posts the full seat collection. The remote backend replaces
// the collection wholesale; there is no per-seat update at this boundary.
func (s *RemoteStore) ReplaceSeats(ctx context.Context, seats []model.Seat) error {
	st, err := s.do(ctx, http.MethodPost, "/seats", seats, nil)
	if err != nil {
		return err
	}
	if st != http.StatusOK && st != http.StatusCreated {
		return fmt.Errorf("replace seats: unexpected status %d", st)
	}
	return nil
}

func (s *RemoteStore) ToggleMaintenance(ctx context.Context, seatID string) error {
	st, err := s.do(ctx, http.MethodPost, "/seats/toggle-maintenance/"+seatID, nil, nil)
	if err != nil {
		return err
	}
	if st == http.StatusNotFound {
		return ErrSeatNotFound
	}
	if st != http.StatusOK && st != http.StatusNoContent {
		return fmt.Errorf("toggle maintenance: unexpected status %d", st)
	}
	return nil
}

func (s *RemoteStore) ListBookings(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	st, err := s.do(ctx, http.MethodGet, "/bookings", nil, &bookings)
	if err != nil {
		return nil, err
	}
	if st != http.StatusOK {
		return nil, fmt.Errorf("list bookings: unexpected status %d", st)
	}
	return bookings, nil
}

// CreateBooking posts a new booking. The backend answers 201 when the slot
// was free; any other non-5xx answer means the slot was taken in the
// meantime and maps to ErrBookingConflict.
func (s *RemoteStore) CreateBooking(ctx context.Context, b model.Booking) error {
	st, err := s.do(ctx, http.MethodPost, "/bookings", b, nil)
	if err != nil {
		return err
	}
	if st != http.StatusCreated {
		return ErrBookingConflict
	}
	return nil
}

func (s *RemoteStore) CancelBooking(ctx context.Context, id string) error {
	st, err := s.do(ctx, http.MethodPut, "/bookings/"+id+"/cancel", nil, nil)
	if err != nil {
		return err
	}
	if st == http.StatusNotFound {
		return ErrBookingNotFound
	}
	if st != http.StatusOK && st != http.StatusNoContent {
		return fmt.Errorf("cancel booking: unexpected status %d", st)
	}
	return nil
}

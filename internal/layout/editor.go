// Package layout mutates the seat collection as a whole. Every operation
// takes the current collection, returns a new one and leaves the input
// untouched; the caller writes the result back through the store's
// whole-collection replace. Two editors racing on the same collection
// overwrite each other last-write-wins, which is the accepted concurrency
// model for these small fixed layouts.
package layout

import (
	"errors"
	"strconv"

	"github.com/google/uuid"

	"github.com/iliyamo/library-seat-reservation/internal/model"
)

var (
	// ErrCellOccupied rejects placing a seat on a grid cell that already
	// holds one. The store does not enforce this; the editor is the only
	// guard.
	ErrCellOccupied = errors.New("grid cell already occupied")
	// ErrSeatNotFound is returned when an operation targets an unknown id.
	ErrSeatNotFound = errors.New("seat not found")
)

// SeatLabel derives the display label from the grid cell: the row letter
// comes from y, the number from x+1. (0,0) is "A1", (4,2) is "C5".
func SeatLabel(x, y int) string {
	return rowLetters(y) + strconv.Itoa(x+1)
}

// rowLetters converts a zero-based row index to A..Z, then AA, AB, ...
func rowLetters(i int) string {
	if i < 0 {
		return ""
	}
	var buf []byte
	for {
		buf = append([]byte{byte('A' + i%26)}, buf...)
		i = i/26 - 1
		if i < 0 {
			return string(buf)
		}
	}
}

func cellTaken(seats []model.Seat, x, y int, exceptID string) bool {
	for _, s := range seats {
		if s.ID != exceptID && s.X == x && s.Y == y {
			return true
		}
	}
	return false
}

func clone(seats []model.Seat) []model.Seat {
	out := make([]model.Seat, len(seats))
	copy(out, seats)
	return out
}

// Add places a new seat of the given type on a free cell and returns the
// extended collection together with the created seat.
func Add(seats []model.Seat, x, y int, typ model.SeatType) ([]model.Seat, model.Seat, error) {
	if cellTaken(seats, x, y, "") {
		return nil, model.Seat{}, ErrCellOccupied
	}
	seat := model.Seat{
		ID:    uuid.NewString(),
		Label: SeatLabel(x, y),
		Type:  typ,
		X:     x,
		Y:     y,
	}
	return append(clone(seats), seat), seat, nil
}

// Move rewrites a seat's position and recomputes its label.
func Move(seats []model.Seat, id string, x, y int) ([]model.Seat, error) {
	if cellTaken(seats, x, y, id) {
		return nil, ErrCellOccupied
	}
	out := clone(seats)
	for i := range out {
		if out[i].ID == id {
			out[i].X = x
			out[i].Y = y
			out[i].Label = SeatLabel(x, y)
			return out, nil
		}
	}
	return nil, ErrSeatNotFound
}

// Delete filters the seat out of the collection. Deleting an unknown id
// returns the collection unchanged, matching the filter semantics of the
// editor.
func Delete(seats []model.Seat, id string) []model.Seat {
	out := make([]model.Seat, 0, len(seats))
	for _, s := range seats {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out
}

// Rotate turns the seat a quarter turn clockwise: 0, 90, 180, 270, 0.
func Rotate(seats []model.Seat, id string) ([]model.Seat, error) {
	out := clone(seats)
	for i := range out {
		if out[i].ID == id {
			out[i].Rotation = (out[i].Rotation + 90) % 360
			return out, nil
		}
	}
	return nil, ErrSeatNotFound
}

// ChangeType sets the seat's type.
func ChangeType(seats []model.Seat, id string, typ model.SeatType) ([]model.Seat, error) {
	out := clone(seats)
	for i := range out {
		if out[i].ID == id {
			out[i].Type = typ
			return out, nil
		}
	}
	return nil, ErrSeatNotFound
}

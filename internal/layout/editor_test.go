package layout

import (
	"errors"
	"testing"

	"github.com/iliyamo/library-seat-reservation/internal/model"
)

func TestSeatLabel(t *testing.T) {
	cases := []struct {
		x, y int
		want string
	}{
		{0, 0, "A1"},
		{4, 2, "C5"},
		{0, 25, "Z1"},
		{0, 26, "AA1"},
	}
	for _, c := range cases {
		if got := SeatLabel(c.x, c.y); got != c.want {
			t.Errorf("SeatLabel(%d, %d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}
}

func TestAddRejectsOccupiedCell(t *testing.T) {
	seats, seat, err := Add(nil, 1, 1, model.SeatStandard)
	if err != nil {
		t.Fatalf("add on empty grid: %v", err)
	}
	if seat.Label != "B2" {
		t.Errorf("label = %q, want B2", seat.Label)
	}
	if _, _, err := Add(seats, 1, 1, model.SeatQuiet); !errors.Is(err, ErrCellOccupied) {
		t.Errorf("add on taken cell: err = %v, want ErrCellOccupied", err)
	}
}

func TestMoveRecomputesLabel(t *testing.T) {
	seats, seat, err := Add(nil, 0, 0, model.SeatStandard)
	if err != nil {
		t.Fatal(err)
	}
	moved, err := Move(seats, seat.ID, 4, 2)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if moved[0].Label != "C5" || moved[0].X != 4 || moved[0].Y != 2 {
		t.Errorf("moved seat = %+v, want C5 at (4,2)", moved[0])
	}
	// the input collection must stay untouched
	if seats[0].Label != "A1" {
		t.Errorf("input mutated: %+v", seats[0])
	}
}

func TestMoveRejectsOccupiedCell(t *testing.T) {
	seats, a, _ := Add(nil, 0, 0, model.SeatStandard)
	seats, _, _ = Add(seats, 1, 0, model.SeatStandard)

	if _, err := Move(seats, a.ID, 1, 0); !errors.Is(err, ErrCellOccupied) {
		t.Errorf("move onto taken cell: err = %v, want ErrCellOccupied", err)
	}
	// moving a seat onto its own cell is allowed
	if _, err := Move(seats, a.ID, 0, 0); err != nil {
		t.Errorf("move onto own cell: %v", err)
	}
}

func TestMoveUnknownSeat(t *testing.T) {
	if _, err := Move(nil, "nope", 0, 0); !errors.Is(err, ErrSeatNotFound) {
		t.Errorf("err = %v, want ErrSeatNotFound", err)
	}
}

func TestRotateCycles(t *testing.T) {
	seats, seat, _ := Add(nil, 0, 0, model.SeatStandard)
	want := []int{90, 180, 270, 0}
	for _, w := range want {
		var err error
		seats, err = Rotate(seats, seat.ID)
		if err != nil {
			t.Fatalf("rotate: %v", err)
		}
		if seats[0].Rotation != w {
			t.Fatalf("rotation = %d, want %d", seats[0].Rotation, w)
		}
	}
}

func TestDeleteFilters(t *testing.T) {
	seats, a, _ := Add(nil, 0, 0, model.SeatStandard)
	seats, _, _ = Add(seats, 1, 0, model.SeatStandard)

	out := Delete(seats, a.ID)
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	if out[0].ID == a.ID {
		t.Error("deleted seat still present")
	}
	// unknown id is a no-op
	if got := Delete(seats, "nope"); len(got) != 2 {
		t.Errorf("delete unknown id: len = %d, want 2", len(got))
	}
}

func TestChangeType(t *testing.T) {
	seats, seat, _ := Add(nil, 0, 0, model.SeatStandard)
	out, err := ChangeType(seats, seat.ID, model.SeatPC)
	if err != nil {
		t.Fatalf("change type: %v", err)
	}
	if out[0].Type != model.SeatPC {
		t.Errorf("type = %q, want %q", out[0].Type, model.SeatPC)
	}
	if _, err := ChangeType(seats, "nope", model.SeatPC); !errors.Is(err, ErrSeatNotFound) {
		t.Errorf("err = %v, want ErrSeatNotFound", err)
	}
}

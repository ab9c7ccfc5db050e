package report

import (
	"strings"
	"testing"
	"time"

	"github.com/iliyamo/library-seat-reservation/internal/model"
)

var (
	testUsers = []model.User{
		{ID: "u1", Name: "Demo Student", StudentID: "S2024001", Department: "Computer Science"},
	}
	testSeats = []model.Seat{
		{ID: "s1", Label: "A1"},
	}
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBookingsCSVQuotesEveryField(t *testing.T) {
	bookings := []model.Booking{
		{ID: "b1", UserID: "u1", UserName: "Demo Student", SeatID: "s1", Date: "2026-03-11", StartTime: "09:00", EndTime: "10:00", Status: model.BookingActive},
	}
	out := BookingsCSV(bookings, testUsers, testSeats, day("2026-03-01"), day("2026-03-31"))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header plus one row:\n%s", len(lines), out)
	}
	if lines[0] != `"Booking ID","User Name","Student ID","Department","Seat","Date","Time","Status"` {
		t.Errorf("header = %s", lines[0])
	}
	want := `"b1","Demo Student","S2024001","Computer Science","A1","2026-03-11","09:00 - 10:00","ACTIVE"`
	if lines[1] != want {
		t.Errorf("row = %s\nwant  %s", lines[1], want)
	}
}

func TestBookingsCSVEscapesQuotes(t *testing.T) {
	bookings := []model.Booking{
		{ID: "b1", UserName: `The "Owl"`, Date: "2026-03-11", Status: model.BookingActive},
	}
	out := BookingsCSV(bookings, nil, nil, day("2026-03-01"), day("2026-03-31"))
	if !strings.Contains(out, `"The ""Owl"""`) {
		t.Errorf("embedded quotes not doubled:\n%s", out)
	}
}

func TestBookingsCSVRangeIsInclusive(t *testing.T) {
	bookings := []model.Booking{
		{ID: "before", Date: "2026-03-09", Status: model.BookingActive},
		{ID: "lower", Date: "2026-03-10", Status: model.BookingActive},
		{ID: "upper", Date: "2026-03-20", Status: model.BookingActive},
		{ID: "after", Date: "2026-03-21", Status: model.BookingActive},
	}
	out := BookingsCSV(bookings, nil, nil, day("2026-03-10"), day("2026-03-20"))

	for _, id := range []string{"lower", "upper"} {
		if !strings.Contains(out, `"`+id+`"`) {
			t.Errorf("boundary booking %q missing from export", id)
		}
	}
	for _, id := range []string{"before", "after"} {
		if strings.Contains(out, `"`+id+`"`) {
			t.Errorf("out-of-range booking %q included in export", id)
		}
	}
}

func TestBookingsCSVUnknownReferences(t *testing.T) {
	bookings := []model.Booking{
		{ID: "b1", UserID: "gone", SeatID: "gone", Date: "2026-03-11", Status: model.BookingActive},
	}
	out := BookingsCSV(bookings, testUsers, testSeats, day("2026-03-01"), day("2026-03-31"))
	if strings.Count(out, `"Unknown"`) != 3 {
		t.Errorf("want Unknown for student id, department and seat:\n%s", out)
	}
}

func TestBookingsCSVSkipsUnparsableDates(t *testing.T) {
	bookings := []model.Booking{
		{ID: "bad", Date: "soon", Status: model.BookingActive},
	}
	out := BookingsCSV(bookings, nil, nil, day("2026-03-01"), day("2026-03-31"))
	if strings.Contains(out, "bad") {
		t.Errorf("row with unparsable date included:\n%s", out)
	}
}

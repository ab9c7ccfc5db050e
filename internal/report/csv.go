// Package report renders the admin booking export. Every field is
// double-quoted, matching the download format the dashboards expect.
package report

import (
	"strings"
	"time"

	"github.com/iliyamo/library-seat-reservation/internal/booking"
	"github.com/iliyamo/library-seat-reservation/internal/model"
)

// Unknown stands in for any dangling seat or user reference. The store
// never enforces referential integrity, so the report must tolerate a
// booking pointing at a deleted seat or user.
const Unknown = "Unknown"

// BookingsCSV renders one row per booking whose date falls inside the
// inclusive [from, to] range. Columns: booking id, user name, student id,
// department, seat label, date, time range, status. Bookings with an
// unparsable date are skipped.
func BookingsCSV(bookings []model.Booking, users []model.User, seats []model.Seat, from, to time.Time) string {
	userByID := make(map[string]model.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}
	seatLabel := make(map[string]string, len(seats))
	for _, s := range seats {
		seatLabel[s.ID] = s.Label
	}

	var b strings.Builder
	writeRow(&b, []string{"Booking ID", "User Name", "Student ID", "Department", "Seat", "Date", "Time", "Status"})
	for _, bk := range bookings {
		d, err := time.Parse(booking.DateLayout, bk.Date)
		if err != nil {
			continue
		}
		if d.Before(from) || d.After(to) {
			continue
		}
		studentID, department := Unknown, Unknown
		if u, ok := userByID[bk.UserID]; ok {
			studentID, department = u.StudentID, u.Department
		}
		label, ok := seatLabel[bk.SeatID]
		if !ok {
			label = Unknown
		}
		writeRow(&b, []string{
			bk.ID,
			bk.UserName,
			studentID,
			department,
			label,
			bk.Date,
			bk.StartTime + " - " + bk.EndTime,
			string(bk.Status),
		})
	}
	return b.String()
}

// writeRow emits one CSV line with every field quoted; embedded quotes
// are doubled per RFC 4180.
func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

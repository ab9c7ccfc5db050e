package model

import "time"

// BookingStatus is the lifecycle state of a booking. Bookings are created
// ACTIVE and only ever transition to CANCELLED; COMPLETED exists in the
// enumeration for forward compatibility but no code path produces it.
type BookingStatus string

const (
	BookingActive    BookingStatus = "ACTIVE"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Booking reserves one seat for one hourly slot on one calendar day.
// Date is formatted as 2006-01-02, StartTime/EndTime as HH:MM with
// hour-aligned values. UserName is denormalized at creation time so that
// reports stay readable even when the user record later changes.
// SeatID and UserID are plain identifiers resolved at read time;
// consumers must tolerate dangling references.
type Booking struct {
	ID        string        `json:"id"`
	SeatID    string        `json:"seatId"`
	UserID    string        `json:"userId"`
	UserName  string        `json:"userName"`
	Date      string        `json:"date"`
	StartTime string        `json:"startTime"`
	EndTime   string        `json:"endTime"`
	Timestamp time.Time     `json:"timestamp"`
	Status    BookingStatus `json:"status"`
}

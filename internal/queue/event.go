// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records booking activity.
package queue

// BookingCreatedEvent is published when a booking is successfully
// recorded. It carries enough denormalized context for downstream
// consumers to log or notify without querying the store.
type BookingCreatedEvent struct {
	BookingID string `json:"booking_id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	SeatID    string `json:"seat_id"`
	SeatLabel string `json:"seat_label"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	CreatedAt string `json:"created_at"`
}

// BookingCancelledEvent is published when a booking is cancelled.
type BookingCancelledEvent struct {
	BookingID   string `json:"booking_id"`
	CancelledBy string `json:"cancelled_by"`
	CancelledAt string `json:"cancelled_at"`
}

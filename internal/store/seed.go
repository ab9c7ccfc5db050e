package store

import (
	"time"

	"github.com/iliyamo/library-seat-reservation/internal/model"
)

// The built-in dataset keeps the application usable with no backend at
// all: one admin, one demo student, and a small fixed floor plan. IDs are
// fixed strings so repeated seeding of separate areas stays deterministic.

func seedUsers() []model.User {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []model.User{
		{
			ID:        "seed-admin",
			Name:      "Library Admin",
			Email:     "admin@library.local",
			Password:  "admin123",
			Role:      model.RoleAdmin,
			CreatedAt: created,
		},
		{
			ID:         "seed-student",
			Name:       "Demo Student",
			Email:      "student@library.local",
			Password:   "student123",
			Role:       model.RoleStudent,
			StudentID:  "S2024001",
			Department: "Computer Science",
			Mobile:     "5550100200",
			CreatedAt:  created,
		},
	}
}

func seedSeats() []model.Seat {
	// Three rows of four: standard desks in rows A and B, PC places in C.
	seats := make([]model.Seat, 0, 12)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			typ := model.SeatStandard
			if y == 2 {
				typ = model.SeatPC
			}
			seats = append(seats, model.Seat{
				ID:    "seed-seat-" + string(rune('a'+y)) + string(rune('1'+x)),
				Label: string(rune('A'+y)) + string(rune('1'+x)),
				Type:  typ,
				X:     x,
				Y:     y,
			})
		}
	}
	return seats
}

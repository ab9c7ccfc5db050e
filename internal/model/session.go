package model

import "time"

// Session records the currently authenticated identity for this process.
// It is persisted as the current-session blob next to the data collections
// so that a restart resumes with the same identity.
type Session struct {
	UserID   string    `json:"userId"`
	Email    string    `json:"email"`
	Role     Role      `json:"role"`
	Token    string    `json:"token"`
	IssuedAt time.Time `json:"issuedAt"`
}

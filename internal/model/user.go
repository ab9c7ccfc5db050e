package model

import "time"

// Role distinguishes students from administrators. ADMIN accounts are
// seeded; self-registration always produces a STUDENT.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleAdmin   Role = "ADMIN"
)

// User is an application account as exchanged with the remote backend and
// serialized into the local fallback blob. The json tags follow the remote
// API's field naming, which is owned by an external collaborator.
//
// Password is stored and compared in plaintext. This mirrors the system's
// documented contract and is NOT suitable for production use; any
// production deployment must replace it with a salted-hash scheme.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"` // unique, login key
	Password   string    `json:"password"`
	Role       Role      `json:"role"`
	StudentID  string    `json:"studentId"`
	Department string    `json:"department"`
	Mobile     string    `json:"mobile"`
	IsBlocked  bool      `json:"isBlocked"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Package handler contains the HTTP handlers for the seat reservation API.
// Handlers bind and validate input, call the domain packages and translate
// their sentinel errors into status codes. All protected routes assume the
// JWT middleware has already placed user_id and role into the context.
package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/library-seat-reservation/internal/model"
)

// storeTimeout bounds every store call made from a handler.
const storeTimeout = 5 * time.Second

// currentUser extracts the authenticated identity placed into the context
// by the JWT middleware. ok is false when the middleware did not run or
// the claims were malformed.
func currentUser(c echo.Context) (id, role string, ok bool) {
	id, _ = c.Get("user_id").(string)
	role, _ = c.Get("role").(string)
	return id, role, id != ""
}

// userDTO is the outward shape of a user record. The stored password never
// leaves the server.
type userDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	StudentID  string `json:"studentId"`
	Department string `json:"department"`
	Mobile     string `json:"mobile"`
	IsBlocked  bool   `json:"isBlocked"`
	CreatedAt  string `json:"createdAt"`
}

func toUserDTO(u model.User) userDTO {
	return userDTO{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		StudentID:  u.StudentID,
		Department: u.Department,
		Mobile:     u.Mobile,
		IsBlocked:  u.IsBlocked,
		CreatedAt:  u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// Package auth implements account access: login, registration and the
// blocked-account gate.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/iliyamo/library-seat-reservation/internal/model"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountBlocked is distinct from ErrInvalidCredentials so the UI
	// can tell a blocked student why the login failed.
	ErrAccountBlocked = errors.New("account blocked")
	// ErrEmailExists rejects a registration for an address already taken.
	ErrEmailExists = errors.New("email already exists")
	// ErrUserNotFound is returned by SetBlocked for an unknown id.
	ErrUserNotFound = errors.New("user not found")
)

// Store is the slice of the persistence layer the controller needs.
type Store interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, u model.User) error
	UpdateUser(ctx context.Context, u model.User) error
}

// Controller authenticates and registers users against the store.
type Controller struct {
	store    Store
	validate *validator.Validate
}

func NewController(s Store) *Controller {
	return &Controller{store: s, validate: validator.New()}
}

// RegisterInput is the validated shape of a self-registration. Mobile
// must be exactly ten digits; the password floor is four characters.
type RegisterInput struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=4"`
	StudentID  string `json:"studentId" validate:"required"`
	Department string `json:"department" validate:"required"`
	Mobile     string `json:"mobile" validate:"required,len=10,numeric"`
}

// Login scans the user collection for an exact email+password match.
// Passwords are compared in plaintext, the documented simplification of
// this system; not acceptable for a production deployment. A blocked
// account with correct credentials fails with ErrAccountBlocked, never
// with ErrInvalidCredentials. The returned record is the full stored
// user, password included.
func (c *Controller) Login(ctx context.Context, email, password string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	users, err := c.store.ListUsers(ctx)
	if err != nil {
		return model.User{}, err
	}
	for _, u := range users {
		if strings.ToLower(u.Email) == email && u.Password == password {
			if u.IsBlocked {
				return model.User{}, ErrAccountBlocked
			}
			return u, nil
		}
	}
	return model.User{}, ErrInvalidCredentials
}

// Register validates the input, rejects duplicate emails without touching
// the collection, and persists a new STUDENT account.
func (c *Controller) Register(ctx context.Context, in RegisterInput) (model.User, error) {
	if err := c.validate.Struct(in); err != nil {
		return model.User{}, err
	}
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	users, err := c.store.ListUsers(ctx)
	if err != nil {
		return model.User{}, err
	}
	for _, u := range users {
		if strings.ToLower(u.Email) == in.Email {
			return model.User{}, ErrEmailExists
		}
	}
	u := model.User{
		ID:         uuid.NewString(),
		Name:       in.Name,
		Email:      in.Email,
		Password:   in.Password,
		Role:       model.RoleStudent,
		StudentID:  in.StudentID,
		Department: in.Department,
		Mobile:     in.Mobile,
		IsBlocked:  false,
		CreatedAt:  time.Now().UTC(),
	}
	if err := c.store.CreateUser(ctx, u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// SetBlocked toggles a student's blocked flag. ADMIN accounts are never
// toggled; the call is a no-op returning the unchanged record.
func (c *Controller) SetBlocked(ctx context.Context, userID string, blocked bool) (model.User, error) {
	users, err := c.store.ListUsers(ctx)
	if err != nil {
		return model.User{}, err
	}
	for _, u := range users {
		if u.ID == userID {
			if u.Role == model.RoleAdmin {
				return u, nil
			}
			u.IsBlocked = blocked
			if err := c.store.UpdateUser(ctx, u); err != nil {
				return model.User{}, err
			}
			return u, nil
		}
	}
	return model.User{}, ErrUserNotFound
}

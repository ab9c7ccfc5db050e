package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/library-seat-reservation/internal/auth"
	"github.com/iliyamo/library-seat-reservation/internal/session"
	"github.com/iliyamo/library-seat-reservation/internal/store"
)

// AuthHandler serves registration, login and the current-user endpoints.
type AuthHandler struct {
	Auth     *auth.Controller
	Sessions *session.Holder
	Store    store.Store
}

func NewAuthHandler(a *auth.Controller, s *session.Holder, st store.Store) *AuthHandler {
	return &AuthHandler{Auth: a, Sessions: s, Store: st}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /v1/auth/register. New accounts are always
// students; a taken email yields 409 without touching the collection.
func (h *AuthHandler) Register(c echo.Context) error {
	var in auth.RegisterInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	u, err := h.Auth.Register(ctx, in)
	if err != nil {
		var verr validator.ValidationErrors
		switch {
		case errors.As(err, &verr):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": verr.Error()})
		case errors.Is(err, auth.ErrEmailExists):
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to register"})
		}
	}
	return c.JSON(http.StatusCreated, toUserDTO(u))
}

// Login handles POST /v1/auth/login. A blocked account with correct
// credentials gets 403, never the generic 401, so the client can show the
// student why they are locked out.
func (h *AuthHandler) Login(c echo.Context) error {
	var in loginRequest
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	u, err := h.Auth.Login(ctx, in.Email, in.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrAccountBlocked):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "account blocked"})
		case errors.Is(err, auth.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to login"})
		}
	}
	s, err := h.Sessions.Open(ctx, u)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to open session"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"token": s.Token,
		"user":  toUserDTO(u),
	})
}

// Me handles GET /v1/me and returns the authenticated user's record.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, _, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	users, err := h.Store.ListUsers(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load user"})
	}
	for _, u := range users {
		if u.ID == userID {
			return c.JSON(http.StatusOK, toUserDTO(u))
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
}

// Logout handles POST /v1/auth/logout and forgets the current session.
// The JWT itself stays valid until expiry; only the persisted session
// record is cleared.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	if err := h.Sessions.Clear(ctx); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to logout"})
	}
	return c.NoContent(http.StatusNoContent)
}

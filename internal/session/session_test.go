package session

import (
	"context"
	"testing"

	"github.com/iliyamo/library-seat-reservation/internal/model"
	"github.com/iliyamo/library-seat-reservation/internal/store"
)

func newHolder() *Holder {
	return NewHolder(store.NewMemoryKV(), "test-secret", 30)
}

func TestOpenCurrentClear(t *testing.T) {
	h := newHolder()
	ctx := context.Background()

	if _, ok, err := h.Current(ctx); err != nil || ok {
		t.Fatalf("fresh holder: ok = %v, err = %v; want no session", ok, err)
	}

	u := model.User{ID: "u1", Email: "student@library.local", Role: model.RoleStudent}
	s, err := h.Open(ctx, u)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.Token == "" || s.UserID != "u1" || s.Role != model.RoleStudent {
		t.Errorf("session = %+v", s)
	}

	got, ok, err := h.Current(ctx)
	if err != nil || !ok {
		t.Fatalf("current: ok = %v, err = %v", ok, err)
	}
	if got.UserID != s.UserID || got.Token != s.Token {
		t.Errorf("persisted session = %+v, want %+v", got, s)
	}

	if err := h.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := h.Current(ctx); ok {
		t.Error("session survived Clear")
	}
}

func TestOpenReplacesPreviousSession(t *testing.T) {
	h := newHolder()
	ctx := context.Background()

	if _, err := h.Open(ctx, model.User{ID: "u1", Role: model.RoleStudent}); err != nil {
		t.Fatal(err)
	}
	if _, err := h.Open(ctx, model.User{ID: "u2", Role: model.RoleAdmin}); err != nil {
		t.Fatal(err)
	}

	s, ok, err := h.Current(ctx)
	if err != nil || !ok {
		t.Fatalf("current: ok = %v, err = %v", ok, err)
	}
	if s.UserID != "u2" || s.Role != model.RoleAdmin {
		t.Errorf("session = %+v, want the second login", s)
	}
}

// Package session tracks the single currently authenticated identity for
// this process. The record is persisted as the current-session blob in
// the same KV area as the data collections so a restart resumes with the
// same identity. No network is involved.
package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/iliyamo/library-seat-reservation/internal/model"
	"github.com/iliyamo/library-seat-reservation/internal/store"
	"github.com/iliyamo/library-seat-reservation/internal/utils"
)

// Holder issues access tokens and persists the current session.
type Holder struct {
	kv     store.KV
	secret string
	ttlMin int
}

func NewHolder(kv store.KV, secret string, ttlMin int) *Holder {
	return &Holder{kv: kv, secret: secret, ttlMin: ttlMin}
}

// Open signs an access token for the user, records the session as the
// current one and returns it.
func (h *Holder) Open(ctx context.Context, u model.User) (model.Session, error) {
	tok, err := utils.NewAccessToken(h.secret, u.ID, string(u.Role), h.ttlMin)
	if err != nil {
		return model.Session{}, err
	}
	s := model.Session{
		UserID:   u.ID,
		Email:    u.Email,
		Role:     u.Role,
		Token:    tok.Token,
		IssuedAt: time.Now().UTC(),
	}
	b, err := json.Marshal(s)
	if err != nil {
		return model.Session{}, err
	}
	if err := h.kv.Set(ctx, store.KeySession, b); err != nil {
		return model.Session{}, err
	}
	return s, nil
}

// Current returns the persisted session, if any.
func (h *Holder) Current(ctx context.Context) (model.Session, bool, error) {
	b, err := h.kv.Get(ctx, store.KeySession)
	if err != nil {
		return model.Session{}, false, err
	}
	if len(b) == 0 {
		return model.Session{}, false, nil
	}
	var s model.Session
	if err := json.Unmarshal(b, &s); err != nil {
		return model.Session{}, false, err
	}
	return s, true, nil
}

// Clear forgets the current session.
func (h *Holder) Clear(ctx context.Context) error {
	return h.kv.Delete(ctx, store.KeySession)
}

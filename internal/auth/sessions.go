// Package auth owns session issuance, resolution and revocation, plus
// the session cookie contract with the browser.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/kynarochlani2006/storefront-api/internal/models"
	"github.com/kynarochlani2006/storefront-api/internal/store"
)

// SessionTTL is the fixed lifetime of every session; expires_at is
// always created_at + SessionTTL.
const SessionTTL = 7 * 24 * time.Hour

// Sessions issues and resolves opaque session tokens backed by the
// session store.
type Sessions struct {
	store store.SessionStore
}

// NewSessions creates the session service.
func NewSessions(s store.SessionStore) *Sessions {
	return &Sessions{store: s}
}

// Create persists a new session row for the user and returns it. Each
// call makes a fresh token; concurrent sessions per user are unlimited.
func (s *Sessions) Create(ctx context.Context, userID string) (*models.Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sess := &models.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: now.Add(SessionTTL),
		CreatedAt: now,
	}
	if err := s.store.CreateSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Resolve returns the user id behind the token, or "" when the token is
// unknown or expired. Only infrastructure failures surface as errors; a
// dead token is the unauthenticated outcome, not a fault. Expired rows
// are left in place (lazy expiry).
func (s *Sessions) Resolve(ctx context.Context, token string) (string, error) {
	sess, err := s.store.SessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	if !sess.ExpiresAt.After(time.Now()) {
		return "", nil
	}
	return sess.UserID, nil
}

// Revoke deletes every session row matching the token. Revoking a token
// that no longer exists is a no-op.
func (s *Sessions) Revoke(ctx context.Context, token string) error {
	return s.store.DeleteSessionsByToken(ctx, token)
}

// generateToken returns 32 bytes of crypto/rand as base64url.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("auth: failed to generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

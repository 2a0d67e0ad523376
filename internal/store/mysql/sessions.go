package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kynarochlani2006/storefront-api/internal/models"
	"github.com/kynarochlani2006/storefront-api/internal/store"
)

func (s *Store) CreateSession(ctx context.Context, sess *models.Session) error {
	query := `
		INSERT INTO sessions (token, user_id, expires_at, created_at)
		VALUES (?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query, sess.Token, sess.UserID, sess.ExpiresAt, sess.CreatedAt)
	return err
}

// SessionByToken returns the row even when it is past expires_at.
// Expired rows are never swept here; the session service ignores them
// at resolution time.
func (s *Store) SessionByToken(ctx context.Context, token string) (*models.Session, error) {
	var sess models.Session
	err := s.db.QueryRowContext(ctx, `
		SELECT token, user_id, expires_at, created_at
		FROM sessions WHERE token = ?`, token).
		Scan(&sess.Token, &sess.UserID, &sess.ExpiresAt, &sess.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &sess, nil
}

func (s *Store) DeleteSessionsByToken(ctx context.Context, token string) error {
	// Deleting zero rows is fine; logout is idempotent.
	_, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE token = ?", token)
	return err
}

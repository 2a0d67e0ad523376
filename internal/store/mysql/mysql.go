// Package mysql implements the store contract on top of MySQL via
// database/sql. Uniqueness invariants (one cart per owner, one item row
// per product) are enforced by UNIQUE KEYs, with upserts resolving to
// the existing row on conflict.
package mysql

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/kynarochlani2006/storefront-api/internal/store"
)

// MySQL error 1062: duplicate entry for a unique key.
const erDupEntry = 1062

// Store implements store.Store against a MySQL connection pool.
type Store struct {
	db *sql.DB
}

var _ store.Store = (*Store)(nil)

// New wraps an open connection pool.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// isDuplicate reports whether err is a unique-key violation.
func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == erDupEntry
}

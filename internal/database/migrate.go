package database

import (
	"context"
	"database/sql"
)

// The uniqueness constraints below carry real invariants: one user per
// email, one cart per owning identity, one item row per (cart, product)
// and per (owner, product). Upserts rely on them to stay race-free.
// MySQL unique indexes allow repeated NULLs, so the user_id and
// guest_id keys on carts only bite for the side that is actually set.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id CHAR(36) NOT NULL,
		email VARCHAR(255) NOT NULL,
		name VARCHAR(255) NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at DATETIME(3) NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY users_email_unique (email)
	)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		token VARCHAR(64) NOT NULL,
		user_id CHAR(36) NOT NULL,
		expires_at DATETIME(3) NOT NULL,
		created_at DATETIME(3) NOT NULL,
		PRIMARY KEY (token),
		KEY sessions_user_id_idx (user_id)
	)`,

	`CREATE TABLE IF NOT EXISTS products (
		id CHAR(36) NOT NULL,
		slug VARCHAR(255) NOT NULL,
		name VARCHAR(255) NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		old_price DECIMAL(10,2) NULL,
		image_url VARCHAR(512) NOT NULL,
		rating DOUBLE NOT NULL DEFAULT 0,
		reviews INT NOT NULL DEFAULT 0,
		tag VARCHAR(64) NULL,
		category VARCHAR(64) NULL,
		created_at DATETIME(3) NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY products_slug_unique (slug)
	)`,

	`CREATE TABLE IF NOT EXISTS carts (
		id CHAR(36) NOT NULL,
		user_id CHAR(36) NULL,
		guest_id VARCHAR(64) NULL,
		created_at DATETIME(3) NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY carts_user_id_unique (user_id),
		UNIQUE KEY carts_guest_id_unique (guest_id)
	)`,

	`CREATE TABLE IF NOT EXISTS cart_items (
		id CHAR(36) NOT NULL,
		cart_id CHAR(36) NOT NULL,
		product_id CHAR(36) NOT NULL,
		quantity INT NOT NULL,
		created_at DATETIME(3) NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY cart_items_cart_product_unique (cart_id, product_id)
	)`,

	`CREATE TABLE IF NOT EXISTS wishlist_items (
		id CHAR(36) NOT NULL,
		user_id CHAR(36) NULL,
		guest_id VARCHAR(64) NULL,
		product_id CHAR(36) NOT NULL,
		created_at DATETIME(3) NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY wishlist_user_product_unique (user_id, product_id),
		UNIQUE KEY wishlist_guest_product_unique (guest_id, product_id)
	)`,
}

// Migrate creates the schema if it does not exist yet. Statements are
// executed one at a time because the driver rejects multi-statement
// batches unless multiStatements is enabled in the DSN.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

package mysql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/kynarochlani2006/storefront-api/internal/models"
	"github.com/kynarochlani2006/storefront-api/internal/store"
)

// ownerClause returns the WHERE fragment and argument addressing a cart
// or wishlist row by its owning identity.
func ownerClause(owner store.Owner) (string, any) {
	if owner.UserID != "" {
		return "user_id = ?", owner.UserID
	}
	return "guest_id = ?", owner.GuestID
}

func (s *Store) CartByOwner(ctx context.Context, owner store.Owner) (*models.Cart, error) {
	if owner.IsZero() {
		return nil, store.ErrNoOwner
	}

	clause, arg := ownerClause(owner)
	var cart models.Cart
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, guest_id, created_at
		FROM carts WHERE `+clause, arg).
		Scan(&cart.ID, &cart.UserID, &cart.GuestID, &cart.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}

	items, err := s.cartItems(ctx, cart.ID)
	if err != nil {
		return nil, err
	}
	cart.Items = items
	return &cart, nil
}

// UpsertCart is the race-tolerant find-or-create step. The INSERT is a
// no-op when another request already created the row; the UNIQUE KEY on
// the owner column resolves the race, so two concurrent first adds can
// never produce two carts.
func (s *Store) UpsertCart(ctx context.Context, owner store.Owner) (*models.Cart, error) {
	if owner.IsZero() {
		return nil, store.ErrNoOwner
	}

	var userID, guestID *string
	if owner.UserID != "" {
		userID = &owner.UserID
	} else {
		guestID = &owner.GuestID
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO carts (id, user_id, guest_id, created_at)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE id = id`,
		uuid.NewString(), userID, guestID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	clause, arg := ownerClause(owner)
	var cart models.Cart
	err = s.db.QueryRowContext(ctx, `
		SELECT id, user_id, guest_id, created_at
		FROM carts WHERE `+clause, arg).
		Scan(&cart.ID, &cart.UserID, &cart.GuestID, &cart.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *Store) UpsertCartItem(ctx context.Context, cartID, productID string, quantity int) (*models.CartItem, error) {
	// Insert or increment in one statement; the UNIQUE KEY on
	// (cart_id, product_id) keeps this to a single row.
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cart_items (id, cart_id, product_id, quantity, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE quantity = quantity + VALUES(quantity)`,
		uuid.NewString(), cartID, productID, quantity, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	var item models.CartItem
	err = s.db.QueryRowContext(ctx, `
		SELECT id, cart_id, product_id, quantity, created_at
		FROM cart_items WHERE cart_id = ? AND product_id = ?`,
		cartID, productID).
		Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) DeleteCartItems(ctx context.Context, cartID, productID string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM cart_items WHERE cart_id = ? AND product_id = ?",
		cartID, productID)
	return err
}

// cartItems loads the items of a cart with product details joined in.
func (s *Store) cartItems(ctx context.Context, cartID string) ([]models.CartItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity, ci.created_at,
		       p.id, p.slug, p.name, p.price, p.old_price, p.image_url, p.rating, p.reviews, p.tag, p.category, p.created_at
		FROM cart_items ci
		JOIN products p ON ci.product_id = p.id
		WHERE ci.cart_id = ?
		ORDER BY ci.created_at ASC`, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.CartItem{}
	for rows.Next() {
		var item models.CartItem
		var p models.Product
		if err := rows.Scan(
			&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.CreatedAt,
			&p.ID, &p.Slug, &p.Name, &p.Price, &p.OldPrice, &p.ImageURL,
			&p.Rating, &p.Reviews, &p.Tag, &p.Category, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		item.Product = &p
		items = append(items, item)
	}
	return items, rows.Err()
}

package mysql

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kynarochlani2006/storefront-api/internal/models"
	"github.com/kynarochlani2006/storefront-api/internal/store"
)

func (s *Store) WishlistByOwner(ctx context.Context, owner store.Owner) ([]models.WishlistItem, error) {
	if owner.IsZero() {
		return nil, store.ErrNoOwner
	}

	clause, arg := ownerClause(owner)
	rows, err := s.db.QueryContext(ctx, `
		SELECT wi.id, wi.user_id, wi.guest_id, wi.product_id, wi.created_at,
		       p.id, p.slug, p.name, p.price, p.old_price, p.image_url, p.rating, p.reviews, p.tag, p.category, p.created_at
		FROM wishlist_items wi
		JOIN products p ON wi.product_id = p.id
		WHERE wi.`+clause+`
		ORDER BY wi.created_at ASC`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.WishlistItem{}
	for rows.Next() {
		var item models.WishlistItem
		var p models.Product
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.GuestID, &item.ProductID, &item.CreatedAt,
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

// ToggleWishlistItem deletes the row when present, inserts it when not.
// Stored state decides the outcome, never what the client assumed it to
// be. Concurrent toggles on the same pair land in arrival order.
func (s *Store) ToggleWishlistItem(ctx context.Context, owner store.Owner, productID string) (*models.WishlistItem, bool, error) {
	if owner.IsZero() {
		return nil, false, store.ErrNoOwner
	}

	clause, arg := ownerClause(owner)
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM wishlist_items WHERE "+clause+" AND product_id = ?",
		arg, productID)
	if err != nil {
		return nil, false, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, false, err
	} else if n > 0 {
		return nil, true, nil
	}

	item := models.WishlistItem{
		ID:        uuid.NewString(),
		ProductID: productID,
		CreatedAt: time.Now().UTC(),
	}
	if owner.UserID != "" {
		item.UserID = &owner.UserID
	} else {
		item.GuestID = &owner.GuestID
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO wishlist_items (id, user_id, guest_id, product_id, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		item.ID, item.UserID, item.GuestID, item.ProductID, item.CreatedAt)
	if err != nil {
		if isDuplicate(err) {
			// Lost a race against a concurrent toggle that re-added the
			// item first. Last write wins: ours becomes the removal.
			_, derr := s.db.ExecContext(ctx,
				"DELETE FROM wishlist_items WHERE "+clause+" AND product_id = ?",
				arg, productID)
			if derr != nil {
				return nil, false, derr
			}
			return nil, true, nil
		}
		return nil, false, err
	}
	return &item, false, nil
}

package models

import "time"

// WishlistItem is the model for the 'wishlist_items' table. Presence is
// binary (no quantity); unique per owner + product so toggling is a
// matter of delete-if-present, insert otherwise.
type WishlistItem struct {
	ID        string    `json:"id" db:"id"`
	UserID    *string   `json:"userId,omitempty" db:"user_id"`
	GuestID   *string   `json:"guestId,omitempty" db:"guest_id"`
	ProductID string    `json:"productId" db:"product_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Joined product details (populated on wishlist reads).
	Product *Product `json:"product,omitempty" db:"-"`
}

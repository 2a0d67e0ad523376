package models

import "time"

// Cart is the model for the 'carts' table. Exactly one of UserID or
// GuestID is set for the lifetime of the row; each is covered by its
// own UNIQUE KEY so an identity can never own two carts.
type Cart struct {
	ID        string    `json:"id" db:"id"`
	UserID    *string   `json:"userId,omitempty" db:"user_id"`
	GuestID   *string   `json:"guestId,omitempty" db:"guest_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Joined rows, populated by reads (not a DB column).
	Items []CartItem `json:"items" db:"-"`
}

// CartItem is the model for the 'cart_items' table. Unique per
// (cart_id, product_id): re-adding a product increments Quantity
// instead of inserting a second row.
type CartItem struct {
	ID        string    `json:"id" db:"id"`
	CartID    string    `json:"cartId" db:"cart_id"`
	ProductID string    `json:"productId" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Joined product details (populated on cart reads).
	Product *Product `json:"product,omitempty" db:"-"`
}

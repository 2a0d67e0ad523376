package models

import "time"

// Product is the model for the 'products' table. Catalog rows are
// read-mostly reference data; cart and wishlist rows point at them by
// id only. Pointer fields keep optional columns out of the JSON when
// unset.
type Product struct {
	ID       string   `json:"id" db:"id"`
	Slug     string   `json:"slug" db:"slug"`
	Name     string   `json:"name" db:"name"`
	Price    float64  `json:"price" db:"price"`
	OldPrice *float64 `json:"oldPrice,omitempty" db:"old_price"`
	ImageURL string   `json:"imageUrl" db:"image_url"`
	Rating   float64  `json:"rating" db:"rating"`
	Reviews  int      `json:"reviews" db:"reviews"`
	Tag      *string  `json:"tag,omitempty" db:"tag"`
	Category *string  `json:"category,omitempty" db:"category"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

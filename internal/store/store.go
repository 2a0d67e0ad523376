// Package store defines the data-access contract the handlers and the
// session service are written against. Implementations live in the
// mysql and memory subpackages.
package store

import (
	"context"
	"errors"

	"github.com/kynarochlani2006/storefront-api/internal/models"
)

var (
	// ErrNotFound indicates the requested row does not exist. Callers
	// must treat this as a domain outcome, not an infrastructure
	// failure.
	ErrNotFound = errors.New("store: not found")
	// ErrEmailTaken indicates a user row already exists for the email.
	ErrEmailTaken = errors.New("store: email already in use")
	// ErrNoOwner indicates an Owner with neither side set was passed to
	// an operation that requires one.
	ErrNoOwner = errors.New("store: owner identity missing")
)

// Owner addresses cart and wishlist rows by their owning identity.
// At most one of UserID/GuestID is set; both empty means anonymous.
type Owner struct {
	UserID  string
	GuestID string
}

// IsZero reports whether the owner carries no identity at all.
func (o Owner) IsZero() bool {
	return o.UserID == "" && o.GuestID == ""
}

type UserStore interface {
	// CreateUser inserts the user. Returns ErrEmailTaken when the email
	// is already registered.
	CreateUser(ctx context.Context, u *models.User) error
	// UserByEmail returns ErrNotFound for unknown emails.
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// UserByID returns ErrNotFound for unknown ids.
	UserByID(ctx context.Context, id string) (*models.User, error)
}

type SessionStore interface {
	CreateSession(ctx context.Context, s *models.Session) error
	// SessionByToken returns the row whether or not it is expired;
	// expiry is the caller's concern. Returns ErrNotFound when no row
	// matches.
	SessionByToken(ctx context.Context, token string) (*models.Session, error)
	// DeleteSessionsByToken removes every row matching the token.
	// Deleting zero rows is not an error.
	DeleteSessionsByToken(ctx context.Context, token string) error
}

type ProductStore interface {
	// ListProducts returns the catalog ordered by created_at ascending.
	ListProducts(ctx context.Context) ([]models.Product, error)
	ProductByID(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	CountProducts(ctx context.Context) (int, error)
}

type CartStore interface {
	// CartByOwner returns the owner's cart with items and product
	// details joined in. Returns ErrNotFound when no cart exists yet;
	// reading never creates one.
	CartByOwner(ctx context.Context, owner Owner) (*models.Cart, error)
	// UpsertCart finds or creates the owner's cart as one atomic
	// insert-or-return-existing step. Concurrent calls for the same
	// owner must resolve to a single row; the UNIQUE KEY on the owner
	// column is the arbiter, never an exists-check in application code.
	UpsertCart(ctx context.Context, owner Owner) (*models.Cart, error)
	// UpsertCartItem adds quantity to the (cartID, productID) row,
	// creating it when absent, and returns the resulting row.
	UpsertCartItem(ctx context.Context, cartID, productID string, quantity int) (*models.CartItem, error)
	// DeleteCartItems removes every item row matching (cartID,
	// productID). Removing zero rows is not an error.
	DeleteCartItems(ctx context.Context, cartID, productID string) error
}

type WishlistStore interface {
	// WishlistByOwner returns the owner's items with product details
	// joined in, oldest first. Never ErrNotFound; an empty list is the
	// empty wishlist.
	WishlistByOwner(ctx context.Context, owner Owner) ([]models.WishlistItem, error)
	// ToggleWishlistItem removes the (owner, productID) item when it
	// exists (returns nil, true) or creates it (returns the item,
	// false). Concurrent toggles race to a last-write-wins outcome.
	ToggleWishlistItem(ctx context.Context, owner Owner, productID string) (*models.WishlistItem, bool, error)
}

// Store bundles every contract a full backend needs.
type Store interface {
	UserStore
	SessionStore
	ProductStore
	CartStore
	WishlistStore
}

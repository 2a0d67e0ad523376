// Package memory implements the store contract in process memory. It
// backs the test suite and the zero-dependency dev mode (DB_DSN unset).
// A single mutex serializes every operation, which makes the same
// uniqueness guarantees hold that the MySQL schema enforces with
// UNIQUE KEYs.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kynarochlani2006/storefront-api/internal/models"
	"github.com/kynarochlani2006/storefront-api/internal/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu sync.Mutex

	users    map[string]*models.User    // by id
	sessions map[string]*models.Session // by token
	products []models.Product
	carts    map[string]*models.Cart // by id, without items
	items    []models.CartItem
	wishlist []models.WishlistItem
}

var _ store.Store = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		users:    make(map[string]*models.User),
		sessions: make(map[string]*models.Session),
		carts:    make(map[string]*models.Cart),
	}
}

// --- UserStore ---

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return store.ErrEmailTaken
		}
	}
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) UserByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// --- SessionStore ---

func (s *Store) CreateSession(ctx context.Context, sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *sess
	s.sessions[sess.Token] = &cp
	return nil
}

func (s *Store) SessionByToken(ctx context.Context, token string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, store.ErrNotFound
	}
	// Expired rows are returned as-is; expiry is the caller's problem.
	cp := *sess
	return &cp, nil
}

func (s *Store) DeleteSessionsByToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}

// --- ProductStore ---

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]models.Product, len(s.products))
	copy(products, s.products)
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.Before(products[j].CreatedAt)
	})
	return products, nil
}

func (s *Store) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.productByID(id)
	if p == nil {
		return nil, store.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *Store) CreateProduct(ctx context.Context, p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append(s.products, *p)
	return nil
}

func (s *Store) CountProducts(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.products), nil
}

// productByID must be called with the mutex held.
func (s *Store) productByID(id string) *models.Product {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i]
		}
	}
	return nil
}

// --- CartStore ---

func (s *Store) CartByOwner(ctx context.Context, owner store.Owner) (*models.Cart, error) {
	if owner.IsZero() {
		return nil, store.ErrNoOwner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartByOwner(owner)
	if cart == nil {
		return nil, store.ErrNotFound
	}

	cp := *cart
	cp.Items = s.itemsOf(cart.ID)
	return &cp, nil
}

func (s *Store) UpsertCart(ctx context.Context, owner store.Owner) (*models.Cart, error) {
	if owner.IsZero() {
		return nil, store.ErrNoOwner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Find-or-create runs under the mutex, so concurrent first adds for
	// the same owner collapse onto one cart row, matching the UNIQUE KEY
	// arbitration in the MySQL store.
	if cart := s.cartByOwner(owner); cart != nil {
		cp := *cart
		return &cp, nil
	}

	cart := &models.Cart{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
	if owner.UserID != "" {
		uid := owner.UserID
		cart.UserID = &uid
	} else {
		gid := owner.GuestID
		cart.GuestID = &gid
	}
	s.carts[cart.ID] = cart

	cp := *cart
	return &cp, nil
}

func (s *Store) UpsertCartItem(ctx context.Context, cartID, productID string, quantity int) (*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		item := &s.items[i]
		if item.CartID == cartID && item.ProductID == productID {
			item.Quantity += quantity
			cp := *item
			return &cp, nil
		}
	}

	item := models.CartItem{
		ID:        uuid.NewString(),
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now().UTC(),
	}
	s.items = append(s.items, item)
	return &item, nil
}

func (s *Store) DeleteCartItems(ctx context.Context, cartID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.CartID != cartID || item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return nil
}

// cartByOwner must be called with the mutex held.
func (s *Store) cartByOwner(owner store.Owner) *models.Cart {
	for _, cart := range s.carts {
		if owner.UserID != "" && cart.UserID != nil && *cart.UserID == owner.UserID {
			return cart
		}
		if owner.GuestID != "" && cart.GuestID != nil && *cart.GuestID == owner.GuestID {
			return cart
		}
	}
	return nil
}

// itemsOf must be called with the mutex held.
func (s *Store) itemsOf(cartID string) []models.CartItem {
	items := []models.CartItem{}
	for _, item := range s.items {
		if item.CartID != cartID {
			continue
		}
		if p := s.productByID(item.ProductID); p != nil {
			cp := *p
			item.Product = &cp
		}
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items
}

// --- WishlistStore ---

func (s *Store) WishlistByOwner(ctx context.Context, owner store.Owner) ([]models.WishlistItem, error) {
	if owner.IsZero() {
		return nil, store.ErrNoOwner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := []models.WishlistItem{}
	for _, item := range s.wishlist {
		if !wishlistOwned(item, owner) {
			continue
		}
		if p := s.productByID(item.ProductID); p != nil {
			cp := *p
			item.Product = &cp
		}
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) ToggleWishlistItem(ctx context.Context, owner store.Owner, productID string) (*models.WishlistItem, bool, error) {
	if owner.IsZero() {
		return nil, false, store.ErrNoOwner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.wishlist {
		if wishlistOwned(item, owner) && item.ProductID == productID {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			return nil, true, nil
		}
	}

	item := models.WishlistItem{
		ID:        uuid.NewString(),
		ProductID: productID,
		CreatedAt: time.Now().UTC(),
	}
	if owner.UserID != "" {
		uid := owner.UserID
		item.UserID = &uid
	} else {
		gid := owner.GuestID
		item.GuestID = &gid
	}
	s.wishlist = append(s.wishlist, item)

	cp := item
	return &cp, false, nil
}

func wishlistOwned(item models.WishlistItem, owner store.Owner) bool {
	if owner.UserID != "" {
		return item.UserID != nil && *item.UserID == owner.UserID
	}
	return item.GuestID != nil && *item.GuestID == owner.GuestID
}

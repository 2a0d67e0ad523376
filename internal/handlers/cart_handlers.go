package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kynarochlani2006/storefront-api/internal/store"
)

// GetCart is the handler for GET /cart. Reading never creates a cart;
// an identity that has not added anything yet gets {cart: null}.
func (h *Handlers) GetCart(c *gin.Context) {
	owner := ownerFrom(c)
	if owner.IsZero() {
		c.JSON(http.StatusOK, gin.H{"cart": nil})
		return
	}

	cart, err := h.Store.CartByOwner(c.Request.Context(), owner)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"cart": nil})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

// AddToCartInput defines the JSON for adding an item to the cart.
// Quantity defaults to 1 when omitted.
type AddToCartInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"omitempty,gte=1"`
}

// AddToCart is the handler for POST /cart.
func (h *Handlers) AddToCart(c *gin.Context) {
	// 1. --- Require an Owner ---
	// No session and no guest header means there is no identity to hang
	// a cart on.
	owner := ownerFrom(c)
	if owner.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Guest ID missing"})
		return
	}

	// 2. --- Bind & Validate JSON ---
	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": err.Error()})
		return
	}
	quantity := 1
	if input.Quantity != nil {
		quantity = *input.Quantity
	}

	// 3. --- Find-or-Create the Cart (atomic upsert) ---
	cart, err := h.Store.UpsertCart(c.Request.Context(), owner)
	if err != nil {
		serverError(c, err)
		return
	}

	// 4. --- Insert or Increment the Item ---
	item, err := h.Store.UpsertCartItem(c.Request.Context(), cart.ID, input.ProductID, quantity)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// RemoveFromCartInput defines the JSON for removing a product from the
// cart.
type RemoveFromCartInput struct {
	ProductID string `json:"productId" binding:"required"`
}

// RemoveFromCart is the handler for DELETE /cart. Removing from a cart
// that does not exist is a no-op reported as removed:false; once a cart
// exists the delete always reports removed:true, whether or not a row
// matched.
func (h *Handlers) RemoveFromCart(c *gin.Context) {
	var input RemoveFromCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": err.Error()})
		return
	}

	owner := ownerFrom(c)
	if owner.IsZero() {
		c.JSON(http.StatusOK, gin.H{"removed": false})
		return
	}

	cart, err := h.Store.CartByOwner(c.Request.Context(), owner)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"removed": false})
			return
		}
		serverError(c, err)
		return
	}

	if err := h.Store.DeleteCartItems(c.Request.Context(), cart.ID, input.ProductID); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": true})
}

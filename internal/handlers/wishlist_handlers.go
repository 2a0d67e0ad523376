package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kynarochlani2006/storefront-api/internal/models"
)

// GetWishlist is the handler for GET /wishlist. Anonymous callers and
// owners with nothing saved both get an empty list, never an error.
func (h *Handlers) GetWishlist(c *gin.Context) {
	owner := ownerFrom(c)
	if owner.IsZero() {
		c.JSON(http.StatusOK, gin.H{"items": []models.WishlistItem{}})
		return
	}

	items, err := h.Store.WishlistByOwner(c.Request.Context(), owner)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// ToggleWishlistInput defines the JSON for toggling wishlist
// membership.
type ToggleWishlistInput struct {
	ProductID string `json:"productId" binding:"required"`
}

// ToggleWishlist is the handler for POST /wishlist. One endpoint serves
// add and remove; stored state decides the outcome, and the response
// states the resulting membership explicitly.
func (h *Handlers) ToggleWishlist(c *gin.Context) {
	var input ToggleWishlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": err.Error()})
		return
	}

	owner := ownerFrom(c)
	if owner.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Guest ID missing"})
		return
	}

	item, removed, err := h.Store.ToggleWishlistItem(c.Request.Context(), owner, input.ProductID)
	if err != nil {
		serverError(c, err)
		return
	}

	if removed {
		c.JSON(http.StatusOK, gin.H{"removed": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

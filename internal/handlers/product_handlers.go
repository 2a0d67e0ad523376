package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListProducts is the handler for GET /products. The catalog is
// returned oldest first, matching insertion order of the seed.
func (h *Handlers) ListProducts(c *gin.Context) {
	products, err := h.Store.ListProducts(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kynarochlani2006/storefront-api/internal/auth"
	"github.com/kynarochlani2006/storefront-api/internal/store"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Store    store.Store
	Sessions *auth.Sessions
}

// ownerFrom builds the storage owner key from the identity the
// middleware resolved. At most one side is set; both empty means the
// request is anonymous.
func ownerFrom(c *gin.Context) store.Owner {
	return store.Owner{
		UserID:  c.GetString("userID"),
		GuestID: c.GetString("guestID"),
	}
}

// serverError logs the cause and answers with a generic 500. Internal
// detail never reaches the client.
func serverError(c *gin.Context, err error) {
	log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

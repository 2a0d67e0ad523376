package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kynarochlani2006/storefront-api/internal/auth"
	"github.com/kynarochlani2006/storefront-api/internal/guest"
)

// Identity resolves every request to at most one identity before any
// handler runs:
//
//  1. A valid session cookie wins and the guest header is ignored
//     entirely.
//  2. Otherwise the x-guest-id header is trusted verbatim. There is no
//     signature on it; any client can claim any guest id.
//  3. Neither: the request stays anonymous and handlers that need an
//     owner reject it themselves.
//
// Handlers read the outcome via c.GetString("userID") /
// c.GetString("guestID"); at most one is ever set.
func Identity(sessions *auth.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(auth.CookieName); err == nil && token != "" {
			userID, err := sessions.Resolve(c.Request.Context(), token)
			if err != nil {
				// Store failure, not a dead token. Fail the request.
				log.Printf("identity: session lookup failed: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			if userID != "" {
				c.Set("userID", userID)
				c.Next()
				return
			}
		}

		if guestID := c.GetHeader(guest.HeaderName); guestID != "" {
			c.Set("guestID", guestID)
		}
		c.Next()
	}
}

package routes

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/kynarochlani2006/storefront-api/internal/handlers"
	"github.com/kynarochlani2006/storefront-api/internal/middleware"
)

// CORSMiddleware tells the browser the storefront origin may call us
// with credentials. The cookie flow needs Allow-Credentials, which
// rules out a wildcard origin, and the guest identity travels in a
// custom header that must be allow-listed.
func CORSMiddleware() gin.HandlerFunc {
	origin := os.Getenv("ALLOWED_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, x-guest-id")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SetupRouter wires every endpoint. Identity resolution runs for all
// routes; the handlers themselves decide whether an owner is required.
func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(CORSMiddleware())
	router.Use(middleware.Identity(h.Sessions))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong!"})
	})

	// --- Auth Routes ---
	router.POST("/auth/signup", h.Signup)
	router.POST("/auth/login", h.Login)
	router.POST("/auth/logout", h.Logout)
	router.GET("/auth/me", h.Me)

	// --- Catalog ---
	router.GET("/products", h.ListProducts)

	// --- Cart ---
	router.GET("/cart", h.GetCart)
	router.POST("/cart", h.AddToCart)
	router.DELETE("/cart", h.RemoveFromCart)

	// --- Wishlist ---
	router.GET("/wishlist", h.GetWishlist)
	router.POST("/wishlist", h.ToggleWishlist)

	return router
}

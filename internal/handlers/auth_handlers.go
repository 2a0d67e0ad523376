package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kynarochlani2006/storefront-api/internal/auth"
	"github.com/kynarochlani2006/storefront-api/internal/models"
	"github.com/kynarochlani2006/storefront-api/internal/store"
)

// SignupInput defines the JSON for creating an account. Name is
// optional; when present it must be at least two characters.
type SignupInput struct {
	Email    string  `json:"email" binding:"required,email"`
	Name     *string `json:"name" binding:"omitempty,min=2"`
	Password string  `json:"password" binding:"required,min=8"`
}

// Signup is the handler for POST /auth/signup.
func (h *Handlers) Signup(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": err.Error()})
		return
	}

	// 2. --- Hash the Password ---
	var password models.Password
	if err := password.Set(input.Password); err != nil {
		serverError(c, err)
		return
	}

	// 3. --- Create the User ---
	// The UNIQUE KEY on email is the arbiter for duplicate signups; no
	// pre-check, so two concurrent signups cannot both win.
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: password.Hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.Store.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
			return
		}
		serverError(c, err)
		return
	}

	// 4. --- Issue the Session Cookie ---
	sess, err := h.Sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		serverError(c, err)
		return
	}
	auth.SetSessionCookie(c.Writer, sess.Token, sess.ExpiresAt)

	c.JSON(http.StatusOK, gin.H{"user": user.Public()})
}

// LoginInput defines the JSON for signing in.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Login is the handler for POST /auth/login.
func (h *Handlers) Login(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload", "details": err.Error()})
		return
	}

	// 2. --- Find User By Email ---
	// The same generic message covers unknown email and wrong password,
	// so a caller cannot probe which one failed.
	user, err := h.Store.UserByEmail(c.Request.Context(), input.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		serverError(c, err)
		return
	}

	// 3. --- Check Password ---
	password := models.Password{Hash: user.PasswordHash}
	match, err := password.Matches(input.Password)
	if err != nil {
		serverError(c, err)
		return
	}
	if !match {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	// 4. --- Issue the Session Cookie ---
	sess, err := h.Sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		serverError(c, err)
		return
	}
	auth.SetSessionCookie(c.Writer, sess.Token, sess.ExpiresAt)

	c.JSON(http.StatusOK, gin.H{"user": user.Public()})
}

// Logout is the handler for POST /auth/logout. It deletes every session
// row matching the presented token and clears the cookie. Logging out
// twice is fine.
func (h *Handlers) Logout(c *gin.Context) {
	if token, err := c.Cookie(auth.CookieName); err == nil && token != "" {
		if err := h.Sessions.Revoke(c.Request.Context(), token); err != nil {
			serverError(c, err)
			return
		}
	}
	auth.ClearSessionCookie(c.Writer)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me is the handler for GET /auth/me. An unauthenticated caller gets
// {user: null}, never a 401.
func (h *Handlers) Me(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	user, err := h.Store.UserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Session outlived the user row; report signed-out.
			c.JSON(http.StatusOK, gin.H{"user": nil})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.Public()})
}

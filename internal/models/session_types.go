package models

import "time"

// Session is the model for the 'sessions' table. The token is an opaque
// random value handed to the browser as a cookie; a session is valid
// only while ExpiresAt is in the future. Expired rows are left in place
// and ignored at resolution time.
type Session struct {
	Token     string    `json:"-" db:"token"`
	UserID    string    `json:"userId" db:"user_id"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

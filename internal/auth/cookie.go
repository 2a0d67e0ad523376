package auth

import (
	"net/http"
	"os"
	"time"
)

// CookieName is the session cookie issued at signup and login.
const CookieName = "session_token"

// SetSessionCookie issues the session cookie: HTTP-only, SameSite=Lax,
// site-wide path, expiring with the session row. Secure is set only in
// production so local development over plain HTTP keeps working.
func SetSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   secureCookies(),
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie removes the session cookie from the client.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secureCookies(),
		SameSite: http.SameSiteLaxMode,
	})
}

func secureCookies() bool {
	return os.Getenv("APP_ENV") == "production"
}

package auth

import (
	"net/http"

	"github.com/examtrack/examtrack-api/internal/config"
)

const CookieName = "session_token"

// SetSessionCookie installs the session token for the whole API surface.
// SameSite=None because the frontend is served from a different origin.
func SetSessionCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Domain:   config.CookieDomain(),
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// ClearSessionCookie removes the cookie regardless of whether a server-side
// session existed.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Domain:   config.CookieDomain(),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

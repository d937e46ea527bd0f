package auth

import (
	"net/http"
	"strings"

	"github.com/examtrack/examtrack-api/internal/config"
)

type Middleware struct {
	resolver ActorResolver
}

func NewMiddleware(resolver ActorResolver) *Middleware {
	return &Middleware{resolver: resolver}
}

// TokenFromRequest extracts the session token, trying the cookie first and
// falling back to a bearer Authorization header.
func TokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value
	}
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// Authenticate resolves the acting user and attaches it to the request
// context. Anonymous requests pass through untouched; RequireUser and
// RequireAdmin decide whether anonymous is acceptable.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := TokenFromRequest(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		actor, err := m.resolver.ResolveActor(r.Context(), token)
		if err != nil {
			config.WithContext(r.Context()).WithError(err).Error("Failed to resolve session")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		if actor == nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

// RequireUser rejects anonymous requests. Must run after Authenticate.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := ActorFromContext(r.Context()); err != nil {
			http.Error(w, "not authenticated", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin distinguishes "not logged in" (401) from "logged in but not
// an admin" (403).
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := ActorFromContext(r.Context())
		if err != nil {
			http.Error(w, "not authenticated", http.StatusUnauthorized)
			return
		}
		if !actor.IsAdmin() {
			http.Error(w, "admin access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

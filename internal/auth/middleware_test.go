package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	actors map[string]*Actor
}

func (f *fakeResolver) ResolveActor(ctx context.Context, token string) (*Actor, error) {
	return f.actors[token], nil
}

func echoActor(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := ActorFromContext(r.Context())
		if err != nil {
			w.Write([]byte("anonymous"))
			return
		}
		w.Write([]byte(actor.ID))
	})
}

func TestTokenFromRequest(t *testing.T) {
	t.Run("cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: CookieName, Value: "session_cookie"})
		assert.Equal(t, "session_cookie", TokenFromRequest(r))
	})

	t.Run("bearer header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer session_header")
		assert.Equal(t, "session_header", TokenFromRequest(r))
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: CookieName, Value: "session_cookie"})
		r.Header.Set("Authorization", "Bearer session_header")
		assert.Equal(t, "session_cookie", TokenFromRequest(r))
	})

	t.Run("non-bearer header ignored", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		assert.Empty(t, TokenFromRequest(r))
	})

	t.Run("nothing", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Empty(t, TokenFromRequest(r))
	})
}

func TestMiddleware_Authenticate(t *testing.T) {
	m := NewMiddleware(&fakeResolver{actors: map[string]*Actor{
		"session_good": {ID: "user_abc", Role: RoleUser},
	}})
	handler := m.Authenticate(echoActor(t))

	t.Run("valid token attaches actor", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: CookieName, Value: "session_good"})
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)
		assert.Equal(t, "user_abc", w.Body.String())
	})

	t.Run("no token passes through anonymous", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)
		assert.Equal(t, "anonymous", w.Body.String())
	})

	t.Run("stale token passes through anonymous", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: CookieName, Value: "session_expired"})
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)
		assert.Equal(t, "anonymous", w.Body.String())
	})
}

func TestRequireUser(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireUser(ok)

	t.Run("anonymous gets 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	for _, role := range []string{RoleUser, RoleGuest, RoleAdmin} {
		t.Run(role+" passes", func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r = r.WithContext(WithActor(r.Context(), &Actor{ID: "user_abc", Role: role}))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireAdmin(ok)

	tests := []struct {
		name     string
		actor    *Actor
		wantCode int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"regular user", &Actor{ID: "user_abc", Role: RoleUser}, http.StatusForbidden},
		{"guest", &Actor{ID: "user_guest_shared", Role: RoleGuest}, http.StatusForbidden},
		{"admin", &Actor{ID: "user_admin", Role: RoleAdmin}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.actor != nil {
				r = r.WithContext(WithActor(r.Context(), tt.actor))
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestActorFromContext(t *testing.T) {
	_, err := ActorFromContext(context.Background())
	require.Error(t, err)

	actor := &Actor{ID: "user_abc", Role: RoleAdmin}
	got, err := ActorFromContext(WithActor(context.Background(), actor))
	require.NoError(t, err)
	assert.Equal(t, actor, got)
	assert.True(t, got.IsAdmin())
	assert.False(t, got.IsGuest())
}

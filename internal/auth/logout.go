package auth

import (
	"net/http"

	"github.com/examtrack/examtrack-api/internal/config"
	"github.com/examtrack/examtrack-api/internal/session"
)

type Handler struct {
	sessions session.Manager
}

func NewHandler(sessions session.Manager) *Handler {
	return &Handler{sessions: sessions}
}

// Logout deletes the server-side session when one exists and clears the
// cookie either way.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if token := TokenFromRequest(r); token != "" {
		if err := h.sessions.Invalidate(r.Context(), token); err != nil {
			log.WithError(err).Warn("Failed to invalidate session on logout")
		}
	}

	ClearSessionCookie(w)

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logged out",
	})
}

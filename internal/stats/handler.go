package stats

import (
	"errors"
	"net/http"

	"github.com/examtrack/examtrack-api/internal/apperror"
	"github.com/examtrack/examtrack-api/internal/auth"
	"github.com/examtrack/examtrack-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	stats, err := h.service.GetUserStats(r.Context(), actor.ID)
	if err != nil {
		log.WithError(err).Error("Failed to compute user stats")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, stats)
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	board, err := h.service.GetLeaderboard(r.Context(), actor)
	if err != nil {
		log.WithError(err).Error("Failed to compute leaderboard")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, board)
}

func (h *Handler) ResetScores(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	result, err := h.service.ResetScores(r.Context(), actor)
	if err != nil {
		if errors.Is(err, apperror.ErrForbidden) {
			http.Error(w, "guest users cannot reset scores, register to track your own progress", http.StatusForbidden)
			return
		}
		log.WithError(err).Error("Failed to reset scores")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) GetAdminAnalytics(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	analytics, err := h.service.AdminAnalytics(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to compute admin analytics")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, analytics)
}

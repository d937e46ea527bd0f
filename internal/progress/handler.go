package progress

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/examtrack/examtrack-api/internal/auth"
	"github.com/examtrack/examtrack-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

type toggleDTO struct {
	QuestionID string `json:"question_id"`
}

func (h *Handler) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	var dto toggleDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil || dto.QuestionID == "" {
		http.Error(w, "question_id required", http.StatusBadRequest)
		return
	}

	bookmarked, err := h.service.ToggleBookmark(r.Context(), actor.ID, dto.QuestionID)
	if err != nil {
		log.WithError(err).Error("Failed to toggle bookmark")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]bool{"bookmarked": bookmarked})
}

func (h *Handler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	questions, err := h.service.ListBookmarkedQuestions(r.Context(), actor.ID)
	if err != nil {
		log.WithError(err).Error("Failed to list bookmarked questions")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	questionID := chi.URLParam(r, "questionID")
	rec, err := h.service.GetProgress(r.Context(), actor.ID, questionID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch progress")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, rec)
}

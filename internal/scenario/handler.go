package scenario

import (
	"encoding/json"
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

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	var dto SubmitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Submit(r.Context(), actor.ID, dto)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			http.Error(w, "question not found", http.StatusNotFound)
			return
		}
		if apperror.IsValidation(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to submit scenario response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	responses, err := h.service.History(r.Context(), actor.ID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch scenario history")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, responses)
}

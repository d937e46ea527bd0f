package question

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/examtrack/examtrack-api/internal/config"
	util "github.com/examtrack/examtrack-api/internal/utils"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	qType := Type(r.URL.Query().Get("type"))
	if qType != "" && !qType.Valid() {
		http.Error(w, "invalid question type", http.StatusBadRequest)
		return
	}
	categoryID := r.URL.Query().Get("category_id")

	questions, err := h.repo.Query(qType, categoryID)
	if err != nil {
		log.WithError(err).Error("Failed to list questions")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id := chi.URLParam(r, "id")
	q, err := h.repo.GetByID(id)
	if err != nil {
		log.WithError(err).Error("Failed to fetch question")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if q == nil {
		http.Error(w, "question not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var q Question
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if !q.Type.Valid() {
		http.Error(w, "invalid question type", http.StatusBadRequest)
		return
	}
	if q.CategoryID == "" {
		http.Error(w, "category_id required", http.StatusBadRequest)
		return
	}
	if q.ID == "" {
		q.ID = util.NewID("q")
	}
	if q.Difficulty == "" {
		q.Difficulty = DifficultyMedium
	}
	if q.Parts == 0 {
		q.Parts = 1
	}

	if err := h.repo.Create(&q); err != nil {
		log.WithError(err).Error("Failed to create question")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, q)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id := chi.URLParam(r, "id")
	existing, err := h.repo.GetByID(id)
	if err != nil {
		log.WithError(err).Error("Failed to fetch question for update")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if existing == nil {
		http.Error(w, "question not found", http.StatusNotFound)
		return
	}

	var q Question
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if !q.Type.Valid() {
		http.Error(w, "invalid question type", http.StatusBadRequest)
		return
	}
	q.ID = existing.ID
	q.CreatedAt = existing.CreatedAt

	if err := h.repo.Update(&q); err != nil {
		log.WithError(err).Error("Failed to update question")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id := chi.URLParam(r, "id")
	deleted, err := h.repo.Delete(id)
	if err != nil {
		log.WithError(err).Error("Failed to delete question")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if deleted == 0 {
		http.Error(w, "question not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "question deleted",
	})
}

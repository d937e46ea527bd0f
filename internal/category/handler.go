package category

import (
	"encoding/json"
	"net/http"

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

	categories, err := h.repo.ListOrdered()
	if err != nil {
		log.WithError(err).Error("Failed to list categories")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, categories)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var c Category
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if c.Name == "" {
		http.Error(w, "category name required", http.StatusBadRequest)
		return
	}
	if c.ID == "" {
		c.ID = util.NewID("cat")
	}

	if err := h.repo.Create(&c); err != nil {
		log.WithError(err).Error("Failed to create category")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, c)
}

package progress

import (
	"github.com/examtrack/examtrack-api/internal/question"
	"gorm.io/gorm"
)

type ProgressContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewProgressContainer(db *gorm.DB, questions question.Repository) *ProgressContainer {
	repo := NewRepository(db)
	service := NewService(repo, questions)
	handler := NewHandler(service)

	return &ProgressContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

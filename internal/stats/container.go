package stats

import (
	"gorm.io/gorm"

	"github.com/examtrack/examtrack-api/internal/progress"
	"github.com/examtrack/examtrack-api/internal/question"
	"github.com/examtrack/examtrack-api/internal/scenario"
)

type StatsContainer struct {
	Service Service
	Handler *Handler
}

func NewStatsContainer(db *gorm.DB, questions question.Repository, prog progress.Repository, responses scenario.Repository) *StatsContainer {
	repo := NewRepository(db)
	service := NewService(repo, questions, prog, responses)
	handler := NewHandler(service)

	return &StatsContainer{
		Service: service,
		Handler: handler,
	}
}

package scenario

import (
	"context"

	"gorm.io/gorm"

	"github.com/examtrack/examtrack-api/internal/config"
	"github.com/examtrack/examtrack-api/internal/progress"
	"github.com/examtrack/examtrack-api/internal/question"
)

type ScenarioContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewScenarioContainer(db *gorm.DB, questions question.Repository, prog progress.Service) *ScenarioContainer {
	ctx := context.Background()

	grader, err := NewGeminiGrader(ctx)
	if err != nil {
		// Grading stays degraded until the provider is configured; the
		// submission path keeps working either way.
		config.WithContext(ctx).WithError(err).Warn("Grading provider unavailable, submissions will not be auto-graded")
		grader = unavailableGrader{err: err}
	}

	repo := NewRepository(db)
	service := NewService(repo, questions, prog, grader)
	handler := NewHandler(service)

	return &ScenarioContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

type unavailableGrader struct {
	err error
}

func (g unavailableGrader) Grade(ctx context.Context, input GradingInput) (*GradingResult, error) {
	return nil, g.err
}

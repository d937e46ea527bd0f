package container

import (
	"context"
	"log"
	"os"

	"github.com/examtrack/examtrack-api/internal/auth"
	"github.com/examtrack/examtrack-api/internal/category"
	"github.com/examtrack/examtrack-api/internal/config"
	"github.com/examtrack/examtrack-api/internal/progress"
	"github.com/examtrack/examtrack-api/internal/question"
	"github.com/examtrack/examtrack-api/internal/scenario"
	"github.com/examtrack/examtrack-api/internal/session"
	"github.com/examtrack/examtrack-api/internal/stats"
	"github.com/examtrack/examtrack-api/internal/user"
)

type Container struct {
	SessionManager    session.Manager
	AuthMiddleware    *auth.Middleware
	AuthHandler       *auth.Handler
	UserContainer     *user.UserContainer
	CategoryContainer *category.CategoryContainer
	QuestionContainer *question.QuestionContainer
	ProgressContainer *progress.ProgressContainer
	ScenarioContainer *scenario.ScenarioContainer
	StatsContainer    *stats.StatsContainer
}

func New() *Container {
	config.Init()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&user.User{},
		&user.PasswordReset{},
		&session.Session{},
		&category.Category{},
		&question.Question{},
		&progress.ProgressRecord{},
		&scenario.ScenarioResponse{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	sessionManager := session.NewManager(session.NewRepository(config.DB))
	userContainer := user.NewUserContainer(config.DB, sessionManager)
	categoryContainer := category.NewCategoryContainer(config.DB)
	questionContainer := question.NewQuestionContainer(config.DB)
	progressContainer := progress.NewProgressContainer(config.DB, questionContainer.Repo)
	scenarioContainer := scenario.NewScenarioContainer(config.DB, questionContainer.Repo, progressContainer.Service)
	statsContainer := stats.NewStatsContainer(config.DB, questionContainer.Repo, progressContainer.Repo, scenarioContainer.Repo)

	return &Container{
		SessionManager:    sessionManager,
		AuthMiddleware:    auth.NewMiddleware(userContainer.Service),
		AuthHandler:       auth.NewHandler(sessionManager),
		UserContainer:     userContainer,
		CategoryContainer: categoryContainer,
		QuestionContainer: questionContainer,
		ProgressContainer: progressContainer,
		ScenarioContainer: scenarioContainer,
		StatsContainer:    statsContainer,
	}
}

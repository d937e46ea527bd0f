package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/examtrack/examtrack-api/internal/auth"
	"github.com/examtrack/examtrack-api/internal/category"
	"github.com/examtrack/examtrack-api/internal/middlewares"
	"github.com/examtrack/examtrack-api/internal/progress"
	"github.com/examtrack/examtrack-api/internal/question"
	"github.com/examtrack/examtrack-api/internal/scenario"
	"github.com/examtrack/examtrack-api/internal/stats"
	"github.com/examtrack/examtrack-api/internal/user"
)

type RouterConfig struct {
	AuthMiddleware  *auth.Middleware
	AuthHandler     *auth.Handler
	UserHandler     *user.Handler
	CategoryHandler *category.Handler
	QuestionHandler *question.Handler
	ProgressHandler *progress.Handler
	ScenarioHandler *scenario.Handler
	StatsHandler    *stats.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)
	r.Use(cfg.AuthMiddleware.Authenticate)

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/health", HealthCheck)
	r.Get("/version", VersionCheck)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/guest", cfg.UserHandler.GuestLogin)
		r.Post("/google", cfg.UserHandler.GoogleLogin)
		r.Post("/forgot-password", cfg.UserHandler.ForgotPassword)
		r.Post("/reset-password", cfg.UserHandler.ResetPassword)
		r.Post("/logout", cfg.AuthHandler.Logout)

		r.With(auth.RequireUser).Get("/me", cfg.UserHandler.Me)
	})

	r.Get("/categories", cfg.CategoryHandler.List)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireUser)

		r.Mount("/questions", question.Routes(cfg.QuestionHandler))
		r.Mount("/scenarios", scenario.Routes(cfg.ScenarioHandler))

		r.Post("/bookmarks/toggle", cfg.ProgressHandler.ToggleBookmark)
		r.Get("/bookmarks", cfg.ProgressHandler.ListBookmarks)
		r.Get("/progress/{questionID}", cfg.ProgressHandler.GetProgress)

		r.Get("/stats", cfg.StatsHandler.GetStats)
		r.Get("/leaderboard", cfg.StatsHandler.GetLeaderboard)
		r.Post("/reset-scores", cfg.StatsHandler.ResetScores)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAdmin)

		r.Post("/categories", cfg.CategoryHandler.Create)
		r.Get("/admin/analytics", cfg.StatsHandler.GetAdminAnalytics)
	})

	return r
}

package user

import (
	"github.com/examtrack/examtrack-api/internal/session"
	"gorm.io/gorm"
)

type UserContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewUserContainer(db *gorm.DB, sessions session.Manager) *UserContainer {
	repo := NewRepository(db)
	service := NewService(repo, sessions, NewGoogleExchanger())
	handler := NewHandler(service)

	return &UserContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

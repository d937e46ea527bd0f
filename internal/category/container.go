package category

import "gorm.io/gorm"

type CategoryContainer struct {
	Repo    Repository
	Handler *Handler
}

func NewCategoryContainer(db *gorm.DB) *CategoryContainer {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	return &CategoryContainer{
		Repo:    repo,
		Handler: handler,
	}
}

package category

import "gorm.io/gorm"

type Repository interface {
	Create(c *Category) error
	ListOrdered() ([]Category, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(c *Category) error {
	return r.db.Create(c).Error
}

func (r *repository) ListOrdered() ([]Category, error) {
	var categories []Category
	if err := r.db.Order("sort_order ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

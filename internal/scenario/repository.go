package scenario

import "gorm.io/gorm"

const historyLimit = 100

type Repository interface {
	Create(resp *ScenarioResponse) error
	ListByUser(userID string) ([]ScenarioResponse, error)
	DeleteByUser(userID string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(resp *ScenarioResponse) error {
	return r.db.Create(resp).Error
}

func (r *repository) ListByUser(userID string) ([]ScenarioResponse, error) {
	var responses []ScenarioResponse
	err := r.db.
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Limit(historyLimit).
		Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *repository) DeleteByUser(userID string) (int64, error) {
	res := r.db.Delete(&ScenarioResponse{}, "user_id = ?", userID)
	return res.RowsAffected, res.Error
}

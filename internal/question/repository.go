package question

import (
	"errors"

	"gorm.io/gorm"
)

const listLimit = 500

type Repository interface {
	Create(q *Question) error
	GetByID(id string) (*Question, error)
	GetByIDs(ids []string) ([]Question, error)
	Query(qType Type, categoryID string) ([]Question, error)
	Update(q *Question) error
	Delete(id string) (int64, error)
	CountByType(qType Type) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(q *Question) error {
	return r.db.Create(q).Error
}

func (r *repository) GetByID(id string) (*Question, error) {
	var q Question
	if err := r.db.First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *repository) GetByIDs(ids []string) ([]Question, error) {
	if len(ids) == 0 {
		return []Question{}, nil
	}
	var questions []Question
	if err := r.db.Where("id IN ?", ids).Limit(listLimit).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *repository) Query(qType Type, categoryID string) ([]Question, error) {
	tx := r.db.Limit(listLimit)
	if qType != "" {
		tx = tx.Where("type = ?", qType)
	}
	if categoryID != "" {
		tx = tx.Where("category_id = ?", categoryID)
	}

	var questions []Question
	if err := tx.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *repository) Update(q *Question) error {
	return r.db.Save(q).Error
}

func (r *repository) Delete(id string) (int64, error) {
	res := r.db.Delete(&Question{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repository) CountByType(qType Type) (int64, error) {
	var count int64
	err := r.db.Model(&Question{}).Where("type = ?", qType).Count(&count).Error
	return count, err
}

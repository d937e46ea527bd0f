package session

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(s *Session) error
	FindByToken(token string) (*Session, error)
	DeleteByToken(token string) error
	DeleteByUserID(userID string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(s *Session) error {
	return r.db.Create(s).Error
}

func (r *repository) FindByToken(token string) (*Session, error) {
	var s Session
	if err := r.db.First(&s, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) DeleteByToken(token string) error {
	return r.db.Delete(&Session{}, "token = ?", token).Error
}

func (r *repository) DeleteByUserID(userID string) (int64, error) {
	res := r.db.Delete(&Session{}, "user_id = ?", userID)
	return res.RowsAffected, res.Error
}

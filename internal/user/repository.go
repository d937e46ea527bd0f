package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	UpdatePasswordHash(email, hash string) (int64, error)

	CreateReset(reset *PasswordReset) error
	DeleteResetsByEmail(email string) error
	FindValidReset(token string, now time.Time) (*PasswordReset, error)
	DeleteReset(token string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(u *User) error {
	return r.db.Create(u).Error
}

func (r *repository) FindByID(id string) (*User, error) {
	var u User
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmail(email string) (*User, error) {
	var u User
	if err := r.db.First(&u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) UpdatePasswordHash(email, hash string) (int64, error) {
	res := r.db.Model(&User{}).Where("email = ?", email).Update("password_hash", hash)
	return res.RowsAffected, res.Error
}

func (r *repository) CreateReset(reset *PasswordReset) error {
	return r.db.Create(reset).Error
}

func (r *repository) DeleteResetsByEmail(email string) error {
	return r.db.Delete(&PasswordReset{}, "email = ?", email).Error
}

func (r *repository) FindValidReset(token string, now time.Time) (*PasswordReset, error) {
	var reset PasswordReset
	if err := r.db.First(&reset, "token = ? AND expires_at > ?", token, now).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reset, nil
}

func (r *repository) DeleteReset(token string) error {
	return r.db.Delete(&PasswordReset{}, "token = ?", token).Error
}

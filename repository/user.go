package repository

import (
	"errors"

	"movieflix/domain"
	userModel "movieflix/models/user"

	"gorm.io/gorm"
)

// UserRepository is the slice of user storage this backend needs: lookup
// by email and the password update the reset flow performs.
type UserRepository interface {
	FindByEmail(email string) (*userModel.User, error)
	UpdatePassword(email, hashedPassword string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByEmail(email string) (*userModel.User, error) {
	var u userModel.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) UpdatePassword(email, hashedPassword string) error {
	return r.db.Model(&userModel.User{}).
		Where("email = ?", email).
		Update("password", hashedPassword).Error
}

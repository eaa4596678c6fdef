package repository

import (
	"airmen-backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindByServiceNo(serviceNo string) (*model.User, error)
	Create(user *model.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) FindByServiceNo(serviceNo string) (*model.User, error) {
	var user model.User
	err := r.db.Where("service_no = ?", serviceNo).First(&user).Error
	return &user, err
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

package repository

import (
	"context"

	"homestay/internal/domain"

	"gorm.io/gorm"
)

// UserRepository is the local adapter for the user directory. It only reads:
// account lifecycle belongs to the identity service.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).Where("username = ?", username).First(&u)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

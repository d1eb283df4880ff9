package repository

import (
	"context"
	"errors"

	"homestay/internal/domain"

	"gorm.io/gorm"
)

var (
	ErrAlreadyFavorite  = errors.New("repository: listing already in favorites")
	ErrFavoriteNotFound = errors.New("repository: favorite not found")
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add saves the listing to the user's favorites. The unique index on
// (user_id, listing_id) catches the duplicate-add race.
func (r *FavoriteRepository) Add(ctx context.Context, userID, listingID int64) (*domain.Favorite, error) {
	f := &domain.Favorite{UserID: userID, ListingID: listingID}
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		if IsUniqueViolation(err) {
			return nil, ErrAlreadyFavorite
		}
		return nil, err
	}
	return f, nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, listingID int64) error {
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Delete(&domain.Favorite{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Favorite, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var favorites []domain.Favorite
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Listing").
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&favorites).Error; err != nil {
		return nil, 0, err
	}
	return favorites, total, nil
}

package repository

import (
	"context"

	"homestay/internal/domain"

	"gorm.io/gorm"
)

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	var l domain.Listing
	if err := r.db.WithContext(ctx).First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *ListingRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Listing, error) {
	var listings []domain.Listing
	tx := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&listings)
	return listings, tx.Error
}

package listing

import (
	"context"
	"time"

	"homestay/internal/domain"
	"homestay/internal/repository"
)

type ListingRepository interface {
	Create(ctx context.Context, l *domain.Listing) error
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Listing, error)
}

type ReviewReader interface {
	ListByListing(ctx context.Context, listingID int64, limit, offset int) ([]repository.ReviewRow, error)
	CountByListing(ctx context.Context, listingID int64) (int64, error)
}

type UserDirectory interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// MediaStore resolves the opaque photo URLs attached to a listing. Upload
// and storage live in the media service; nil means no photos are served.
type MediaStore interface {
	PhotoURLs(ctx context.Context, listingID int64) ([]string, error)
}

type Invalidator interface {
	ListingCreated(ctx context.Context, ownerUsername string)
}

type ReadCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value any, ttl time.Duration)
}

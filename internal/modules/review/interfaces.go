package review

import (
	"context"
	"time"

	"homestay/internal/domain"
	"homestay/internal/repository"
)

// ReviewStore owns review rows and the transactional coupling to the listing
// rating pair and the booking transition.
type ReviewStore interface {
	CreateWithAggregate(ctx context.Context, rv *domain.Review, bookingID int64) error
	ExistsFor(ctx context.Context, authorID, listingID int64) (bool, error)
	ListByListing(ctx context.Context, listingID int64, limit, offset int) ([]repository.ReviewRow, error)
}

type BookingGate interface {
	FindFinished(ctx context.Context, guestID, listingID int64) (*domain.Booking, error)
}

type ListingGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
}

type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type Invalidator interface {
	ReviewFiled(ctx context.Context, listingID int64, guestUsername, ownerUsername string)
}

type ReadCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value any, ttl time.Duration)
}

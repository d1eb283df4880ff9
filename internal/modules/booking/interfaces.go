package booking

import (
	"context"
	"time"

	"homestay/internal/domain"
	"homestay/internal/repository"
)

type BookingRepository interface {
	HasOverlapping(ctx context.Context, guestID, listingID int64, checkIn, checkOut time.Time) (bool, error)
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	TransitionStatus(ctx context.Context, bookingID int64, from, to domain.BookingStatus) error
	DeleteBooked(ctx context.Context, bookingID, guestID int64) (int64, error)
	ListByGuest(ctx context.Context, guestID int64) ([]repository.GuestBookingRow, error)
	ListByListingOwner(ctx context.Context, ownerID int64) ([]repository.OwnerReservationRow, error)
}

type ListingGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
}

type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Invalidator drops the cached views a committed booking mutation staled.
type Invalidator interface {
	BookingCreated(ctx context.Context, guestUsername string)
	BookingConfirmed(ctx context.Context, ownerUsername, guestUsername string)
	BookingRemoved(ctx context.Context, guestUsername string)
}

// ReadCache backs the cache-aside list reads.
type ReadCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value any, ttl time.Duration)
}

package review

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"homestay/internal/cache"
	"homestay/internal/domain"
	"homestay/internal/repository"

	"gorm.io/gorm"
)

const (
	minRating = 1
	maxRating = 5

	defaultPageSize = 50
	maxPageSize     = 100
)

type Service struct {
	reviews  ReviewStore
	bookings BookingGate
	listings ListingGate
	users    UserDirectory
	coherent Invalidator
	reads    ReadCache

	listTTL      time.Duration
	storeTimeout time.Duration
}

func NewService(
	reviews ReviewStore,
	bookings BookingGate,
	listings ListingGate,
	users UserDirectory,
	coherent Invalidator,
	reads ReadCache,
	listTTL, storeTimeout time.Duration,
) *Service {
	return &Service{
		reviews:      reviews,
		bookings:     bookings,
		listings:     listings,
		users:        users,
		coherent:     coherent,
		reads:        reads,
		listTTL:      listTTL,
		storeTimeout: storeTimeout,
	}
}

// File records a review for a stay the guest has finished. The insert, the
// rating-pair increment and the booking's move to Reviewed commit together
// or not at all.
func (s *Service) File(ctx context.Context, authorID int64, authorUsername string, req FileReviewRequest) (*domain.Review, error) {
	if req.ListingID <= 0 || req.Rating < minRating || req.Rating > maxRating || req.Text == "" {
		return nil, ErrValidation
	}

	l, err := s.listings.GetByID(ctx, req.ListingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	b, err := s.bookings.FindFinished(ctx, authorID, req.ListingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEligibleBooking
		}
		return nil, err
	}

	exists, err := s.reviews.ExistsFor(ctx, authorID, req.ListingID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	rv := &domain.Review{
		AuthorID:  authorID,
		ListingID: req.ListingID,
		Rating:    req.Rating,
		Text:      req.Text,
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	if err := s.reviews.CreateWithAggregate(storeCtx, rv, b.ID); err != nil {
		switch {
		case repository.IsUniqueViolation(err):
			// Lost the race against a concurrent filing; the counters are
			// untouched because the transaction rolled back.
			return nil, ErrAlreadyReviewed
		case errors.Is(err, repository.ErrStateConflict):
			return nil, ErrNoEligibleBooking
		case errors.Is(err, context.DeadlineExceeded):
			return nil, ErrTransient
		}
		return nil, err
	}

	ownerUsername := ""
	if owner, err := s.users.GetByID(ctx, l.OwnerID); err == nil {
		ownerUsername = owner.Username
	}
	s.coherent.ReviewFiled(ctx, req.ListingID, authorUsername, ownerUsername)

	return rv, nil
}

// ListByListing returns a page of reviews for a listing, cache-aside.
func (s *Service) ListByListing(ctx context.Context, listingID int64, limit, offset int) ([]repository.ReviewRow, error) {
	if listingID <= 0 {
		return nil, ErrValidation
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	key := cache.ListingReviewsKey(listingID)
	if offset == 0 && limit == defaultPageSize {
		if data, ok := s.reads.Get(ctx, key); ok {
			var rows []repository.ReviewRow
			if json.Unmarshal(data, &rows) == nil {
				return rows, nil
			}
		}
	}

	rows, err := s.reviews.ListByListing(ctx, listingID, limit, offset)
	if err != nil {
		return nil, err
	}
	if offset == 0 && limit == defaultPageSize {
		s.reads.Set(ctx, key, rows, s.listTTL)
	}
	return rows, nil
}

package listing

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"homestay/internal/cache"
	"homestay/internal/domain"

	"gorm.io/gorm"
)

const latestReviewsShown = 3

type Service struct {
	listings ListingRepository
	reviews  ReviewReader
	users    UserDirectory
	media    MediaStore
	coherent Invalidator
	reads    ReadCache

	detailTTL time.Duration
}

func NewService(
	listings ListingRepository,
	reviews ReviewReader,
	users UserDirectory,
	media MediaStore,
	coherent Invalidator,
	reads ReadCache,
	detailTTL time.Duration,
) *Service {
	return &Service{
		listings:  listings,
		reviews:   reviews,
		users:     users,
		media:     media,
		coherent:  coherent,
		reads:     reads,
		detailTTL: detailTTL,
	}
}

func (s *Service) Create(ctx context.Context, ownerID int64, ownerUsername string, req CreateListingRequest) (*domain.Listing, error) {
	l := &domain.Listing{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		Price:       req.Price,
		StayUnit:    req.StayUnit,
	}
	if err := s.listings.Create(ctx, l); err != nil {
		return nil, err
	}

	s.coherent.ListingCreated(ctx, ownerUsername)
	return l, nil
}

// Detail returns the listing page view: displayed rating, review count, the
// latest few reviews and photo URLs. Cache-aside.
func (s *Service) Detail(ctx context.Context, id int64) (*Detail, error) {
	key := cache.ListingKey(id)
	if data, ok := s.reads.Get(ctx, key); ok {
		var d Detail
		if json.Unmarshal(data, &d) == nil {
			return &d, nil
		}
	}

	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	reviewCount, err := s.reviews.CountByListing(ctx, id)
	if err != nil {
		return nil, err
	}
	latest, err := s.reviews.ListByListing(ctx, id, latestReviewsShown, 0)
	if err != nil {
		return nil, err
	}

	var photos []string
	if s.media != nil {
		if photos, err = s.media.PhotoURLs(ctx, id); err != nil {
			// Detail is served without photos when the media service is down.
			photos = nil
		}
	}

	d := &Detail{
		ID:            l.ID,
		Name:          l.Name,
		Description:   l.Description,
		Address:       l.Address,
		City:          l.City,
		Country:       l.Country,
		Price:         l.Price,
		StayUnit:      l.StayUnit,
		Rating:        l.Rating(),
		ReviewCount:   reviewCount,
		LatestReviews: latest,
		PhotoURLs:     photos,
		CreatedAt:     l.CreatedAt,
	}

	s.reads.Set(ctx, key, d, s.detailTTL)
	return d, nil
}

// ListByUser returns the listings owned by the named user, cache-aside.
func (s *Service) ListByUser(ctx context.Context, username string) ([]Summary, error) {
	key := cache.UserListingsKey(username)
	if data, ok := s.reads.Get(ctx, key); ok {
		var out []Summary
		if json.Unmarshal(data, &out) == nil {
			return out, nil
		}
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	listings, err := s.listings.ListByOwner(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	out := make([]Summary, 0, len(listings))
	for _, l := range listings {
		out = append(out, Summary{
			ID:       l.ID,
			Name:     l.Name,
			City:     l.City,
			Country:  l.Country,
			Price:    l.Price,
			StayUnit: l.StayUnit,
			Rating:   l.Rating(),
		})
	}

	s.reads.Set(ctx, key, out, s.detailTTL)
	return out, nil
}

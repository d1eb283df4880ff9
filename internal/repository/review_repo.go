package repository

import (
	"context"
	"time"

	"homestay/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// ReviewRow is the public review-list view joined with the author.
type ReviewRow struct {
	Rating         int       `json:"rating"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
	AuthorUsername string    `json:"author_username"`
}

// CreateWithAggregate performs the review side effects as one atomic unit:
// insert the review, bump the listing's running rating pair, and move the
// eligible booking Finished -> Reviewed. If any step fails nothing takes
// effect, so the counters can never drift from the review rows.
//
// The rating pair is updated with a relative SET, not read-modify-write, so
// two reviews landing on the same listing concurrently both count.
func (r *ReviewRepository) CreateWithAggregate(ctx context.Context, rv *domain.Review, bookingID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rv).Error; err != nil {
			return err
		}

		res := tx.Model(&domain.Listing{}).
			Where("id = ?", rv.ListingID).
			Updates(map[string]any{
				"rating_sum":   gorm.Expr("rating_sum + ?", rv.Rating),
				"rating_count": gorm.Expr("rating_count + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		res = tx.Model(&domain.Booking{}).
			Where("id = ? AND status = ?", bookingID, domain.BookingFinished).
			Update("status", domain.BookingReviewed)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStateConflict
		}
		return nil
	})
}

func (r *ReviewRepository) ExistsFor(ctx context.Context, authorID, listingID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("author_id = ? AND listing_id = ?", authorID, listingID).
		Count(&cnt)
	return cnt > 0, tx.Error
}

func (r *ReviewRepository) ListByListing(ctx context.Context, listingID int64, limit, offset int) ([]ReviewRow, error) {
	var rows []ReviewRow
	q := `
SELECT r.rating, r.text, r.created_at, u.username AS author_username
FROM reviews r
JOIN users u ON u.id = r.author_id
WHERE r.listing_id = ?
ORDER BY r.created_at DESC
LIMIT ? OFFSET ?
`
	tx := r.db.WithContext(ctx).Raw(q, listingID, limit, offset).Scan(&rows)
	return rows, tx.Error
}

func (r *ReviewRepository) CountByListing(ctx context.Context, listingID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("listing_id = ?", listingID).
		Count(&cnt)
	return cnt, tx.Error
}

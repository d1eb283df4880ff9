package repository

import (
	"context"
	"time"

	"homestay/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// GuestBookingRow is the guest's booking-list view joined with the listing.
type GuestBookingRow struct {
	BookingID   int64                `json:"booking_id"`
	Status      domain.BookingStatus `json:"status"`
	CheckIn     time.Time            `json:"check_in"`
	CheckOut    time.Time            `json:"check_out"`
	Guests      int                  `json:"guests"`
	AmountDue   float64              `json:"amount_due"`
	BookedAt    time.Time            `json:"booked_at"`
	ListingID   int64                `json:"listing_id"`
	ListingName string               `json:"listing_name"`
	City        string               `json:"city"`
	Country     string               `json:"country"`
}

// OwnerReservationRow is the reservation-management view for a listing owner.
type OwnerReservationRow struct {
	BookingID     int64                `json:"booking_id"`
	Status        domain.BookingStatus `json:"status"`
	CheckIn       time.Time            `json:"check_in"`
	CheckOut      time.Time            `json:"check_out"`
	Guests        int                  `json:"guests"`
	AmountDue     float64              `json:"amount_due"`
	BookedAt      time.Time            `json:"booked_at"`
	ListingID     int64                `json:"listing_id"`
	ListingName   string               `json:"listing_name"`
	GuestUsername string               `json:"guest_username"`
	GuestEmail    string               `json:"guest_email"`
}

// HasOverlapping reports whether the guest already holds a booking on the
// listing whose [check_in, check_out) range intersects the given one.
// Touching ranges (checkout day == check-in day) do not conflict.
//
// The admission scope is deliberately per-(guest, listing), matching observed
// product behavior: two different guests may book overlapping ranges on the
// same listing. Policy choice to confirm with stakeholders, not a bug.
func (r *BookingRepository) HasOverlapping(ctx context.Context, guestID, listingID int64, checkIn, checkOut time.Time) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("guest_id = ? AND listing_id = ?", guestID, listingID).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// Create inserts the booking after re-running the overlap check inside the
// same transaction, so two concurrent creates for one (guest, listing) pair
// cannot both pass check-then-insert. The unique index on
// (guest_id, listing_id, check_in, check_out) remains the last-resort
// backstop; callers detect it via IsUniqueViolation.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		err := tx.Model(&domain.Booking{}).
			Where("guest_id = ? AND listing_id = ?", b.GuestID, b.ListingID).
			Where("check_in < ? AND check_out > ?", b.CheckOut, b.CheckIn).
			Count(&cnt).Error
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrBookingOverlap
		}
		return tx.Create(b).Error
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// TransitionStatus moves the booking from one status to the next with a
// guarded update. Zero rows affected means the booking was not in the
// expected state, which keeps the lifecycle strictly forward and makes a
// repeated transition fail instead of silently re-applying.
func (r *BookingRepository) TransitionStatus(ctx context.Context, bookingID int64, from, to domain.BookingStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ? AND status = ?", bookingID, from).
		Update("status", to)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrStateConflict
	}
	return nil
}

// DeleteBooked hard-removes the guest's booking, but only while it is still
// in state Booked. Returns the number of rows removed.
func (r *BookingRepository) DeleteBooked(ctx context.Context, bookingID, guestID int64) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND guest_id = ? AND status = ?", bookingID, guestID, domain.BookingBooked).
		Delete(&domain.Booking{})
	return tx.RowsAffected, tx.Error
}

// FindFinished returns the guest's Finished booking on the listing, if any.
// This is the eligibility gate for filing a review.
func (r *BookingRepository) FindFinished(ctx context.Context, guestID, listingID int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).
		Where("guest_id = ? AND listing_id = ? AND status = ?", guestID, listingID, domain.BookingFinished).
		First(&b)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

// ListByGuest returns the guest's bookings joined with listing details,
// excluding already-reviewed stays.
func (r *BookingRepository) ListByGuest(ctx context.Context, guestID int64) ([]GuestBookingRow, error) {
	var rows []GuestBookingRow
	q := `
SELECT b.id AS booking_id, b.status, b.check_in, b.check_out,
       b.guests, b.amount_due, b.created_at AS booked_at,
       l.id AS listing_id, l.name AS listing_name, l.city, l.country
FROM bookings b
JOIN listings l ON l.id = b.listing_id
WHERE b.guest_id = ? AND b.status <> ?
ORDER BY b.created_at DESC
`
	tx := r.db.WithContext(ctx).Raw(q, guestID, domain.BookingReviewed).Scan(&rows)
	return rows, tx.Error
}

// ListByListingOwner returns every booking on the owner's listings, pending
// stays first.
func (r *BookingRepository) ListByListingOwner(ctx context.Context, ownerID int64) ([]OwnerReservationRow, error) {
	var rows []OwnerReservationRow
	q := `
SELECT b.id AS booking_id, b.status, b.check_in, b.check_out,
       b.guests, b.amount_due, b.created_at AS booked_at,
       l.id AS listing_id, l.name AS listing_name,
       u.username AS guest_username, u.email AS guest_email
FROM bookings b
JOIN listings l ON l.id = b.listing_id
JOIN users u ON u.id = b.guest_id
WHERE l.owner_id = ?
ORDER BY CASE b.status WHEN 'Booked' THEN 1 WHEN 'Finished' THEN 2 ELSE 3 END,
         b.created_at DESC
`
	tx := r.db.WithContext(ctx).Raw(q, ownerID).Scan(&rows)
	return rows, tx.Error
}

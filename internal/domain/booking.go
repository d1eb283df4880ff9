package domain

import "time"

type BookingStatus string

// Lifecycle is strictly forward: Booked -> Finished -> Reviewed.
const (
	BookingBooked   BookingStatus = "Booked"
	BookingFinished BookingStatus = "Finished"
	BookingReviewed BookingStatus = "Reviewed"
)

type Booking struct {
	ID        int64         `json:"id"`
	GuestID   int64         `json:"guest_id" gorm:"not null;index;uniqueIndex:idx_guest_listing_stay"`
	ListingID int64         `json:"listing_id" gorm:"not null;index;uniqueIndex:idx_guest_listing_stay"`
	CheckIn   time.Time     `json:"check_in" gorm:"not null;uniqueIndex:idx_guest_listing_stay"`
	CheckOut  time.Time     `json:"check_out" gorm:"not null;uniqueIndex:idx_guest_listing_stay"`
	Guests    int           `json:"guests"`
	AmountDue float64       `json:"amount_due"`
	Status    BookingStatus `json:"status" gorm:"not null;default:Booked"`
	CreatedAt time.Time     `json:"created_at"`
}

func (Booking) TableName() string { return "bookings" }

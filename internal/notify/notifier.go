package notify

import (
	"context"
	"time"
)

// Notifier delivers guest-facing messages. Sends are async, at-most-once and
// best-effort: the caller never learns about delivery failures and the core
// never retries them.
type Notifier interface {
	BookingCreated(ctx context.Context, guestID, bookingID int64)
	StayFinished(ctx context.Context, guestID, bookingID int64)
}

const (
	KindBookingCreated = "booking_created"
	KindStayFinished   = "stay_finished"
)

type Event struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	GuestID   int64     `json:"guest_id"`
	BookingID int64     `json:"booking_id"`
	At        time.Time `json:"at"`
}

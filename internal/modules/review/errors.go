package review

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("listing not found")
	ErrNoEligibleBooking = errors.New("no finished booking for this listing")
	ErrAlreadyReviewed   = errors.New("review already exists")
	ErrTransient         = errors.New("store temporarily unavailable")
)

package booking

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrInvalidRange = errors.New("check-in must be before check-out")
	ErrPastCheckIn  = errors.New("stay must start today or later")
	ErrConflict     = errors.New("overlapping booking")
	ErrNotFound     = errors.New("booking not found")
	ErrForbidden    = errors.New("forbidden")
	ErrNotYetDue    = errors.New("guests are not checking out yet")
	ErrTransient    = errors.New("store temporarily unavailable")
)

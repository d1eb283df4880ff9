package booking

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"homestay/internal/cache"
	"homestay/internal/domain"
	"homestay/internal/notify"
	"homestay/internal/repository"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service struct {
	bookings BookingRepository
	listings ListingGate
	users    UserDirectory
	notifs   notify.Notifier
	coherent Invalidator
	reads    ReadCache

	listTTL         time.Duration
	reservationsTTL time.Duration
	storeTimeout    time.Duration

	now func() time.Time
}

func NewService(
	bookings BookingRepository,
	listings ListingGate,
	users UserDirectory,
	notifs notify.Notifier,
	coherent Invalidator,
	reads ReadCache,
	listTTL, reservationsTTL, storeTimeout time.Duration,
) *Service {
	return &Service{
		bookings:        bookings,
		listings:        listings,
		users:           users,
		notifs:          notifs,
		coherent:        coherent,
		reads:           reads,
		listTTL:         listTTL,
		reservationsTTL: reservationsTTL,
		storeTimeout:    storeTimeout,
		now:             time.Now,
	}
}

// Create admits and records a new stay. The overlap check is per
// (guest, listing) over half-open date ranges: a checkout on day X and a new
// check-in on day X do not conflict.
func (s *Service) Create(ctx context.Context, guestID int64, guestUsername string, req CreateBookingRequest) (*domain.Booking, error) {
	checkIn, err := parseDay(req.CheckIn)
	if err != nil {
		return nil, ErrValidation
	}
	checkOut, err := parseDay(req.CheckOut)
	if err != nil {
		return nil, ErrValidation
	}

	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidRange
	}
	if checkIn.Before(today(s.now())) {
		return nil, ErrPastCheckIn
	}

	if _, err := s.listings.GetByID(ctx, req.ListingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	taken, err := s.bookings.HasOverlapping(ctx, guestID, req.ListingID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrConflict
	}

	b := &domain.Booking{
		GuestID:   guestID,
		ListingID: req.ListingID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Guests:    req.Guests,
		AmountDue: req.AmountDue,
		Status:    domain.BookingBooked,
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	if err := s.bookings.Create(storeCtx, b); err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingOverlap), repository.IsUniqueViolation(err):
			return nil, ErrConflict
		case errors.Is(err, context.DeadlineExceeded):
			return nil, ErrTransient
		}
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.BookingCreated(ctx, guestID, b.ID)
	}
	s.coherent.BookingCreated(ctx, guestUsername)

	return b, nil
}

// ConfirmCheckout moves a stay Booked -> Finished. Only the listing owner may
// confirm, and only once the checkout date has arrived. A repeated confirm
// finds no Booked row and fails NotFound; Finished never re-transitions.
func (s *Service) ConfirmCheckout(ctx context.Context, ownerID int64, ownerUsername string, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	l, err := s.listings.GetByID(ctx, b.ListingID)
	if err != nil {
		return nil, err
	}
	if l.OwnerID != ownerID {
		return nil, ErrForbidden
	}

	if today(s.now()).Before(today(b.CheckOut)) {
		return nil, ErrNotYetDue
	}

	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	if err := s.bookings.TransitionStatus(storeCtx, bookingID, domain.BookingBooked, domain.BookingFinished); err != nil {
		switch {
		case errors.Is(err, repository.ErrStateConflict):
			return nil, ErrNotFound
		case errors.Is(err, context.DeadlineExceeded):
			return nil, ErrTransient
		}
		return nil, err
	}
	b.Status = domain.BookingFinished

	if s.notifs != nil {
		s.notifs.StayFinished(ctx, b.GuestID, b.ID)
	}

	guestUsername := ""
	if guest, err := s.users.GetByID(ctx, b.GuestID); err == nil {
		guestUsername = guest.Username
	}
	s.coherent.BookingConfirmed(ctx, ownerUsername, guestUsername)

	return b, nil
}

// Remove hard-deletes the guest's own booking while it is still Booked.
func (s *Service) Remove(ctx context.Context, guestID int64, guestUsername string, bookingID int64) error {
	storeCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	removed, err := s.bookings.DeleteBooked(storeCtx, bookingID, guestID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTransient
		}
		return err
	}
	if removed == 0 {
		return ErrNotFound
	}

	s.coherent.BookingRemoved(ctx, guestUsername)
	return nil
}

// ListMine returns the guest's booking list, cache-aside.
func (s *Service) ListMine(ctx context.Context, guestID int64, guestUsername string) ([]repository.GuestBookingRow, error) {
	key := cache.UserBookingsKey(guestUsername)
	if data, ok := s.reads.Get(ctx, key); ok {
		var rows []repository.GuestBookingRow
		if json.Unmarshal(data, &rows) == nil {
			return rows, nil
		}
	}

	rows, err := s.bookings.ListByGuest(ctx, guestID)
	if err != nil {
		return nil, err
	}
	s.reads.Set(ctx, key, rows, s.listTTL)
	return rows, nil
}

// ListReservations returns every booking on the owner's listings. The view
// changes often, so it is cached with the short reservations TTL.
func (s *Service) ListReservations(ctx context.Context, ownerID int64, ownerUsername string) ([]repository.OwnerReservationRow, error) {
	key := cache.OwnerReservationsKey(ownerUsername)
	if data, ok := s.reads.Get(ctx, key); ok {
		var rows []repository.OwnerReservationRow
		if json.Unmarshal(data, &rows) == nil {
			return rows, nil
		}
	}

	rows, err := s.bookings.ListByListingOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	s.reads.Set(ctx, key, rows, s.reservationsTTL)
	return rows, nil
}

func parseDay(raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, err
	}
	return today(t), nil
}

func today(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

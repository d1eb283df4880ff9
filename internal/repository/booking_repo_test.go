package repository

import (
	"context"
	"testing"

	"homestay/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBookingRepository_Create_RejectsOverlap(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	guest := seedUser(t, db, "guest")
	owner := seedUser(t, db, "owner")
	l := seedListing(t, db, owner.ID, "Loft")

	first := &domain.Booking{
		GuestID: guest.ID, ListingID: l.ID,
		CheckIn: day(2026, 9, 10), CheckOut: day(2026, 9, 20),
		Guests: 2, AmountDue: 120000, Status: domain.BookingBooked,
	}
	require.NoError(t, repo.Create(ctx, first))

	second := &domain.Booking{
		GuestID: guest.ID, ListingID: l.ID,
		CheckIn: day(2026, 9, 15), CheckOut: day(2026, 9, 25),
		Guests: 2, AmountDue: 120000, Status: domain.BookingBooked,
	}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, ErrBookingOverlap)

	var cnt int64
	require.NoError(t, db.Model(&domain.Booking{}).Count(&cnt).Error)
	assert.Equal(t, int64(1), cnt)
}

func TestBookingRepository_Create_TouchingRangesAllowed(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	guest := seedUser(t, db, "guest")
	owner := seedUser(t, db, "owner")
	l := seedListing(t, db, owner.ID, "Loft")

	require.NoError(t, repo.Create(ctx, &domain.Booking{
		GuestID: guest.ID, ListingID: l.ID,
		CheckIn: day(2026, 9, 10), CheckOut: day(2026, 9, 15),
		Status: domain.BookingBooked,
	}))

	// Checkout day equals next check-in day: half-open ranges do not clash.
	require.NoError(t, repo.Create(ctx, &domain.Booking{
		GuestID: guest.ID, ListingID: l.ID,
		CheckIn: day(2026, 9, 15), CheckOut: day(2026, 9, 20),
		Status: domain.BookingBooked,
	}))
}

func TestBookingRepository_OverlapScopedPerGuest(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	a := seedUser(t, db, "alice")
	b := seedUser(t, db, "bob")
	owner := seedUser(t, db, "owner")
	l := seedListing(t, db, owner.ID, "Loft")

	require.NoError(t, repo.Create(ctx, &domain.Booking{
		GuestID: a.ID, ListingID: l.ID,
		CheckIn: day(2026, 9, 10), CheckOut: day(2026, 9, 20),
		Status: domain.BookingBooked,
	}))

	// A different guest may hold the very same range on the listing.
	require.NoError(t, repo.Create(ctx, &domain.Booking{
		GuestID: b.ID, ListingID: l.ID,
		CheckIn: day(2026, 9, 10), CheckOut: day(2026, 9, 20),
		Status: domain.BookingBooked,
	}))

	overlap, err := repo.HasOverlapping(ctx, a.ID, l.ID, day(2026, 9, 12), day(2026, 9, 14))
	require.NoError(t, err)
	assert.True(t, overlap)
}

func TestBookingRepository_UniqueIndexBackstop(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	guest := seedUser(t, db, "guest")
	owner := seedUser(t, db, "owner")
	l := seedListing(t, db, owner.ID, "Loft")

	b := domain.Booking{
		GuestID: guest.ID, ListingID: l.ID,
		CheckIn: day(2026, 9, 10), CheckOut: day(2026, 9, 20),
		Status: domain.BookingBooked,
	}
	require.NoError(t, db.WithContext(ctx).Create(&b).Error)

	// Identical row inserted past the admission check, as a racing writer
	// would: the (guest, listing, check_in, check_out) index must refuse it.
	dup := domain.Booking{
		GuestID: guest.ID, ListingID: l.ID,
		CheckIn: day(2026, 9, 10), CheckOut: day(2026, 9, 20),
		Status: domain.BookingBooked,
	}
	err := db.WithContext(ctx).Create(&dup).Error
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestBookingRepository_TransitionStatus_ForwardOnly(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	guest := seedUser(t, db, "guest")
	owner := seedUser(t, db, "owner")
	l := seedListing(t, db, owner.ID, "Loft")

	b := &domain.Booking{
		GuestID: guest.ID, ListingID: l.ID,
		CheckIn: day(2026, 9, 10), CheckOut: day(2026, 9, 20),
		Status: domain.BookingBooked,
	}
	require.NoError(t, repo.Create(ctx, b))

	require.NoError(t, repo.TransitionStatus(ctx, b.ID, domain.BookingBooked, domain.BookingFinished))

	// The same transition applied twice matches no row the second time.
	err := repo.TransitionStatus(ctx, b.ID, domain.BookingBooked, domain.BookingFinished)
	assert.ErrorIs(t, err, ErrStateConflict)

	require.NoError(t, repo.TransitionStatus(ctx, b.ID, domain.BookingFinished, domain.BookingReviewed))

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingReviewed, got.Status)
}

func TestBookingRepository_DeleteBooked_OnlyWhileBooked(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	guest := seedUser(t, db, "guest")
	owner := seedUser(t, db, "owner")
	l := seedListing(t, db, owner.ID, "Loft")

	b := &domain.Booking{
		GuestID: guest.ID, ListingID: l.ID,
		CheckIn: day(2026, 9, 10), CheckOut: day(2026, 9, 20),
		Status: domain.BookingBooked,
	}
	require.NoError(t, repo.Create(ctx, b))

	// Someone else's ID removes nothing.
	n, err := repo.DeleteBooked(ctx, b.ID, guest.ID+100)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, repo.TransitionStatus(ctx, b.ID, domain.BookingBooked, domain.BookingFinished))

	n, err = repo.DeleteBooked(ctx, b.ID, guest.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	other := &domain.Booking{
		GuestID: guest.ID, ListingID: l.ID,
		CheckIn: day(2026, 10, 1), CheckOut: day(2026, 10, 5),
		Status: domain.BookingBooked,
	}
	require.NoError(t, repo.Create(ctx, other))

	n, err = repo.DeleteBooked(ctx, other.ID, guest.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestBookingRepository_FindFinished(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	guest := seedUser(t, db, "guest")
	owner := seedUser(t, db, "owner")
	l := seedListing(t, db, owner.ID, "Loft")

	b := &domain.Booking{
		GuestID: guest.ID, ListingID: l.ID,
		CheckIn: day(2026, 9, 10), CheckOut: day(2026, 9, 20),
		Status: domain.BookingBooked,
	}
	require.NoError(t, repo.Create(ctx, b))

	_, err := repo.FindFinished(ctx, guest.ID, l.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.TransitionStatus(ctx, b.ID, domain.BookingBooked, domain.BookingFinished))

	got, err := repo.FindFinished(ctx, guest.ID, l.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
}

func TestBookingRepository_ListByGuest_ExcludesReviewed(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	guest := seedUser(t, db, "guest")
	owner := seedUser(t, db, "owner")
	l := seedListing(t, db, owner.ID, "Loft")

	booked := &domain.Booking{
		GuestID: guest.ID, ListingID: l.ID,
		CheckIn: day(2026, 9, 10), CheckOut: day(2026, 9, 20),
		Status: domain.BookingBooked,
	}
	require.NoError(t, repo.Create(ctx, booked))

	reviewed := &domain.Booking{
		GuestID: guest.ID, ListingID: l.ID,
		CheckIn: day(2026, 8, 1), CheckOut: day(2026, 8, 5),
		Status: domain.BookingReviewed,
	}
	require.NoError(t, repo.Create(ctx, reviewed))

	rows, err := repo.ListByGuest(ctx, guest.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, booked.ID, rows[0].BookingID)
	assert.Equal(t, "Loft", rows[0].ListingName)
	assert.Equal(t, "Almaty", rows[0].City)
}

func TestBookingRepository_ListByListingOwner_BookedFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	guest := seedUser(t, db, "guest")
	owner := seedUser(t, db, "owner")
	l := seedListing(t, db, owner.ID, "Loft")

	finished := &domain.Booking{
		GuestID: guest.ID, ListingID: l.ID,
		CheckIn: day(2026, 8, 1), CheckOut: day(2026, 8, 5),
		Status: domain.BookingFinished,
	}
	require.NoError(t, repo.Create(ctx, finished))

	booked := &domain.Booking{
		GuestID: guest.ID, ListingID: l.ID,
		CheckIn: day(2026, 9, 10), CheckOut: day(2026, 9, 20),
		Status: domain.BookingBooked,
	}
	require.NoError(t, repo.Create(ctx, booked))

	rows, err := repo.ListByListingOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, booked.ID, rows[0].BookingID)
	assert.Equal(t, "guest", rows[0].GuestUsername)
	assert.Equal(t, finished.ID, rows[1].BookingID)
}

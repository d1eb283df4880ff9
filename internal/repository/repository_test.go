package repository

import (
	"testing"
	"time"

	"homestay/internal/database"
	"homestay/internal/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	// Each pooled connection would get its own in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Listing{},
		&domain.Booking{},
		&domain.Review{},
		&domain.Favorite{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *domain.User {
	t.Helper()
	u := &domain.User{Username: username, Email: username + "@example.com"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedListing(t *testing.T, db *gorm.DB, ownerID int64, name string) *domain.Listing {
	t.Helper()
	l := &domain.Listing{
		OwnerID:  ownerID,
		Name:     name,
		City:     "Almaty",
		Country:  "Kazakhstan",
		Price:    12000,
		StayUnit: domain.PerDay,
	}
	require.NoError(t, db.Create(l).Error)
	return l
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

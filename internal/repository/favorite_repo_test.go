package repository

import (
	"context"
	"testing"

	"homestay/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteRepository_AddIsIdempotentPerPair(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "guest")
	owner := seedUser(t, db, "owner")
	l := seedListing(t, db, owner.ID, "Loft")

	f, err := repo.Add(ctx, user.ID, l.ID)
	require.NoError(t, err)
	assert.NotZero(t, f.ID)

	_, err = repo.Add(ctx, user.ID, l.ID)
	assert.ErrorIs(t, err, ErrAlreadyFavorite)
}

func TestFavoriteRepository_RemoveMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepository(db)

	err := repo.Remove(context.Background(), 1, 999)
	assert.ErrorIs(t, err, ErrFavoriteNotFound)
}

func TestFavoriteRepository_ListByUser_PreloadsListing(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "guest")
	owner := seedUser(t, db, "owner")
	l := seedListing(t, db, owner.ID, "Loft")

	_, err := repo.Add(ctx, user.ID, l.ID)
	require.NoError(t, err)

	favorites, total, err := repo.ListByUser(ctx, user.ID, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, favorites, 1)
	require.NotNil(t, favorites[0].Listing)
	assert.Equal(t, "Loft", favorites[0].Listing.Name)

	require.NoError(t, repo.Remove(ctx, user.ID, l.ID))

	var f domain.Favorite
	err = db.Where("user_id = ?", user.ID).First(&f).Error
	assert.Error(t, err)
}

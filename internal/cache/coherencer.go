package cache

import (
	"context"
	"log/slog"
)

// Coherencer drops the cached read views a committed mutation made stale.
// Invalidation is delete-on-write: the next read repopulates from the store.
//
// The invalidate-then-repopulate window is not transactional with the write
// commit, so a read racing a concurrent write can put immediately-stale data
// back. That is the accepted consistency model, bounded by the entry TTL.
type Coherencer struct {
	cache Cache
	log   *slog.Logger
}

func NewCoherencer(c Cache, log *slog.Logger) *Coherencer {
	return &Coherencer{cache: c, log: log}
}

func (c *Coherencer) BookingCreated(ctx context.Context, guestUsername string) {
	c.drop(ctx, UserBookingsKey(guestUsername))
}

func (c *Coherencer) BookingConfirmed(ctx context.Context, ownerUsername, guestUsername string) {
	c.drop(ctx,
		OwnerReservationsKey(ownerUsername),
		UserBookingsKey(guestUsername),
	)
}

func (c *Coherencer) BookingRemoved(ctx context.Context, guestUsername string) {
	c.drop(ctx, UserBookingsKey(guestUsername))
}

func (c *Coherencer) ReviewFiled(ctx context.Context, listingID int64, guestUsername, ownerUsername string) {
	c.drop(ctx,
		ListingKey(listingID),
		ListingReviewsKey(listingID),
		UserBookingsKey(guestUsername),
		OwnerReservationsKey(ownerUsername),
	)
}

func (c *Coherencer) ListingCreated(ctx context.Context, ownerUsername string) {
	c.drop(ctx, UserListingsKey(ownerUsername))
}

func (c *Coherencer) FavoritesChanged(ctx context.Context, username string) {
	c.drop(ctx, FavoritesKey(username))
}

func (c *Coherencer) drop(ctx context.Context, keys ...string) {
	if err := c.cache.Delete(ctx, keys...); err != nil {
		c.log.Warn("cache invalidation failed", "keys", keys, "err", err)
	}
}

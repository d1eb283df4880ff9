package cache

import "fmt"

// Key builders for every cached read view. Keys are scoped per entity or per
// principal so invalidation can target exactly the views a mutation staled.

func ListingKey(listingID int64) string {
	return fmt.Sprintf("listing_%d", listingID)
}

func ListingReviewsKey(listingID int64) string {
	return fmt.Sprintf("listing_reviews_%d", listingID)
}

func UserListingsKey(username string) string {
	return "user_listings_" + username
}

func UserBookingsKey(username string) string {
	return "user_bookings_" + username
}

func OwnerReservationsKey(username string) string {
	return "owner_reservations_" + username
}

func FavoritesKey(username string) string {
	return "favorites_" + username
}

package favorite

import (
	"time"

	"homestay/internal/domain"
)

type Item struct {
	ListingID int64           `json:"listing_id"`
	Name      string          `json:"name"`
	City      string          `json:"city"`
	Country   string          `json:"country"`
	Price     int64           `json:"price"`
	StayUnit  domain.StayUnit `json:"stay_unit"`
	SavedAt   time.Time       `json:"saved_at"`
}

type ListResponse struct {
	Favorites []Item `json:"favorites"`
	Total     int64  `json:"total"`
	Page      int    `json:"page"`
	PerPage   int    `json:"per_page"`
}

func toListResponse(favorites []domain.Favorite, total int64, page, perPage int) ListResponse {
	items := make([]Item, 0, len(favorites))
	for _, f := range favorites {
		item := Item{ListingID: f.ListingID, SavedAt: f.CreatedAt}
		if f.Listing != nil {
			item.Name = f.Listing.Name
			item.City = f.Listing.City
			item.Country = f.Listing.Country
			item.Price = f.Listing.Price
			item.StayUnit = f.Listing.StayUnit
		}
		items = append(items, item)
	}
	return ListResponse{Favorites: items, Total: total, Page: page, PerPage: perPage}
}

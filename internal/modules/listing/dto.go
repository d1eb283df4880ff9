package listing

import (
	"time"

	"homestay/internal/domain"
	"homestay/internal/repository"
)

type CreateListingRequest struct {
	Name        string          `json:"name" binding:"required,max=100"`
	Description string          `json:"description" binding:"required"`
	Address     string          `json:"address" binding:"required,max=150"`
	City        string          `json:"city" binding:"required,max=100"`
	Country     string          `json:"country" binding:"required,max=100"`
	Price       int64           `json:"price" binding:"required,gte=0"`
	StayUnit    domain.StayUnit `json:"stay_unit" binding:"required,oneof=per_day per_week per_month"`
}

type Detail struct {
	ID            int64                  `json:"id"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description"`
	Address       string                 `json:"address"`
	City          string                 `json:"city"`
	Country       string                 `json:"country"`
	Price         int64                  `json:"price"`
	StayUnit      domain.StayUnit        `json:"stay_unit"`
	Rating        float64                `json:"rating"`
	ReviewCount   int64                  `json:"review_count"`
	LatestReviews []repository.ReviewRow `json:"latest_reviews"`
	PhotoURLs     []string               `json:"photo_urls"`
	CreatedAt     time.Time              `json:"created_at"`
}

type Summary struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	City     string          `json:"city"`
	Country  string          `json:"country"`
	Price    int64           `json:"price"`
	StayUnit domain.StayUnit `json:"stay_unit"`
	Rating   float64         `json:"rating"`
}

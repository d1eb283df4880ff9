package domain

import "time"

// Favorite links a user to a listing they saved. One row per (user, listing).
type Favorite struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_listing"`
	ListingID int64     `json:"listing_id" gorm:"not null;index;uniqueIndex:idx_user_listing"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Listing *Listing `json:"listing,omitempty" gorm:"foreignKey:ListingID"`
}

func (Favorite) TableName() string { return "favorites" }

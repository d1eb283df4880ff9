package domain

import "time"

type Review struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"author_id" gorm:"not null;index;uniqueIndex:idx_author_listing"`
	ListingID int64     `json:"listing_id" gorm:"not null;index;uniqueIndex:idx_author_listing"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

func (Review) TableName() string { return "reviews" }

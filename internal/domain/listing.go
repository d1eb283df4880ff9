package domain

import (
	"math"
	"time"
)

type StayUnit string

const (
	PerDay   StayUnit = "per_day"
	PerWeek  StayUnit = "per_week"
	PerMonth StayUnit = "per_month"
)

type Listing struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id" gorm:"not null;index"`
	Name        string    `json:"name"`
	Description string    `json:"description" gorm:"type:text"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Price       int64     `json:"price"`
	StayUnit    StayUnit  `json:"stay_unit"`
	RatingSum   int64     `json:"-"`
	RatingCount int64     `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Listing) TableName() string { return "listings" }

// Rating is the displayed average, computed on read and never stored.
// Defined as 0 while the listing has no reviews.
func (l *Listing) Rating() float64 {
	if l.RatingCount == 0 {
		return 0
	}
	avg := float64(l.RatingSum) / float64(l.RatingCount)
	return math.Round(avg*100) / 100
}

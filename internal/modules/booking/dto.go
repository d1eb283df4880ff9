package booking

type CreateBookingRequest struct {
	ListingID int64   `json:"listing_id" binding:"required"`
	CheckIn   string  `json:"check_in" binding:"required"`
	CheckOut  string  `json:"check_out" binding:"required"`
	Guests    int     `json:"guests" binding:"required,gte=1"`
	AmountDue float64 `json:"amount_due" binding:"required,gte=0"`
}

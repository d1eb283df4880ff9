package review

type FileReviewRequest struct {
	ListingID int64  `json:"listing_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Text      string `json:"text" binding:"required"`
}

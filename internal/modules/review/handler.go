package review

import (
	"net/http"
	"strconv"

	"homestay/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/listings/:id/reviews", h.ListByListing)
	}
	if protected != nil {
		protected.POST("/reviews", h.File)
	}
}

func (h *Handler) File(c *gin.Context) {
	var req FileReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "Invalid request body")
		return
	}

	rv, err := h.svc.File(c.Request.Context(), c.GetInt64("user_id"), c.GetString("username"), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION", "Invalid input")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
		case ErrNoEligibleBooking:
			response.Error(c, http.StatusNotFound, "NO_ELIGIBLE_BOOKING", "You don't have any bookings for this housing.")
		case ErrAlreadyReviewed:
			response.Error(c, http.StatusConflict, "ALREADY_REVIEWED", "You have already added a review.")
		case ErrTransient:
			response.Error(c, http.StatusServiceUnavailable, "TRANSIENT", "Store temporarily unavailable, retry")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		}
		return
	}

	response.Success(c, http.StatusCreated, rv)
}

func (h *Handler) ListByListing(c *gin.Context) {
	listingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || listingID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "Invalid listing ID")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	rows, err := h.svc.ListByListing(c.Request.Context(), listingID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}
	response.Success(c, http.StatusOK, rows)
}

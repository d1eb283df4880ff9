package booking

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

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.POST("/bookings", h.Create)
	protected.GET("/bookings", h.ListMine)
	protected.DELETE("/bookings/:id", h.Remove)
	protected.GET("/reservations", h.ListReservations)
	protected.PATCH("/reservations/:id/checkout", h.ConfirmCheckout)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "Invalid request body")
		return
	}

	b, err := h.svc.Create(c.Request.Context(), c.GetInt64("user_id"), c.GetString("username"), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) ListMine(c *gin.Context) {
	rows, err := h.svc.ListMine(c.Request.Context(), c.GetInt64("user_id"), c.GetString("username"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) Remove(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookingID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "Invalid booking ID")
		return
	}

	if err := h.svc.Remove(c.Request.Context(), c.GetInt64("user_id"), c.GetString("username"), bookingID); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Booking removed."})
}

func (h *Handler) ListReservations(c *gin.Context) {
	rows, err := h.svc.ListReservations(c.Request.Context(), c.GetInt64("user_id"), c.GetString("username"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) ConfirmCheckout(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookingID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "Invalid booking ID")
		return
	}

	b, err := h.svc.ConfirmCheckout(c.Request.Context(), c.GetInt64("user_id"), c.GetString("username"), bookingID)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION", "Invalid input")
	case ErrInvalidRange:
		response.Error(c, http.StatusBadRequest, "INVALID_RANGE", "Check-in must be before check-out")
	case ErrPastCheckIn:
		response.Error(c, http.StatusBadRequest, "INVALID_RANGE", "Stay must start today or later")
	case ErrConflict:
		response.Error(c, http.StatusConflict, "CONFLICT", "Housing booking already taken.")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking does not exist.")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this listing")
	case ErrNotYetDue:
		response.Error(c, http.StatusBadRequest, "NOT_YET_DUE", "Guests are not checking out yet.")
	case ErrTransient:
		response.Error(c, http.StatusServiceUnavailable, "TRANSIENT", "Store temporarily unavailable, retry")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}

package listing

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
		public.GET("/listings/:id", h.Detail)
	}
	if protected != nil {
		protected.POST("/listings", h.Create)
		protected.GET("/users/:username/listings", h.ListByUser)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "Invalid request body")
		return
	}

	l, err := h.svc.Create(c.Request.Context(), c.GetInt64("user_id"), c.GetString("username"), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"listing_id": l.ID})
}

func (h *Handler) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "Invalid listing ID")
		return
	}

	d, err := h.svc.Detail(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}
	response.Success(c, http.StatusOK, d)
}

func (h *Handler) ListByUser(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "Invalid username")
		return
	}

	out, err := h.svc.ListByUser(c.Request.Context(), username)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}
	response.Success(c, http.StatusOK, out)
}

package favorite

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"homestay/internal/cache"
	"homestay/internal/pkg/response"
	"homestay/internal/repository"

	"github.com/gin-gonic/gin"
)

type Invalidator interface {
	FavoritesChanged(ctx context.Context, username string)
}

type ReadCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value any, ttl time.Duration)
}

type Handler struct {
	repo     *repository.FavoriteRepository
	coherent Invalidator
	reads    ReadCache
	listTTL  time.Duration
}

func NewHandler(repo *repository.FavoriteRepository, coherent Invalidator, reads ReadCache, listTTL time.Duration) *Handler {
	return &Handler{repo: repo, coherent: coherent, reads: reads, listTTL: listTTL}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	favorites := protected.Group("/favorites")
	{
		favorites.GET("", h.List)
		favorites.POST("/:listingId", h.Add)
		favorites.DELETE("/:listingId", h.Remove)
	}
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")
	username := c.GetString("username")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	key := cache.FavoritesKey(username)
	if page == 1 && perPage == 20 {
		if data, ok := h.reads.Get(c.Request.Context(), key); ok {
			var cached ListResponse
			if json.Unmarshal(data, &cached) == nil {
				response.Success(c, http.StatusOK, cached)
				return
			}
		}
	}

	favorites, total, err := h.repo.ListByUser(c.Request.Context(), userID, perPage, (page-1)*perPage)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to get favorites")
		return
	}

	resp := toListResponse(favorites, total, page, perPage)
	if page == 1 && perPage == 20 {
		h.reads.Set(c.Request.Context(), key, resp, h.listTTL)
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Add(c *gin.Context) {
	listingID, err := strconv.ParseInt(c.Param("listingId"), 10, 64)
	if err != nil || listingID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "Invalid listing ID")
		return
	}

	if _, err := h.repo.Add(c.Request.Context(), c.GetInt64("user_id"), listingID); err != nil {
		if err == repository.ErrAlreadyFavorite {
			response.Error(c, http.StatusConflict, "CONFLICT", "Favorites already added.")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to add favorite")
		return
	}

	h.coherent.FavoritesChanged(c.Request.Context(), c.GetString("username"))
	response.Success(c, http.StatusOK, gin.H{"message": "Favorites added."})
}

func (h *Handler) Remove(c *gin.Context) {
	listingID, err := strconv.ParseInt(c.Param("listingId"), 10, 64)
	if err != nil || listingID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION", "Invalid listing ID")
		return
	}

	if err := h.repo.Remove(c.Request.Context(), c.GetInt64("user_id"), listingID); err != nil {
		if err == repository.ErrFavoriteNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Favorites not added.")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to remove favorite")
		return
	}

	h.coherent.FavoritesChanged(c.Request.Context(), c.GetString("username"))
	response.Success(c, http.StatusOK, gin.H{"message": "Favorites deleted."})
}

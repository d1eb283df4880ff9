package middleware

import (
	"context"
	"net/http"

	"homestay/internal/domain"
	"homestay/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserDirectory is the lookup the ban gate needs from the identity service.
type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// NotBanned rejects banned principals before any mutation runs.
func NotBanned(users UserDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt64("user_id")
		if userID == 0 {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}

		u, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unknown user")
			c.Abort()
			return
		}
		if u.Banned {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Account is banned")
			c.Abort()
			return
		}

		c.Next()
	}
}

package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BiniyamTG/Injera-Beyond/models"
	"github.com/BiniyamTG/Injera-Beyond/services"
)

// CurrentUserKey is where the authenticated user lands in the gin context.
const CurrentUserKey = "currentUser"

// AuthMiddleware extracts the bearer token, resolves it to a user and aborts
// with 401 on a bad token or 404 when the subject no longer exists.
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidToken):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			case errors.Is(err, services.ErrNotFound):
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
			}
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// CurrentUser pulls the authenticated user set by AuthMiddleware.
func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet(CurrentUserKey).(*models.User)
}

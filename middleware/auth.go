package middleware

import (
	"net/http"
	"strings"

	"hotel-booking-backend/services"

	"github.com/gin-gonic/gin"
)

// RequireAuth resolves the bearer token to a user and stores it on the
// context as "currentUser". Requests without a valid, unexpired token get
// a 401 and never reach the handler.
func RequireAuth(userSvc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		user, err := userSvc.GetByToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("currentUser", user)
		c.Next()
	}
}

package delivery

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"photocards-backend/internal/auth/usecase"
)

// ContextUserID is the gin context key the middleware stores the
// authenticated user id under.
const ContextUserID = "userID"

const bearerPrefix = "Bearer "

// AuthMiddleware gates protected routes. It requires a Bearer token in the
// Authorization header and aborts with 401 on any failure; the rest of the
// chain never runs for an unauthenticated request.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authorization required"})
			return
		}

		userID, err := authUsecase.ValidateToken(strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

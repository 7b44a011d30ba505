package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"devnetwork-backend/pkg/jwt"
)

// UserIDKey is the gin context key carrying the authenticated user's ID
const UserIDKey = "user_id"

// AuthMiddleware verifies the bearer token and stores the caller's
// identity ID in the request context. Protected handlers read it back
// with GetUserID.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"msg": "No token, authorization denied"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(401, gin.H{"msg": "No token, authorization denied"})
			c.Abort()
			return
		}

		userIDStr, err := manager.ValidateToken(parts[1])
		if err != nil {
			c.JSON(401, gin.H{"msg": "Token is not valid"})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			c.JSON(401, gin.H{"msg": "Token is not valid"})
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// GetUserID reads the authenticated user's ID set by AuthMiddleware
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

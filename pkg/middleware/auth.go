package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mahimamj/bdspro/models"
)

const (
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
)

// TokenParser validates an auth token and yields its claims.
type TokenParser interface {
	ParseToken(token string) (models.TokenClaims, error)
}

// UserIdentity requires a valid Bearer token and puts the caller's identity
// into the request context.
func UserIdentity(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		claims, err := parser.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Next()
	}
}

// AdminOnly restricts a route group to the configured admin account. It must
// run after UserIdentity.
func AdminOnly(adminEmail string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(UserEmailKey)
		if adminEmail == "" || email != adminEmail {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// UserID extracts the authenticated user id set by UserIdentity.
func UserID(c *gin.Context) int64 {
	id, _ := c.Get(UserIDKey)
	v, _ := id.(int64)
	return v
}

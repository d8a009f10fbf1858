package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminRequired guards moderation endpoints. The key travels in the
// X-Admin-Key header and is checked against the bcrypt hash in
// ADMIN_KEY_HASH. No hash configured means moderation is disabled.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		hash := os.Getenv("ADMIN_KEY_HASH")
		if hash == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "moderation disabled"})
			return
		}

		key := c.GetHeader("X-Admin-Key")
		if key == "" || bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

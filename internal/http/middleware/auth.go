package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextAdminEmailKey is the gin context key holding the authenticated admin
// identity.
const ContextAdminEmailKey = "adminEmail"

type TokenParser interface {
	Parse(raw string) (string, error)
}

// Auth validates the bearer token and stores the admin identity on the
// context. The core services never see auth; it lives entirely at this
// boundary.
func Auth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		email, err := parser.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextAdminEmailKey, email)
		c.Next()
	}
}

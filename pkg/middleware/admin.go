package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminKeyHeader carries the shared admin secret.
const AdminKeyHeader = "X-Admin-Key"

// AdminGate classifies requests as admin-authorized or not. A request is
// authorized iff the header value equals the configured secret; an empty
// secret denies everything. Login and signup routes are never gated.
type AdminGate struct {
	secret string
}

func NewAdminGate(secret string) *AdminGate {
	return &AdminGate{secret: secret}
}

// Authorize reports whether headerValue grants admin access.
func (g *AdminGate) Authorize(headerValue string) bool {
	return g.secret != "" && headerValue == g.secret
}

// Require returns a Gin middleware rejecting non-admin requests with 401.
func (g *AdminGate) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(AdminKeyHeader)
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing " + AdminKeyHeader + " header"})
			return
		}
		if !g.Authorize(key) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid admin key"})
			return
		}
		c.Set("admin", true)
		c.Next()
	}
}

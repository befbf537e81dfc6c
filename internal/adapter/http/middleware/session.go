package middleware

import (
	"net/http"
	"strings"

	"paysadmin/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ctxKeySessionKey    = "session_key"
	ctxKeyUpstreamToken = "upstream_token"
)

// SessionAuth resolves the bearer session key to the stored upstream token
// and injects both into the request context. Requests without a valid
// session are rejected before any handler runs.
func SessionAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer <session key>"})
			c.Abort()
			return
		}

		key := strings.TrimSpace(parts[1])
		token, err := auth.Resolve(c.Request.Context(), key)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session not found or expired"})
			c.Abort()
			return
		}

		c.Set(ctxKeySessionKey, key)
		c.Set(ctxKeyUpstreamToken, token)
		c.Next()
	}
}

// SessionKey returns the caller's session key, empty when unauthenticated.
func SessionKey(c *gin.Context) string {
	return c.GetString(ctxKeySessionKey)
}

// UpstreamToken returns the resolved upstream bearer token, empty when
// unauthenticated.
func UpstreamToken(c *gin.Context) string {
	return c.GetString(ctxKeyUpstreamToken)
}

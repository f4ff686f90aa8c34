package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lexdraft/internal/domain"
)

const (
	HeaderClientKey     = "X-Client-ID"
	ContextKeyClientKey = "client_key"
)

// maxClientKeyLen bounds the client key; it becomes part of a storage key.
const maxClientKeyLen = 128

// ClientKey requires the X-Client-ID header and stores it in the context.
// The key scopes saved profiles to one browser or installation.
func ClientKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(HeaderClientKey))
		if key == "" || len(key) > maxClientKeyLen || strings.ContainsAny(key, ":/\\ ") {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   gin.H{"code": "MISSING_CLIENT_KEY", "message": "a valid X-Client-ID header is required"},
			})
			return
		}
		c.Set(ContextKeyClientKey, key)
		c.Next()
	}
}

// GetClientKey extracts the client key from the Gin context.
func GetClientKey(c *gin.Context) (string, error) {
	key := c.GetString(ContextKeyClientKey)
	if key == "" {
		return "", domain.ErrMissingClientKey
	}
	return key, nil
}

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"lexdraft/internal/domain"
	"lexdraft/internal/middleware"
)

func clientKeyRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.ClientKey())
	r.GET("/test", func(c *gin.Context) {
		key, err := middleware.GetClientKey(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, key)
	})
	return r
}

func TestClientKey_Present(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("X-Client-ID", " browser-42 ")
	clientKeyRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "browser-42", w.Body.String())
}

func TestClientKey_Rejected(t *testing.T) {
	for name, value := range map[string]string{
		"missing":   "",
		"separator": "a:b",
		"too long":  strings.Repeat("k", 129),
	} {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
			if value != "" {
				req.Header.Set("X-Client-ID", value)
			}
			clientKeyRouter().ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "MISSING_CLIENT_KEY")
		})
	}
}

func TestGetClientKey_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := middleware.GetClientKey(c)

	assert.ErrorIs(t, err, domain.ErrMissingClientKey)
}

//go:build unit

package middleware_test

import (
	"net/http"
	"strings"
	"testing"

	"bookmyvenue/internal/handler/middleware"
	"bookmyvenue/internal/pkg/config"
	"bookmyvenue/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORSExposesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins:  []string{"http://localhost:5173"},
		AllowMethods:  []string{"GET"},
		AllowHeaders:  []string{"Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.Perform(t, r, httptest.Request{
		Method:  http.MethodGet,
		Path:    "/ping",
		Headers: map[string]string{"Origin": "http://localhost:5173"},
	})

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	// gin-contrib/cors canonicalizes header names
	assert.Contains(t, strings.ToLower(w.Header().Get("Access-Control-Expose-Headers")), "x-request-id")

	w = httptest.Perform(t, r, httptest.Request{
		Method:  http.MethodGet,
		Path:    "/ping",
		Headers: map[string]string{"Origin": "http://evil.example"},
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

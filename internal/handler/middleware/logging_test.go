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
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddlewareRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.NewTestConfig().Log)

	r := gin.New()
	r.Use(logger.LoggingMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.Perform(t, r, httptest.Request{Method: http.MethodGet, Path: "/ping"})

		id := w.Header().Get(middleware.RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("propagated from the caller", func(t *testing.T) {
		w := httptest.Perform(t, r, httptest.Request{
			Method:  http.MethodGet,
			Path:    "/ping",
			Headers: map[string]string{middleware.RequestIDHeader: "trace-42"},
		})
		assert.Equal(t, "trace-42", w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "trace-42", w.Body.String())
	})

	t.Run("oversized ids are replaced", func(t *testing.T) {
		long := strings.Repeat("x", 100)
		w := httptest.Perform(t, r, httptest.Request{
			Method:  http.MethodGet,
			Path:    "/ping",
			Headers: map[string]string{middleware.RequestIDHeader: long},
		})
		assert.NotEqual(t, long, w.Header().Get(middleware.RequestIDHeader))
	})
}

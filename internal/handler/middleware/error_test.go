//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"bookmyvenue/internal/domain/booking"
	"bookmyvenue/internal/handler/httperr"
	"bookmyvenue/internal/handler/middleware"
	"bookmyvenue/internal/pkg/errs"
	"bookmyvenue/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())

	r.GET("/aborted", func(c *gin.Context) {
		httperr.Abort(c, booking.ErrSlotConflict)
	})
	r.GET("/attached", func(c *gin.Context) {
		_ = c.Error(errs.Wrap(booking.ErrInvalidTransition, "confirm"))
	})
	r.GET("/unknown", func(c *gin.Context) {
		_ = c.Error(errors.New("disk on fire"))
	})
	r.GET("/no-content", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/silent", func(c *gin.Context) {})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	tests := []struct {
		path   string
		status int
		kind   string
	}{
		{"/aborted", http.StatusConflict, "SlotConflict"},
		{"/attached", http.StatusConflict, "InvalidTransition"},
		{"/unknown", http.StatusInternalServerError, "Internal"},
		{"/silent", http.StatusInternalServerError, "Internal"},
		{"/panic", http.StatusInternalServerError, "Internal"},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.PerformRequest(t, r, http.MethodGet, tc.path, nil, "")
			httptest.AssertErrorKind(t, w, tc.status, tc.kind)
		})
	}

	t.Run("/no-content", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/no-content", nil, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

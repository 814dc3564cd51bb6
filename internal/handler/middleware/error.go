package middleware

import (
	"log/slog"
	"net/http"

	"bookmyvenue/internal/handler/httperr"
	"bookmyvenue/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors that handlers attached with c.Error but did not write.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if last := c.Errors.Last(); last != nil {
			status, kind, msg := httperr.Classify(last.Err)
			if status == http.StatusInternalServerError {
				slog.Error("Unhandled request error",
					"request_id", GetRequestID(c),
					"path", c.FullPath(),
					"error", last.Err.Error(),
					"stack", errs.ExtractStackLines(last.Err, 8))
			}
			c.JSON(status, httperr.NewResponse(status, kind, msg))
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, "Internal", "Internal server error"))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("Recovered from panic", "request_id", GetRequestID(c), "error", err, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, "Internal", "Internal server error"))
			}
		}()
		c.Next()
	}
}

package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error body every endpoint returns:
// {"error":{"message":...},"detail":{"kind":...}}.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail *Detail `json:"detail,omitempty"`
}

// Detail is the machine-readable part of an error body.
type Detail struct {
	Kind string `json:"kind"`
}

func NewResponse(status int, kind, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	if kind != "" {
		resp.Detail = &Detail{Kind: kind}
	}
	return resp
}

// AbortWith writes the body and keeps err on the context for the logging middleware.
func AbortWith(c *gin.Context, status int, kind, msg string, err error) {
	if err == nil {
		panic("httperr.AbortWith: err cannot be nil")
	}
	resp := NewResponse(status, kind, msg)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// errorBody mirrors httperr.Response on the wire.
type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail struct {
		Kind string `json:"kind"`
	} `json:"detail"`
}

// AssertSuccessResponse checks the status and, for 2xx with a non-nil target, decodes the body into it.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "Response: %s", w.Body.String()) {
		return
	}
	if target == nil || w.Code < 200 || w.Code >= 300 {
		return
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "undecodable body: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that error.message contains msg. An empty msg skips the message check.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, msg string) {
	t.Helper()

	body, ok := decodeError(t, w, expectedStatus)
	if ok && msg != "" {
		assert.Contains(t, body.Error.Message, msg)
	}
}

// AssertErrorKind checks the status and the machine-readable detail.kind of an error body.
func AssertErrorKind(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, kind string) {
	t.Helper()

	if body, ok := decodeError(t, w, expectedStatus); ok {
		assert.Equal(t, kind, body.Detail.Kind)
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int) (errorBody, bool) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "Response: %s", w.Body.String())

	var body errorBody
	ok := assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "undecodable error body: %s", w.Body.String())
	return body, ok
}

package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// DoJSON sends a JSON request against an engine and returns the recorder.
// A non-nil body is marshalled to JSON; token, when set, is sent as a
// bearer credential.
func DoJSON(t *testing.T, engine *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err, "Failed to marshal request body")
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// DoForm sends a form-encoded request against an engine.
func DoForm(t *testing.T, engine *gin.Engine, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// ParseJSON decodes a recorder body into a generic map.
func ParseJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var result map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err, "Failed to parse JSON response")
	return result
}

// EnvelopeData returns the data field of a success envelope.
func EnvelopeData(t *testing.T, w *httptest.ResponseRecorder) any {
	t.Helper()

	result := ParseJSON(t, w)
	require.Equal(t, true, result["success"], "Expected a success envelope: %s", w.Body.String())
	return result["data"]
}

// EnvelopeErrorCode returns the error code of an error envelope.
func EnvelopeErrorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	result := ParseJSON(t, w)
	errObj, ok := result["error"].(map[string]any)
	require.True(t, ok, "Expected an error envelope: %s", w.Body.String())
	code, _ := errObj["code"].(string)
	return code
}

// RequireStatus asserts the HTTP status code with the body on failure.
func RequireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "Unexpected status: %s", w.Body.String())
}

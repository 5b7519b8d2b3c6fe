package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
)

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewRequest creates a new HTTP request for testing. A string body is sent verbatim.
func NewRequest(method, path string, body interface{}) *http.Request {
	var r *http.Request
	switch b := body.(type) {
	case nil:
		r = httptest.NewRequest(method, path, nil)
	case string:
		r = httptest.NewRequest(method, path, strings.NewReader(b))
	default:
		bodyBytes, _ := json.Marshal(b)
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	}
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		_ = json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}

// Data returns the "data" object of an envelope, or nil.
func (rr RecordResponse) Data() map[string]interface{} {
	data, _ := rr.Body["data"].(map[string]interface{})
	return data
}

// AssertResponseCode checks if the response code matches expected
func AssertResponseCode(t interface {
	Errorf(format string, args ...any)
}, got, want int) {
	if got != want {
		t.Errorf("got status code %d, want %d", got, want)
	}
}

// AssertResponseBody checks if the response body contains expected field
func AssertResponseBody(t interface {
	Errorf(format string, args ...any)
}, body map[string]interface{}, key string, expectedValue interface{}) {
	value, ok := body[key]
	if !ok {
		t.Errorf("response body missing key %q", key)
		return
	}
	if value != expectedValue {
		t.Errorf("got %q for key %q, want %q", value, key, expectedValue)
	}
}

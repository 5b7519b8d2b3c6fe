package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /books/{bookId}", func(w http.ResponseWriter, r *http.Request) {
		JSONFail(w, http.StatusNotFound, "Book not found")
	})
	handler := metrics.Middleware(mux)

	for _, path := range []string{"/books/a", "/books/b", "/nowhere"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	expected := `
# HELP bookshelf_http_requests_total HTTP requests by route, method and status code.
# TYPE bookshelf_http_requests_total counter
bookshelf_http_requests_total{code="404",method="GET",route="GET /books/{bookId}"} 2
bookshelf_http_requests_total{code="404",method="GET",route="unmatched"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "bookshelf_http_requests_total"))

	count, err := testutil.GatherAndCount(reg, "bookshelf_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

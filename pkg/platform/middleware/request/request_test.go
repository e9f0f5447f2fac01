package request

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pessoas/pkg/requestcontext"
)

func TestRequestID(t *testing.T) {
	serve := func(header string) (string, string) {
		var captured string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = GetRequestID(r.Context())
		}))
		req := httptest.NewRequest(http.MethodGet, "/contagem-pessoas", nil)
		if header != "" {
			req.Header.Set("X-Request-ID", header)
		}
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return captured, w.Header().Get("X-Request-ID")
	}

	t.Run("generates UUID when no header provided", func(t *testing.T) {
		captured, header := serve("")
		assert.Len(t, captured, 36)
		assert.Equal(t, captured, header)
	})

	t.Run("accepts valid client-provided ID", func(t *testing.T) {
		captured, header := serve("trace.span_1234")
		assert.Equal(t, "trace.span_1234", captured)
		assert.Equal(t, "trace.span_1234", header)
	})

	t.Run("replaces unsafe IDs", func(t *testing.T) {
		for _, bad := range []string{
			strings.Repeat("a", MaxRequestIDLength+1),
			"valid\ninjected-log-line",
			"request id",
			`request"id`,
			"request;id",
		} {
			captured, header := serve(bad)
			assert.NotEqual(t, bad, captured)
			assert.Len(t, header, 36)
		}
	})

	t.Run("accepts ID at exactly max length", func(t *testing.T) {
		id := strings.Repeat("a", MaxRequestIDLength)
		captured, _ := serve(id)
		assert.Equal(t, id, captured)
	})
}

func TestRecovery(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	handler := Recovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pessoas", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, logs.String(), "panic recovered")
}

func TestLogger_SkipsHealthyProbes(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	handler := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Empty(t, logs.String())

	req := httptest.NewRequest(http.MethodGet, "/contagem-pessoas", nil)
	req = req.WithContext(requestcontext.WithClientMetadata(req.Context(), "192.168.1.47", "curl/8.0", "curl"))
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Contains(t, logs.String(), `"path":"/contagem-pessoas"`)
	assert.Contains(t, logs.String(), `"remote_addr_prefix":"192.168.1.0"`)
	assert.Contains(t, logs.String(), `"device":"curl"`)
}

func TestContentTypeJSON(t *testing.T) {
	handler := ContentTypeJSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	cases := map[string]int{
		"application/json":                http.StatusOK,
		"application/json; charset=utf-8": http.StatusOK,
		"":                                http.StatusOK,
		"text/plain":                      http.StatusUnsupportedMediaType,
	}
	for ct, want := range cases {
		req := httptest.NewRequest(http.MethodPost, "/pessoas", strings.NewReader("{}"))
		if ct != "" {
			req.Header.Set("Content-Type", ct)
		}
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, "content type %q", ct)
	}
}

func TestRequestTime(t *testing.T) {
	var first, second time.Time
	handler := RequestTime(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		first = requestcontext.Now(r.Context())
		time.Sleep(2 * time.Millisecond)
		second = requestcontext.Now(r.Context())
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, first, second)
}

func TestLatencyMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	handler := LatencyMiddleware(m, func(*http.Request) string { return "/pessoas/{id}" })(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/pessoas/abc", nil))

	count, err := testutil.GatherAndCount(reg, "pessoas_endpoint_latency_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

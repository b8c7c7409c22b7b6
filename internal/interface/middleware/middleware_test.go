package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-user-directory/pkg/audit"
)

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))
	})

	t.Run("keeps inbound id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Body.String())
	})
}

func TestRealIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{name: "cloudflare header wins", headers: map[string]string{"CF-Connecting-IP": "203.0.113.7", "X-Forwarded-For": "198.51.100.1"}, expected: "203.0.113.7"},
		{name: "left-most forwarded", headers: map[string]string{"X-Forwarded-For": "198.51.100.1, 10.0.0.1"}, expected: "198.51.100.1"},
		{name: "garbage falls back", headers: map[string]string{"CF-Connecting-IP": "nope", "X-Forwarded-For": "nope"}, expected: "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(RealIP())
			r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RealIPKey)) })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expected, w.Body.String())
		})
	}
}

func TestAuditMeta(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var got audit.Meta

	r := gin.New()
	r.Use(RequestIDMiddleware(), RealIP(), AuditMeta())
	r.GET("/", func(c *gin.Context) {
		got = audit.MetaFrom(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	req.Header.Set("X-Forwarded-For", "198.51.100.9")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, audit.Meta{RequestID: "req-1", IP: "198.51.100.9"}, got)
}

func TestAccessLog(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	r := gin.New()
	r.Use(RequestIDMiddleware(), AccessLog(logger))
	r.GET("/users", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	r.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"request_id":"req-42"`)
	assert.Contains(t, out, `"path":"/users"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, "request completed")
}

func TestHTTPMetricsHandlerRecordsMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	registry := prometheus.NewRegistry()
	metrics, err := NewHTTPMetrics(HTTPMetricsOptions{Registerer: registry})
	require.NoError(t, err)

	r := gin.New()
	r.Use(metrics.Handler())
	r.GET("/users/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/abc", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	routed := prometheus.Labels{"method": http.MethodGet, "route": "/users/:id", "status": "404"}
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.Requests.With(routed)))

	unmatched := prometheus.Labels{"method": http.MethodGet, "route": "unmatched", "status": "404"}
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.Requests.With(unmatched)))

	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.InFlight))
	assert.Positive(t, testutil.CollectAndCount(metrics.Duration))
}

func TestNewHTTPMetricsReusesRegisteredCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()

	first, err := NewHTTPMetrics(HTTPMetricsOptions{Registerer: registry})
	require.NoError(t, err)
	second, err := NewHTTPMetrics(HTTPMetricsOptions{Registerer: registry})
	require.NoError(t, err)

	assert.Same(t, first.Requests, second.Requests)
}

package telemetry

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/eleven-am/metric-frames/internal/shared"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveUpstream(t *testing.T) {
	m := New()
	m.ObserveUpstream(http.StatusOK, 20*time.Millisecond)
	m.ObserveUpstream(http.StatusOK, 30*time.Millisecond)
	m.ObserveUpstream(0, time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("0")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.upstreamDuration))
}

func TestMetrics_Middleware(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/fail", func(c echo.Context) error {
		return shared.NoData("nothing")
	})
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("boom")
	})

	for _, path := range []string{"/ok", "/ok", "/fail", "/boom"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/ok", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/fail", "502")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/boom", "500")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveUpstream(http.StatusTooManyRequests, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `metric_frames_upstream_requests_total{status="429"} 1`), body)
	assert.Contains(t, body, "go_goroutines")
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/lvnb04/cloudtrack/internal/metrics"
)

func TestMetrics_RecordsRequestCount(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.Use(Metrics())
	e.GET("/test/counted", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	before := ptestutil.ToFloat64(
		metrics.HTTPRequestsTotal.WithLabelValues("GET", "/test/counted", "200"),
	)

	req := httptest.NewRequest(http.MethodGet, "/test/counted", http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	after := ptestutil.ToFloat64(
		metrics.HTTPRequestsTotal.WithLabelValues("GET", "/test/counted", "200"),
	)
	assert.Equal(t, before+1, after)
}

func TestMetrics_RouteTemplateLabel(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.Use(Metrics())
	e.GET("/test/items/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test/items/abc123", http.NoBody)
	e.ServeHTTP(httptest.NewRecorder(), req)

	// The label is the route template, not the concrete path.
	got := ptestutil.ToFloat64(
		metrics.HTTPRequestsTotal.WithLabelValues("GET", "/test/items/:id", "200"),
	)
	assert.Equal(t, float64(1), got)
}

func TestMetrics_HealthGauges(t *testing.T) {
	e := echo.New()
	e.Use(Metrics())
	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/readyz", func(c echo.Context) error {
		return c.NoContent(http.StatusServiceUnavailable)
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	e.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, float64(1), ptestutil.ToFloat64(metrics.HealthzUp))

	req = httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody)
	e.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, float64(0), ptestutil.ToFloat64(metrics.ReadyzUp))
}

package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvnb04/cloudtrack/pkg/logger"
)

func doRequest(
	t *testing.T,
	handler echo.HandlerFunc,
	headers map[string]string,
) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "info", "json")

	e := echo.New()
	e.Use(RequestLog(log))
	e.GET("/api/v1/products", handler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", http.NoBody)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return rec, entry
}

func TestRequestLog_GeneratesRequestID(t *testing.T) {
	t.Parallel()

	rec, entry := doRequest(t, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, nil)

	id := rec.Header().Get(requestIDHeader)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, entry["request_id"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/v1/products", entry["path"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
}

func TestRequestLog_PropagatesClientRequestID(t *testing.T) {
	t.Parallel()

	rec, entry := doRequest(t, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, map[string]string{requestIDHeader: "client-id-123"})

	assert.Equal(t, "client-id-123", rec.Header().Get(requestIDHeader))
	assert.Equal(t, "client-id-123", entry["request_id"])
}

func TestRequestLog_LevelByStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "success logs info", status: http.StatusOK, wantLevel: "INFO"},
		{name: "client error logs warn", status: http.StatusBadRequest, wantLevel: "WARN"},
		{name: "server error logs error", status: http.StatusInternalServerError, wantLevel: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, entry := doRequest(t, func(c echo.Context) error {
				return c.NoContent(tt.status)
			}, nil)

			assert.Equal(t, tt.wantLevel, entry["level"])
		})
	}
}

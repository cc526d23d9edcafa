package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/lvnb04/cloudtrack/pkg/logger"
)

func TestRecovery_PanicReturns500(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "info", "text")

	e := echo.New()
	e.Use(Recovery(log))
	e.GET("/boom", func(echo.Context) error {
		panic("something went wrong")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")

	out := buf.String()
	assert.Contains(t, out, "panic recovered")
	assert.Contains(t, out, "something went wrong")
	assert.Contains(t, out, "recovery_test.go")
}

func TestRecovery_NormalRequestUntouched(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "info", "text")

	e := echo.New()
	e.Use(Recovery(log))
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "fine")
	})

	req := httptest.NewRequest(http.MethodGet, "/ok", http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fine", rec.Body.String())
	assert.Empty(t, buf.String())
}

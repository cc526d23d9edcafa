package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lvnb04/cloudtrack/internal/metrics"
)

// Metrics returns Echo middleware that records request duration and count
// per method, route, and status. The operational endpoints are handled
// separately: /healthz and /readyz drive 0/1 gauges instead of the
// histogram, and /metrics itself is not measured at all.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Prefer the route template so path params don't explode
			// label cardinality.
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			switch path {
			case "/metrics":
				return next(c)
			case "/healthz":
				err := next(c)
				setGauge(metrics.HealthzUp, c.Response().Status)
				return err
			case "/readyz":
				err := next(c)
				setGauge(metrics.ReadyzUp, c.Response().Status)
				return err
			}

			start := time.Now()
			err := next(c)

			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method

			metrics.HTTPRequestDuration.
				WithLabelValues(method, path, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, path, status).
				Inc()

			return err
		}
	}
}

func setGauge(g interface{ Set(float64) }, status int) {
	if status >= 200 && status < 300 {
		g.Set(1)
	} else {
		g.Set(0)
	}
}

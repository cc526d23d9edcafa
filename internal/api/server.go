// Package api assembles the HTTP server: routes, middleware, and the
// OpenAPI surface.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lvnb04/cloudtrack/internal/api/handlers"
	"github.com/lvnb04/cloudtrack/internal/api/middleware"
	"github.com/lvnb04/cloudtrack/internal/store"
)

// Server holds the assembled echo instance and its dependencies.
type Server struct {
	Echo *echo.Echo
}

// NewServer builds the HTTP server with all routes registered. The
// onboarding endpoints are plain echo handlers; evaluation and state go
// through huma so they appear in the generated OpenAPI document.
func NewServer(
	s store.Store,
	onboarder handlers.Onboarder,
	evaluator handlers.Evaluator,
	log *slog.Logger,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Recovery(log))
	e.Use(middleware.Metrics())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodPost, http.MethodGet, http.MethodOptions},
	}))

	healthH := handlers.NewHealthHandler(s)
	e.GET("/healthz", healthH.Healthz)
	e.GET("/readyz", healthH.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	productH := handlers.NewProductHandler(onboarder, s)
	e.POST("/api/v1/products", productH.Onboard)
	e.GET("/api/v1/products", productH.List)
	e.GET("/api/v1/products/:id", productH.Get)

	humaCfg := huma.DefaultConfig("cloudtrack", "1.0.0")
	humaCfg.Info.Description = "Product price and stock tracking with alerting."
	humaAPI := humaecho.New(e, humaCfg)

	handlers.RegisterEvaluateRoutes(humaAPI, handlers.NewEvaluateHandler(evaluator))

	return &Server{Echo: e}
}

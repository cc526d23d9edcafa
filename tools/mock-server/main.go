// Package main implements a mock scraping proxy for local development.
// It serves a canned product page HTML fixture so the evaluation loop and
// onboarding flow can run without a real scraping API key or live retailer
// pages.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/product_page.html", "path to product page fixture")
	outOfStock := flag.Bool("out-of-stock", false, "serve the fixture with the availability block removed")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	page, err := loadFixture(*fixtureFile, *outOfStock)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "bytes", len(page), "out_of_stock", *outOfStock)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /", scrapeHandler(logger, page))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock scraping proxy", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// loadFixture reads the product page fixture. With outOfStock set, the
// availability block is stripped so the parser reports OUT_OF_STOCK.
func loadFixture(path string, outOfStock bool) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	if outOfStock {
		data = stripAvailability(data)
	}
	return data, nil
}

// stripAvailability blanks the availability block's text. The real parser
// treats a missing or unrecognised block as OUT_OF_STOCK. Matching is on
// the id attribute, not the full tag, since the block carries styling
// classes that vary.
func stripAvailability(page []byte) []byte {
	s := string(page)
	attr := strings.Index(s, `id="availability"`)
	if attr < 0 {
		return page
	}
	open := strings.LastIndex(s[:attr], "<")
	tagEnd := strings.Index(s[attr:], ">")
	if open < 0 || tagEnd < 0 {
		return page
	}
	tagEnd += attr + 1
	end := strings.Index(s[tagEnd:], "</div>")
	if end < 0 {
		return page
	}
	return []byte(s[:tagEnd] + s[tagEnd+end:])
}

// scrapeHandler mimics the scraping proxy contract: the API key and target
// URL travel as query parameters, the response body is raw product page HTML.
func scrapeHandler(logger *slog.Logger, page []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_key") == "" {
			logger.Warn("scrape request missing api_key")
			http.Error(w, "missing api_key", http.StatusUnauthorized)
			return
		}

		target := r.URL.Query().Get("url")
		if target == "" {
			logger.Warn("scrape request missing url")
			http.Error(w, "missing url", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		w.Write(page)
		logger.Info("served product page", "url", target)
	}
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

// Package scraper provides the product state provider: a scraping API
// client that turns a product URL into a best-effort snapshot of name,
// price, image, and stock. The engine depends only on the Provider
// interface, never on the concrete client.
package scraper

import (
	"context"
	"errors"

	domain "github.com/lvnb04/cloudtrack/pkg/types"
)

// ErrFetchFailed is returned when a product page could not be retrieved or
// yielded no recognizable product. Callers treat it as a transient per-item
// failure.
var ErrFetchFailed = errors.New("product fetch failed")

// Provider defines the interface for fetching a product state snapshot.
type Provider interface {
	Fetch(ctx context.Context, url string) (*domain.Snapshot, error)
}

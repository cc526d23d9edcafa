// Package store defines the catalog persistence abstraction for cloudtrack.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"

	domain "github.com/lvnb04/cloudtrack/pkg/types"
)

// ErrNotFound is returned when no tracked item exists for the given identity.
var ErrNotFound = errors.New("tracked item not found")

// Store defines all data access operations for the tracking catalog.
// PutItem is the onboarding write path (full overwrite, last-write-wins per
// canonical identity); UpdateItemState is the evaluation engine's only
// mutation and touches exactly the two transition fields in one statement.
type Store interface {
	// Items
	PutItem(ctx context.Context, item *domain.TrackedItem) error
	GetItem(ctx context.Context, id string) (*domain.TrackedItem, error)
	ListItems(ctx context.Context) ([]domain.TrackedItem, error)
	UpdateItemState(
		ctx context.Context,
		id string,
		stock domain.StockStatus,
		notifyOnStock bool,
	) error
	CountItems(ctx context.Context) (int, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}

//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/lvnb04/cloudtrack/internal/store"
	domain "github.com/lvnb04/cloudtrack/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("cloudtrack_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func testItem() *domain.TrackedItem {
	return &domain.TrackedItem{
		ID:              "https://www.amazon.in/dp/B0TESTXXXX",
		TargetPriceLow:  decimal.RequireFromString("500"),
		LastKnownPrice:  decimal.RequireFromString("600.50"),
		ServiceType:     domain.ServiceBoth,
		NotifyOnStock:   true,
		Channel:         domain.ChannelEmail,
		Target:          "u@example.com",
		ProductName:     "Widget Deluxe",
		ProductImageURL: "https://images.example.com/widget.jpg",
		LastKnownStock:  domain.OutOfStock,
	}
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_PutGetItem(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	item := testItem()
	require.NoError(t, s.PutItem(ctx, item))
	assert.False(t, item.DateAdded.IsZero())

	got, err := s.GetItem(ctx, item.ID)
	require.NoError(t, err)

	assert.Equal(t, item.ID, got.ID)
	assert.True(t, got.TargetPriceLow.Equal(decimal.RequireFromString("500")))
	assert.True(t, got.LastKnownPrice.Equal(decimal.RequireFromString("600.50")))
	assert.Equal(t, domain.ServiceBoth, got.ServiceType)
	assert.True(t, got.NotifyOnStock)
	assert.Equal(t, domain.ChannelEmail, got.Channel)
	assert.Equal(t, "u@example.com", got.Target)
	assert.Equal(t, "Widget Deluxe", got.ProductName)
	assert.Equal(t, domain.OutOfStock, got.LastKnownStock)
}

func TestPostgresStore_PutItem_Overwrites(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	item := testItem()
	require.NoError(t, s.PutItem(ctx, item))

	// Second onboarding for the same identity is last-write-wins.
	item.TargetPriceLow = decimal.RequireFromString("450")
	item.ServiceType = domain.ServicePrice
	item.NotifyOnStock = false
	item.Target = "other@example.com"
	require.NoError(t, s.PutItem(ctx, item))

	got, err := s.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, got.TargetPriceLow.Equal(decimal.RequireFromString("450")))
	assert.Equal(t, domain.ServicePrice, got.ServiceType)
	assert.False(t, got.NotifyOnStock)
	assert.Equal(t, "other@example.com", got.Target)

	n, err := s.CountItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPostgresStore_GetItem_NotFound(t *testing.T) {
	s := setupPostgres(t)

	_, err := s.GetItem(context.Background(), "https://www.amazon.in/dp/B0MISSING0")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostgresStore_ListItems(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	first := testItem()
	require.NoError(t, s.PutItem(ctx, first))

	second := testItem()
	second.ID = "https://www.amazon.in/dp/B0SECOND00"
	second.ServiceType = domain.ServicePrice
	require.NoError(t, s.PutItem(ctx, second))

	items, err := s.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)
}

func TestPostgresStore_UpdateItemState(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	item := testItem()
	require.NoError(t, s.PutItem(ctx, item))

	require.NoError(t, s.UpdateItemState(ctx, item.ID, domain.InStock, false))

	got, err := s.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InStock, got.LastKnownStock)
	assert.False(t, got.NotifyOnStock)

	// Everything else untouched.
	assert.True(t, got.TargetPriceLow.Equal(item.TargetPriceLow))
	assert.Equal(t, item.Target, got.Target)
}

func TestPostgresStore_UpdateItemState_NotFound(t *testing.T) {
	s := setupPostgres(t)

	err := s.UpdateItemState(
		context.Background(),
		"https://www.amazon.in/dp/B0MISSING0",
		domain.InStock,
		false,
	)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostgresStore_Migrate_Idempotent(t *testing.T) {
	s := setupPostgres(t)

	// setupPostgres already migrated once; a second run is a no-op.
	require.NoError(t, s.Migrate(context.Background()))
}

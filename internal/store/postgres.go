package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domain "github.com/lvnb04/cloudtrack/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// PutItem inserts or fully overwrites a tracked item by canonical identity.
func (s *PostgresStore) PutItem(ctx context.Context, item *domain.TrackedItem) error {
	args := pgx.NamedArgs{
		"id":                   item.ID,
		"target_price_low":     item.TargetPriceLow.String(),
		"last_known_price":     item.LastKnownPrice.String(),
		"service_type":         string(item.ServiceType),
		"notify_on_stock":      item.NotifyOnStock,
		"notification_channel": string(item.Channel),
		"notification_target":  item.Target,
		"product_name":         item.ProductName,
		"product_image_url":    item.ProductImageURL,
		"last_known_stock":     string(item.LastKnownStock),
	}

	if err := s.pool.QueryRow(ctx, queryPutItem, args).Scan(&item.DateAdded); err != nil {
		return fmt.Errorf("putting item %s: %w", item.ID, err)
	}
	return nil
}

// GetItem retrieves a tracked item by its canonical identity.
func (s *PostgresStore) GetItem(ctx context.Context, id string) (*domain.TrackedItem, error) {
	item := &domain.TrackedItem{}
	err := scanItem(s.pool.QueryRow(ctx, queryGetItem, id), item)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting item %s: %w", id, err)
	}
	return item, nil
}

// ListItems returns the full tracked item set in onboarding order.
func (s *PostgresStore) ListItems(ctx context.Context) ([]domain.TrackedItem, error) {
	rows, err := s.pool.Query(ctx, queryListItems)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []domain.TrackedItem
	for rows.Next() {
		var item domain.TrackedItem
		if err := scanItem(rows, &item); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

// UpdateItemState persists the post-evaluation transition state for one item.
// Both fields are written in a single statement so the update is atomic at
// item granularity.
func (s *PostgresStore) UpdateItemState(
	ctx context.Context,
	id string,
	stock domain.StockStatus,
	notifyOnStock bool,
) error {
	tag, err := s.pool.Exec(ctx, queryUpdateItemState, id, string(stock), notifyOnStock)
	if err != nil {
		return fmt.Errorf("updating item state %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CountItems returns the total number of tracked items.
func (s *PostgresStore) CountItems(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, queryCountItems).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting items: %w", err)
	}
	return n, nil
}

// rowScanner abstracts pgx.Row and pgx.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner, item *domain.TrackedItem) error {
	var (
		targetPrice, lastPrice string
		serviceType, channel   string
		stock                  string
	)

	if err := row.Scan(
		&item.ID, &targetPrice, &lastPrice,
		&serviceType, &item.NotifyOnStock,
		&channel, &item.Target,
		&item.ProductName, &item.ProductImageURL,
		&stock, &item.DateAdded,
	); err != nil {
		return err
	}

	var err error
	if item.TargetPriceLow, err = decimal.NewFromString(targetPrice); err != nil {
		return fmt.Errorf("parsing target price %q: %w", targetPrice, err)
	}
	if item.LastKnownPrice, err = decimal.NewFromString(lastPrice); err != nil {
		return fmt.Errorf("parsing last known price %q: %w", lastPrice, err)
	}

	item.ServiceType = domain.ServiceType(serviceType)
	item.Channel = domain.Channel(channel)
	item.LastKnownStock = domain.StockStatus(stock)
	return nil
}

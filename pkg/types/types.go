// Package domain defines the core business types for CloudTrack.
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ServiceType selects which alert condition(s) a tracked item subscribes to.
type ServiceType string

// Service type constants.
const (
	ServicePrice ServiceType = "PRICE"
	ServiceStock ServiceType = "STOCK"
	ServiceBoth  ServiceType = "BOTH"
)

// ParseServiceType parses a case-insensitive service type string.
// An empty input defaults to PRICE.
func ParseServiceType(s string) (ServiceType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "PRICE":
		return ServicePrice, nil
	case "STOCK":
		return ServiceStock, nil
	case "BOTH":
		return ServiceBoth, nil
	default:
		return "", fmt.Errorf("unknown service type %q", s)
	}
}

// WantsStock reports whether the service type includes stock alerts.
func (s ServiceType) WantsStock() bool {
	return s == ServiceStock || s == ServiceBoth
}

// WantsPrice reports whether the service type includes price alerts.
func (s ServiceType) WantsPrice() bool {
	return s == ServicePrice || s == ServiceBoth
}

// StockStatus is the availability of a product at a point in time.
type StockStatus string

// Stock status constants.
const (
	InStock    StockStatus = "IN_STOCK"
	OutOfStock StockStatus = "OUT_OF_STOCK"
)

// Channel is the notification delivery variant.
type Channel string

// Channel constants.
const (
	ChannelEmail    Channel = "EMAIL"
	ChannelTelegram Channel = "TELEGRAM"
)

// ParseChannel parses a case-insensitive notification channel string.
// An empty input defaults to EMAIL.
func ParseChannel(s string) (Channel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "EMAIL":
		return ChannelEmail, nil
	case "TELEGRAM":
		return ChannelTelegram, nil
	default:
		return "", fmt.Errorf("unknown notification channel %q", s)
	}
}

// TrackedItem is one row per canonical product identity. The catalog store
// is the sole owner; onboarding creates it, the evaluation engine mutates
// LastKnownStock and NotifyOnStock, nothing in this core deletes it.
type TrackedItem struct {
	ID             string          `json:"id"                db:"id"`
	TargetPriceLow decimal.Decimal `json:"target_price_low"  db:"target_price_low"`
	LastKnownPrice decimal.Decimal `json:"last_known_price"  db:"last_known_price"`

	ServiceType   ServiceType `json:"service_type"    db:"service_type"`
	NotifyOnStock bool        `json:"notify_on_stock" db:"notify_on_stock"`

	Channel Channel `json:"notification_channel" db:"notification_channel"`
	Target  string  `json:"notification_target"  db:"notification_target"`

	ProductName     string      `json:"product_name"        db:"product_name"`
	ProductImageURL string      `json:"product_image_url"   db:"product_image_url"`
	LastKnownStock  StockStatus `json:"last_known_stock"    db:"last_known_stock"`
	DateAdded       time.Time   `json:"date_added"          db:"date_added"`
}

// Snapshot is a single point-in-time read of a product's state as returned
// by the product state provider. Price is zero when the page had no
// readable price; Stock defaults to OUT_OF_STOCK when availability could
// not be determined.
type Snapshot struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url"`
	Stock    StockStatus     `json:"stock"`
}

// CatalogState holds a snapshot of aggregate catalog counters for the
// state endpoint.
type CatalogState struct {
	ItemsTotal int `json:"items_total"`
}

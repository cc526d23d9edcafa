package client

import (
	"context"
	"net/url"

	domain "github.com/lvnb04/cloudtrack/pkg/types"
)

// TrackRequest is the onboarding request body.
type TrackRequest struct {
	URL                string `json:"url"`
	Price              string `json:"price,omitempty"`
	ServiceType        string `json:"serviceType,omitempty"`
	NotificationType   string `json:"notificationType,omitempty"`
	NotificationTarget string `json:"notificationTarget"`
}

// TrackResponse is the onboarding success response.
type TrackResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

// TrackProduct onboards a product for tracking.
func (c *Client) TrackProduct(ctx context.Context, req TrackRequest) (*TrackResponse, error) {
	var resp TrackResponse
	if err := c.post(ctx, "/api/v1/products", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListProducts returns every tracked item.
func (c *Client) ListProducts(ctx context.Context) ([]domain.TrackedItem, error) {
	var items []domain.TrackedItem
	if err := c.get(ctx, "/api/v1/products", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetProduct returns a single tracked item by its canonical identity.
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.TrackedItem, error) {
	var item domain.TrackedItem
	if err := c.get(ctx, "/api/v1/products/"+url.QueryEscape(id), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

type evaluateResponse struct {
	AlertsSent int `json:"alerts_sent"`
}

// Evaluate triggers a full catalog evaluation and returns the number of
// alerts sent.
func (c *Client) Evaluate(ctx context.Context) (int, error) {
	var resp evaluateResponse
	if err := c.post(ctx, "/api/v1/evaluate", nil, &resp); err != nil {
		return 0, err
	}
	return resp.AlertsSent, nil
}

type stateResponse struct {
	ItemsTotal int `json:"items_total"`
}

// State returns a catalog summary.
func (c *Client) State(ctx context.Context) (*domain.CatalogState, error) {
	var resp stateResponse
	if err := c.get(ctx, "/api/v1/state", &resp); err != nil {
		return nil, err
	}
	return &domain.CatalogState{ItemsTotal: resp.ItemsTotal}, nil
}

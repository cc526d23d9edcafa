// Package engine orchestrates onboarding and scheduled evaluation of
// tracked items: fetching fresh product state, applying the alert decision
// rule, dispatching notifications, and persisting transition state.
package engine

import (
	"context"
	"log/slog"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/lvnb04/cloudtrack/internal/metrics"
	"github.com/lvnb04/cloudtrack/internal/notify"
	"github.com/lvnb04/cloudtrack/internal/scraper"
	"github.com/lvnb04/cloudtrack/internal/store"
	"github.com/lvnb04/cloudtrack/pkg/identity"
	domain "github.com/lvnb04/cloudtrack/pkg/types"
)

const (
	defaultConcurrency = 4
	defaultItemTimeout = 30 * time.Second
)

// Engine orchestrates onboarding and catalog evaluation.
type Engine struct {
	store    store.Store
	provider scraper.Provider
	notifier notify.Notifier
	log      *slog.Logger

	concurrency int
	itemTimeout time.Duration
	now         func() time.Time
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	p scraper.Provider,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:       s,
		provider:    p,
		notifier:    n,
		log:         slog.Default(),
		concurrency: defaultConcurrency,
		itemTimeout: defaultItemTimeout,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithConcurrency bounds the evaluation worker pool.
func WithConcurrency(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithItemTimeout bounds the external calls made for a single item during
// evaluation.
func WithItemTimeout(d time.Duration) EngineOption {
	return func(e *Engine) {
		if d > 0 {
			e.itemTimeout = d
		}
	}
}

// WithNowFunc sets the clock, for tests.
func WithNowFunc(f func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = f
	}
}

// OnboardRequest is a validated-on-entry tracking request. Price is textual
// because that is how it arrives on the wire; it is parsed during
// validation.
type OnboardRequest struct {
	URL                string
	Price              string
	ServiceType        string
	NotificationType   string
	NotificationTarget string
}

// Onboard validates a tracking request, fetches the product's current
// state, persists the item under its canonical identity, and sends a
// confirmation. The item record is keyed by the canonical URL; onboarding
// the same product twice overwrites the prior record.
//
// The snapshot is fetched with the original URL as given, not the canonical
// form: the provider may depend on query parameters normalization strips.
func (eng *Engine) Onboard(ctx context.Context, req OnboardRequest) (*domain.TrackedItem, error) {
	serviceType, err := domain.ParseServiceType(req.ServiceType)
	if err != nil {
		metrics.OnboardingRejectedTotal.Inc()
		return nil, validationErrorf("%v", err)
	}
	channel, err := domain.ParseChannel(req.NotificationType)
	if err != nil {
		metrics.OnboardingRejectedTotal.Inc()
		return nil, validationErrorf("%v", err)
	}

	target, err := validateRequest(req, serviceType)
	if err != nil {
		metrics.OnboardingRejectedTotal.Inc()
		return nil, err
	}

	canonical := identity.Normalize(req.URL)

	snap, err := eng.provider.Fetch(ctx, req.URL)
	if err != nil {
		return nil, &ProviderFetchError{URL: req.URL, Err: err}
	}

	// Stock alerts only make sense for items that are currently
	// unavailable.
	if serviceType.WantsStock() && snap.Stock == domain.InStock {
		metrics.OnboardingRejectedTotal.Inc()
		return nil, validationErrorf(
			"product is already in stock; stock alerts require an out-of-stock item",
		)
	}

	item := &domain.TrackedItem{
		ID:              canonical,
		TargetPriceLow:  target,
		ServiceType:     serviceType,
		NotifyOnStock:   serviceType.WantsStock() && snap.Stock == domain.OutOfStock,
		Channel:         channel,
		Target:          req.NotificationTarget,
		ProductName:     snap.Name,
		ProductImageURL: snap.ImageURL,
		LastKnownPrice:  snap.Price,
		LastKnownStock:  snap.Stock,
		DateAdded:       eng.now(),
	}

	if err := eng.store.PutItem(ctx, item); err != nil {
		return nil, &StoreError{Op: "put item", Err: err}
	}

	msg := buildConfirmationMessage(item, eng.now())
	if err := eng.notifier.Send(ctx, item.Channel, item.Target, msg); err != nil {
		// The record is already persisted; the caller sees the failure
		// and may retry, which overwrites it.
		metrics.NotificationFailuresTotal.Inc()
		return nil, &DeliveryError{Channel: item.Channel, Target: item.Target, Err: err}
	}

	metrics.OnboardingTotal.Inc()
	eng.log.Info("item onboarded",
		"id", item.ID,
		"service_type", item.ServiceType,
		"channel", item.Channel,
	)

	return item, nil
}

func validateRequest(req OnboardRequest, st domain.ServiceType) (decimal.Decimal, error) {
	if req.URL == "" {
		return decimal.Zero, validationErrorf("url is required")
	}
	if u, err := url.Parse(req.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return decimal.Zero, validationErrorf("url must be a valid http(s) URL")
	}
	if req.NotificationTarget == "" {
		return decimal.Zero, validationErrorf("notificationTarget is required")
	}

	if !st.WantsPrice() {
		return decimal.Zero, nil
	}

	target, err := decimal.NewFromString(req.Price)
	if err != nil {
		return decimal.Zero, validationErrorf("price %q is not a valid decimal", req.Price)
	}
	if !target.IsPositive() {
		return decimal.Zero, validationErrorf("price must be greater than zero")
	}

	return target, nil
}

// EvaluateAll evaluates every tracked item against a fresh snapshot and
// returns the number of alerts sent. Items are independent units of work:
// a fetch, delivery, or store failure for one item is logged and never
// aborts the rest of the batch. Only a failure to enumerate the catalog
// itself is fatal.
func (eng *Engine) EvaluateAll(ctx context.Context) (int, error) {
	start := eng.now()
	defer func() {
		metrics.EvaluationDuration.Observe(time.Since(start).Seconds())
	}()

	items, err := eng.store.ListItems(ctx)
	if err != nil {
		return 0, &StoreError{Op: "list items", Err: err}
	}

	eng.log.Info("evaluation starting", "items", len(items))

	var alertsSent atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(eng.concurrency)

	for i := range items {
		item := &items[i]
		g.Go(func() error {
			if eng.evaluateItem(gctx, item) {
				alertsSent.Add(1)
			}
			return nil
		})
	}

	// Workers never return errors; item failures are isolated. Wait only
	// propagates group context cancellation, which cannot happen here.
	_ = g.Wait()

	sent := int(alertsSent.Load())
	eng.log.Info("evaluation complete",
		"items", len(items),
		"alerts_sent", sent,
		"duration", time.Since(start),
	)

	return sent, ctx.Err()
}

// evaluateItem runs the full per-item pipeline: fetch, decide, notify,
// persist. It reports whether an alert was sent.
func (eng *Engine) evaluateItem(ctx context.Context, item *domain.TrackedItem) bool {
	metrics.EvaluationItemsTotal.Inc()

	if item.Target == "" {
		eng.log.Warn("skipping item with empty notification target", "id", item.ID)
		metrics.EvaluationSkipsTotal.Inc()
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, eng.itemTimeout)
	defer cancel()

	snap, err := eng.provider.Fetch(ctx, item.ID)
	if err != nil {
		eng.log.Warn("snapshot fetch failed, skipping item", "id", item.ID, "error", err)
		metrics.EvaluationSkipsTotal.Inc()
		return false
	}

	d := Decide(item, snap)

	sent := false
	if d.AlertNeeded() {
		msg := buildAlertMessage(item, snap, d)
		if err := eng.notifier.Send(ctx, item.Channel, item.Target, msg); err != nil {
			// Lost for this run; a price alert re-triggers next run if
			// the condition still holds, a stock alert does not re-fire
			// until the next out-of-stock edge.
			eng.log.Error("alert delivery failed",
				"id", item.ID,
				"channel", item.Channel,
				"error", err,
			)
			metrics.NotificationFailuresTotal.Inc()
		} else {
			metrics.AlertsFiredTotal.Inc()
			sent = true
		}
	}

	// State must advance every run, alert or not, so the next
	// out-of-stock to in-stock edge is detected correctly.
	if err := eng.store.UpdateItemState(ctx, item.ID, d.Stock, d.NotifyOnStock); err != nil {
		eng.log.Error("state update failed", "id", item.ID, "error", err)
	}

	return sent
}

// State summarizes the catalog for the state endpoint.
func (eng *Engine) State(ctx context.Context) (*domain.CatalogState, error) {
	count, err := eng.store.CountItems(ctx)
	if err != nil {
		return nil, &StoreError{Op: "count items", Err: err}
	}
	return &domain.CatalogState{ItemsTotal: count}, nil
}

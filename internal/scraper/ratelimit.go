package scraper

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ErrDailyLimitReached is returned when the daily scraping quota has been exhausted.
var ErrDailyLimitReached = errors.New("daily scrape limit reached")

// dailyWindow is how long a scrape counts against the daily quota.
const dailyWindow = 24 * time.Hour

// RateLimiter gates scraping API calls. A token bucket bounds the
// per-second rate; on top of it a counter enforces the provider's daily
// quota over a rolling window that opens on construction and reopens
// 24 hours later.
type RateLimiter struct {
	bucket   *rate.Limiter
	maxDaily int64

	mu      sync.Mutex
	used    int64
	resetAt time.Time

	nowFunc func() time.Time
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// NewRateLimiter creates a rate limiter with the given per-second rate,
// burst size, and daily quota.
func NewRateLimiter(
	perSecond float64,
	burst int,
	maxDaily int64,
	opts ...RateLimiterOption,
) *RateLimiter {
	r := &RateLimiter{
		bucket:   rate.NewLimiter(rate.Limit(perSecond), burst),
		maxDaily: maxDaily,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.resetAt = r.nowFunc().Add(dailyWindow)
	return r
}

// Wait blocks until the token bucket allows a call or ctx is canceled.
// The daily quota is charged before the bucket wait so callers see
// ErrDailyLimitReached immediately instead of after a delay.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.charge(); err != nil {
		return err
	}

	if err := r.bucket.Wait(ctx); err != nil {
		r.refund()
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	return nil
}

// DailyCount returns how many calls the current window has used.
func (r *RateLimiter) DailyCount() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.used
}

// Remaining returns how many calls are left in the current window.
func (r *RateLimiter) Remaining() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.used >= r.maxDaily {
		return 0
	}
	return r.maxDaily - r.used
}

// charge consumes one unit of the daily quota, rolling the window
// forward first if it has expired.
func (r *RateLimiter) charge() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if now := r.nowFunc(); now.After(r.resetAt) {
		r.used = 0
		r.resetAt = now.Add(dailyWindow)
	}

	if r.used >= r.maxDaily {
		return fmt.Errorf("%w (%d/%d)", ErrDailyLimitReached, r.used, r.maxDaily)
	}
	r.used++
	return nil
}

func (r *RateLimiter) refund() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.used > 0 {
		r.used--
	}
}

// Package metrics defines Prometheus metrics for cloudtrack.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cloudtrack"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Onboarding metrics.
var (
	OnboardingTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "onboarding_total",
		Help:      "Total number of accepted onboarding requests.",
	})

	OnboardingRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "onboarding_rejected_total",
		Help:      "Total number of onboarding requests rejected by validation.",
	})
)

// Evaluation metrics.
var (
	EvaluationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "evaluation_duration_seconds",
		Help:      "Duration of catalog evaluation runs in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	EvaluationItemsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "evaluation_items_total",
		Help:      "Total number of tracked items evaluated.",
	})

	EvaluationSkipsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "evaluation_skips_total",
		Help:      "Total number of items skipped during evaluation (fetch failure or unreachable target).",
	})

	AlertsFiredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_fired_total",
		Help:      "Total number of alert notifications dispatched.",
	})

	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Total number of failed notification deliveries.",
	})
)

// Scraper API metrics.
var (
	ScrapeCallsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scrape_calls_total",
		Help:      "Total cumulative scraping API calls.",
	})

	ScrapeFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scrape_failures_total",
		Help:      "Total number of failed product state fetches.",
	})

	ScrapeDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scrape_daily_usage",
		Help:      "Current daily scraping API call count within the rolling 24-hour window.",
	})

	ScrapeDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scrape_daily_limit_hits_total",
		Help:      "Total number of scrape attempts refused by the daily quota.",
	})
)

// Health gauges.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last liveness probe succeeded, 0 otherwise.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last readiness probe succeeded, 0 otherwise.",
	})
)

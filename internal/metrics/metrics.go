package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Feedback Metrics
var (
	// FeedbackSubmittedTotal tracks stored feedback by derived sentiment
	FeedbackSubmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_submitted_total",
			Help: "Total feedback records stored, by sentiment",
		},
		[]string{"sentiment"},
	)

	// FeedbackRejectedTotal tracks submissions that failed validation
	FeedbackRejectedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_rejected_total",
			Help: "Total feedback submissions rejected by validation",
		},
	)
)

// Analytics Metrics
var (
	// AnalyticsRecomputeDuration tracks full-rescan recomputation latency in seconds
	AnalyticsRecomputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analytics_recompute_duration_seconds",
			Help:    "Analytics snapshot recomputation duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)

	// AnalyticsRecomputeErrorsTotal tracks failed recomputations
	AnalyticsRecomputeErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_recompute_errors_total",
			Help: "Total analytics recomputations that failed",
		},
	)

	// AnalyticsTotalFeedback mirrors the total of the last persisted snapshot
	AnalyticsTotalFeedback = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "analytics_feedback_total",
			Help: "Feedback count in the last persisted analytics snapshot",
		},
	)
)

// Transport Metrics
var (
	// HTTPRequestsTotal tracks REST requests by route pattern, method and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	// HTTPRequestDuration tracks REST latency in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
)

// Package metrics provides Prometheus metrics collection for the storefront core.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CatalogQueriesTotal tracks catalog queries by operation and status.
	CatalogQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_queries_total",
			Help: "Total number of catalog queries",
		},
		[]string{"operation", "status"},
	)

	// OrderSubmissionsTotal tracks order submissions by status.
	OrderSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_submissions_total",
			Help: "Total number of order submissions",
		},
		[]string{"status"},
	)

	// OrderSubmissionDuration tracks order submission duration, including the
	// simulated backend delay.
	OrderSubmissionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_submission_duration_seconds",
			Help:    "Order submission duration in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1.0, 1.5, 2.0, 5.0},
		},
	)

	// ValidationErrorsTotal tracks form validation failures by field.
	ValidationErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "form_validation_errors_total",
			Help: "Total number of form validation errors",
		},
		[]string{"field"},
	)

	// CacheOperationsTotal tracks catalog cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)
)

// RecordCatalogQuery records metrics for a catalog query.
func RecordCatalogQuery(operation, status string) {
	CatalogQueriesTotal.WithLabelValues(operation, status).Inc()
}

// RecordOrderSubmission records metrics for an order submission attempt.
func RecordOrderSubmission(duration time.Duration, status string) {
	OrderSubmissionDuration.Observe(duration.Seconds())
	OrderSubmissionsTotal.WithLabelValues(status).Inc()
}

// RecordValidationError records a validation failure for a form field.
func RecordValidationError(field string) {
	ValidationErrorsTotal.WithLabelValues(field).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheSize updates the cache size gauge.
func UpdateCacheSize(size int) {
	CacheSize.Set(float64(size))
}

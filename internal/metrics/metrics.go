// Package metrics provides Prometheus metrics for the packaging selector.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// SelectionsTotal counts packaging selections by mode (single, batch)
	// and outcome (bag, box, none).
	SelectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "packaging_selections_total",
			Help: "Total number of packaging selections",
		},
		[]string{"mode", "outcome"},
	)

	// SelectionDuration tracks packaging selection duration.
	SelectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "packaging_selection_duration_seconds",
			Help:    "Packaging selection duration in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)
)

// Outcome labels for SelectionsTotal.
const (
	OutcomeBag  = "bag"
	OutcomeBox  = "box"
	OutcomeNone = "none"
)

// RecordSelection records metrics for one packaging selection.
func RecordSelection(duration time.Duration, mode, outcome string) {
	SelectionDuration.Observe(duration.Seconds())
	SelectionsTotal.WithLabelValues(mode, outcome).Inc()
}

// Handler exposes the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware collects HTTP metrics. The path label is the matched route
// pattern so that metric cardinality stays bounded.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		path := r.Pattern
		if path == "" {
			path = "unmatched"
		}
		statusCode := strconv.Itoa(rec.status)

		HTTPRequestDuration.WithLabelValues(r.Method, path, statusCode).Observe(time.Since(start).Seconds())
		HTTPRequestTotal.WithLabelValues(r.Method, path, statusCode).Inc()
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

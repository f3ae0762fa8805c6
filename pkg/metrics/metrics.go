package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripcraft_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tripcraft_http_request_duration_seconds",
			Help:    "Duration of HTTP request handling in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripcraft_upstream_requests_total",
			Help: "Total number of calls to upstream providers",
		},
		[]string{"provider", "operation", "outcome"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tripcraft_upstream_request_duration_seconds",
			Help:    "Duration of upstream provider calls in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 60},
		},
		[]string{"provider", "operation"},
	)

	PlaceLookupsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tripcraft_place_lookups_in_flight",
			Help: "Number of image place lookups currently running on the worker pool",
		},
	)
)

// ObserveUpstream records one upstream call.
func ObserveUpstream(provider, operation string, seconds float64, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	UpstreamRequests.WithLabelValues(provider, operation, outcome).Inc()
	UpstreamDuration.WithLabelValues(provider, operation).Observe(seconds)
}

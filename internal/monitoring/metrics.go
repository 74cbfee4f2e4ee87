package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meetup_upstream_requests_total",
			Help: "Requests sent to the meetup event API",
		},
		[]string{"operation", "outcome"},
	)

	upstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meetup_upstream_request_duration_seconds",
			Help:    "Latency of meetup event API requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meetup_http_requests_total",
			Help: "HTTP requests served",
		},
		[]string{"route", "method", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meetup_http_request_duration_seconds",
			Help:    "Latency of served HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	staleDetailResults = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "meetup_detail_stale_results_total",
			Help: "Detail loads discarded because a newer load superseded them",
		},
	)
)

// Track upstream API call
func TrackUpstream(operation, outcome string, duration time.Duration) {
	upstreamRequests.WithLabelValues(operation, outcome).Inc()
	upstreamDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// Track served HTTP request
func TrackHTTP(route, method string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

func TrackStaleDetail() {
	staleDetailResults.Inc()
}

// Package metrics provides Prometheus metrics for the byp-site gateway.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "byp"

var (
	// UpstreamRequestsTotal counts outbound calls to the content and list APIs.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Total number of outbound HTTP requests",
		},
		[]string{"host", "method", "status"},
	)

	// UpstreamDuration measures outbound call latency.
	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Duration of outbound HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"host"},
	)

	// CacheLookupsTotal counts store lookups by family and result (hit, miss, shared, stale_drop).
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Total number of store lookups by family and result",
		},
		[]string{"family", "result"},
	)

	// CacheFetchErrorsTotal counts failed store fetches.
	CacheFetchErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_fetch_errors_total",
			Help:      "Total number of failed store fetches",
		},
		[]string{"family"},
	)

	// SnapshotWritesTotal counts snapshot persistence attempts.
	SnapshotWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_writes_total",
			Help:      "Total number of store snapshot writes",
		},
		[]string{"backend", "status"},
	)

	// HTTPRequestDuration measures inbound request latency per route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of inbound HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)
)

// RecordUpstream records an outbound call. status 0 means transport error.
func RecordUpstream(host, method string, status int, seconds float64) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	UpstreamRequestsTotal.WithLabelValues(host, method, label).Inc()
	UpstreamDuration.WithLabelValues(host).Observe(seconds)
}

// RecordCacheLookup records a store lookup result.
func RecordCacheLookup(family, result string) {
	CacheLookupsTotal.WithLabelValues(family, result).Inc()
}

// RecordCacheError records a failed store fetch.
func RecordCacheError(family string) {
	CacheFetchErrorsTotal.WithLabelValues(family).Inc()
}

// RecordSnapshotWrite records a snapshot persistence attempt.
func RecordSnapshotWrite(backend, status string) {
	SnapshotWritesTotal.WithLabelValues(backend, status).Inc()
}

// RecordHTTPRequest records an inbound request.
func RecordHTTPRequest(route, method string, status int, seconds float64) {
	HTTPRequestDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(seconds)
}

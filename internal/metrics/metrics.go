package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Insert outcome label values.
const (
	OutcomeFront    = "front"
	OutcomeSplice   = "splice"
	OutcomeAppend   = "append"
	OutcomeRejected = "rejected"
)

// Tracklist operation metrics
var (
	InsertsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracklist_inserts_total",
			Help: "Total number of track insertions by outcome",
		},
		[]string{"outcome"},
	)

	InsertsClampedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tracklist_inserts_clamped_total",
			Help: "Total number of inserts whose position was clamped to the end",
		},
	)

	TraversalsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tracklist_traversals_total",
			Help: "Total number of full chain traversals served",
		},
	)

	TracklistLength = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tracklist_length",
			Help: "Current number of tracks per tracklist",
		},
		[]string{"name"},
	)
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracklist_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tracklist_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracklist_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Application info metric
var (
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tracklist_app_info",
			Help: "Application information",
		},
		[]string{"version", "commit", "go_version"},
	)
)

// SetAppInfo sets the application info metric
func SetAppInfo(version, commit, goVersion string) {
	AppInfo.WithLabelValues(version, commit, goVersion).Set(1)
}

// InitializeMetrics pre-populates all expected label combinations so that
// every metric is exported from the first Prometheus scrape.
func InitializeMetrics() {
	for _, outcome := range []string{OutcomeFront, OutcomeSplice, OutcomeAppend, OutcomeRejected} {
		InsertsTotal.WithLabelValues(outcome)
	}
}

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Reconciliation metrics
	PassesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "burrow_passes_total",
			Help: "Total number of reconciliation passes",
		},
	)

	PassDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "burrow_pass_duration_seconds",
			Help:    "Reconciliation pass duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	LastPassTimestamp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "burrow_last_pass_timestamp_seconds",
			Help: "Unix timestamp of the last completed reconciliation pass",
		},
	)

	EntriesFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "burrow_entries_failed_total",
			Help: "Total number of provider entries whose processing was aborted",
		},
	)

	// Update metrics
	UpdateRequestsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "burrow_update_requests_total",
			Help: "Total number of update requests sent to the provider",
		},
	)

	UpdateResultsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "burrow_update_results_total",
			Help: "Total number of per-hostname update results by response code",
		},
		[]string{"code"},
	)

	UserErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "burrow_user_errors_total",
			Help: "Total number of provider user errors requiring operator action",
		},
	)

	// Discovery metrics
	DiscoveryProbesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "burrow_discovery_probes_total",
			Help: "Total number of network IP discovery probes by outcome",
		},
		[]string{"outcome"},
	)

	DiscoveryCacheHitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "burrow_discovery_cache_hits_total",
			Help: "Total number of discovery calls answered from the cache",
		},
	)
)

func init() {
	// Register all metrics
	prometheus.MustRegister(PassesTotal)
	prometheus.MustRegister(PassDuration)
	prometheus.MustRegister(LastPassTimestamp)
	prometheus.MustRegister(EntriesFailed)
	prometheus.MustRegister(UpdateRequestsTotal)
	prometheus.MustRegister(UpdateResultsTotal)
	prometheus.MustRegister(UserErrorsTotal)
	prometheus.MustRegister(DiscoveryProbesTotal)
	prometheus.MustRegister(DiscoveryCacheHitsTotal)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

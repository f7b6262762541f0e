// Package metrics provides Prometheus metrics for the podium
// leaderboard refresh service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the podium service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	registry         prometheus.Registerer

	// Refresh pipeline metrics
	refreshCycles   prometheus.Counter
	refreshErrors   *prometheus.CounterVec
	fetchLatency    prometheus.Histogram
	snapshotSize    prometheus.Gauge
	lastRefreshUnix prometheus.Gauge
	rankMovements   *prometheus.CounterVec
	countdownResets prometheus.Counter
	stateLoadErrors prometheus.Counter
	stateSaveErrors prometheus.Counter

	// HTTP surface metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "podium",
		subsystem:        "leaderboard",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.refreshCycles = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refresh_cycles_total",
		Help:      "Total refresh cycles attempted",
	})

	m.refreshErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refresh_errors_total",
		Help:      "Refresh failures by kind (config, transport)",
	}, []string{"kind"})

	m.fetchLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fetch_latency_milliseconds",
		Help:      "Snapshot fetch round-trip latency in milliseconds",
		Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
	})

	m.snapshotSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_size",
		Help:      "Number of entrants in the current snapshot",
	})

	m.lastRefreshUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_refresh_timestamp_seconds",
		Help:      "Unix time of the last completed refresh cycle",
	})

	m.rankMovements = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rank_movements_total",
		Help:      "Rank movements observed per refresh by direction",
	}, []string{"direction"})

	m.countdownResets = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "countdown_resets_total",
		Help:      "Times the reset target rolled over a month boundary",
	})

	m.stateLoadErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "state_load_errors_total",
		Help:      "Rank state loads that degraded to an empty map",
	})

	m.stateSaveErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "state_save_errors_total",
		Help:      "Rank state writes that were skipped after an error",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method and status code",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})
}

// RecordRefreshCycle increments the refresh cycle counter.
func RecordRefreshCycle() {
	globalManager.refreshCycles.Inc()
}

// RecordRefreshError increments the refresh error counter for a kind.
func RecordRefreshError(kind string) {
	globalManager.refreshErrors.WithLabelValues(kind).Inc()
}

// RecordFetchLatency records a fetch round trip in milliseconds.
func RecordFetchLatency(latencyMs float64) {
	globalManager.fetchLatency.Observe(latencyMs)
}

// UpdateSnapshotSize sets the current snapshot size gauge.
func UpdateSnapshotSize(size int) {
	globalManager.snapshotSize.Set(float64(size))
}

// UpdateLastRefresh sets the last completed refresh timestamp.
func UpdateLastRefresh(ts time.Time) {
	globalManager.lastRefreshUnix.Set(float64(ts.Unix()))
}

// RecordRankMovement counts one movement in the given direction.
func RecordRankMovement(direction string) {
	globalManager.rankMovements.WithLabelValues(direction).Inc()
}

// RecordCountdownReset counts a month-boundary rollover.
func RecordCountdownReset() {
	globalManager.countdownResets.Inc()
}

// RecordStateLoadError counts a degraded rank state load.
func RecordStateLoadError() {
	globalManager.stateLoadErrors.Inc()
}

// RecordStateSaveError counts a skipped rank state write.
func RecordStateSaveError() {
	globalManager.stateSaveErrors.Inc()
}

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// GetRegistry returns the custom registry that backs the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package metrics provides Prometheus metrics for the campus service.
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

// selectionBuckets covers every legal comparison list size.
var selectionBuckets = []float64{0, 1, 2, 3, 4} //nolint:gochecknoglobals // fixed bucket layout

// scoreBuckets spans the reachable profile score range.
var scoreBuckets = []float64{10, 20, 30, 40, 50, 60, 70, 80} //nolint:gochecknoglobals // fixed bucket layout

// matchBuckets spans typical filter result sizes.
var matchBuckets = []float64{0, 1, 5, 12, 24, 50, 100, 250, 500} //nolint:gochecknoglobals // fixed bucket layout

// Manager manages all Prometheus metrics for the campus service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Catalog
	catalogUniversities prometheus.Gauge

	// Filter / sort pipeline
	filterRequests *prometheus.CounterVec
	filterLatency  prometheus.Histogram
	filterMatches  prometheus.Histogram

	// Comparison list
	compareOperations *prometheus.CounterVec
	compareSelection  prometheus.Histogram

	// Profile score
	scoreCalculations prometheus.Counter
	scoreValues       prometheus.Histogram

	// Incremental reveal
	revealGrowths *prometheus.CounterVec

	// Key-value store
	storeOperations *prometheus.CounterVec
	storeErrors     *prometheus.CounterVec

	// Action loop
	actionQueueSize     prometheus.Gauge
	actionQueueRejected prometheus.Counter
	actionLatency       prometheus.Histogram
	sessionsActive      prometheus.Gauge

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "campus",
		subsystem:        "core",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) opts(name, help string) prometheus.Opts {
	return prometheus.Opts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.customLabels,
	}
}

func (m *Manager) histogram(name, help string, buckets []float64) prometheus.HistogramOpts {
	o := m.opts(name, help)
	return prometheus.HistogramOpts{
		Namespace:   o.Namespace,
		Subsystem:   o.Subsystem,
		Name:        o.Name,
		Help:        o.Help,
		ConstLabels: o.ConstLabels,
		Buckets:     buckets,
	}
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // long function required for comprehensive metrics initialization
	auto := promauto.With(m.registry)

	m.catalogUniversities = auto.NewGauge(prometheus.GaugeOpts(m.opts(
		"catalog_universities", "Number of universities in the loaded catalog")))

	m.filterRequests = auto.NewCounterVec(prometheus.CounterOpts(m.opts(
		"filter_requests_total", "Catalog filter/sort requests by sort key")), []string{"sort"})
	m.filterLatency = auto.NewHistogram(m.histogram(
		"filter_latency_milliseconds", "Filter plus sort latency in milliseconds", m.histogramBuckets))
	m.filterMatches = auto.NewHistogram(m.histogram(
		"filter_matches", "Number of universities matching a filter", matchBuckets))

	m.compareOperations = auto.NewCounterVec(prometheus.CounterOpts(m.opts(
		"compare_operations_total", "Comparison list operations by operation and outcome")), []string{"op", "outcome"})
	m.compareSelection = auto.NewHistogram(m.histogram(
		"compare_selection_size", "Comparison list size after each mutation", selectionBuckets))

	m.scoreCalculations = auto.NewCounter(prometheus.CounterOpts(m.opts(
		"score_calculations_total", "Profile score calculations")))
	m.scoreValues = auto.NewHistogram(m.histogram(
		"score_values", "Distribution of computed profile scores", scoreBuckets))

	m.revealGrowths = auto.NewCounterVec(prometheus.CounterOpts(m.opts(
		"reveal_growths_total", "Incremental reveal growth attempts by outcome")), []string{"outcome"})

	m.storeOperations = auto.NewCounterVec(prometheus.CounterOpts(m.opts(
		"store_operations_total", "Key-value store operations by driver and operation")), []string{"driver", "op"})
	m.storeErrors = auto.NewCounterVec(prometheus.CounterOpts(m.opts(
		"store_errors_total", "Key-value store failures by driver and operation")), []string{"driver", "op"})

	m.actionQueueSize = auto.NewGauge(prometheus.GaugeOpts(m.opts(
		"action_queue_size", "Pending actions waiting for the session loop")))
	m.actionQueueRejected = auto.NewCounter(prometheus.CounterOpts(m.opts(
		"action_queue_rejected_total", "Actions rejected because the queue was full or closed")))
	m.actionLatency = auto.NewHistogram(m.histogram(
		"action_latency_milliseconds", "Time spent executing one session action", m.histogramBuckets))
	m.sessionsActive = auto.NewGauge(prometheus.GaugeOpts(m.opts(
		"sessions_active", "Sessions currently held in memory")))

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts(m.opts(
		"http_requests_total", "Total number of HTTP requests by endpoint and method")),
		[]string{"endpoint", "method", "status_code"})
	m.httpRequestDuration = auto.NewHistogramVec(m.histogram(
		"http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"})
	m.errorRateByType = auto.NewCounterVec(prometheus.CounterOpts(m.opts(
		"errors_by_type_total", "Errors by type and severity")), []string{"error_type", "severity"})
	m.errorRateByEndpoint = auto.NewCounterVec(prometheus.CounterOpts(m.opts(
		"errors_by_endpoint_total", "Errors by endpoint")), []string{"endpoint", "method", "error_type"})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts(m.opts(
		"system_memory_bytes", "Heap bytes allocated")))
	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts(m.opts(
		"system_goroutines", "Number of goroutines")))
	m.systemGCPauseTime = auto.NewHistogram(m.histogram(
		"system_gc_pause_milliseconds", "Average GC pause in milliseconds", m.histogramBuckets))
}

// Catalog.

func UpdateCatalogSize(n int) {
	if globalManager.enabled {
		globalManager.catalogUniversities.Set(float64(n))
	}
}

// Filter pipeline.

func RecordFilter(sortKey string, matches int, latencyMs float64) {
	if !globalManager.enabled {
		return
	}
	if sortKey == "" {
		sortKey = "default"
	}
	globalManager.filterRequests.WithLabelValues(sortKey).Inc()
	globalManager.filterMatches.Observe(float64(matches))
	globalManager.filterLatency.Observe(latencyMs)
}

// Comparison list.

func RecordCompareOperation(op, outcome string) {
	if globalManager.enabled {
		globalManager.compareOperations.WithLabelValues(op, outcome).Inc()
	}
}

func ObserveSelectionSize(n int) {
	if globalManager.enabled {
		globalManager.compareSelection.Observe(float64(n))
	}
}

// Profile score.

func RecordScore(score int) {
	if globalManager.enabled {
		globalManager.scoreCalculations.Inc()
		globalManager.scoreValues.Observe(float64(score))
	}
}

// Incremental reveal.

func RecordRevealGrowth(outcome string) {
	if globalManager.enabled {
		globalManager.revealGrowths.WithLabelValues(outcome).Inc()
	}
}

// Key-value store.

func RecordStoreOperation(driver, op string) {
	if globalManager.enabled {
		globalManager.storeOperations.WithLabelValues(driver, op).Inc()
	}
}

func RecordStoreError(driver, op string) {
	if globalManager.enabled {
		globalManager.storeErrors.WithLabelValues(driver, op).Inc()
	}
}

// Action loop.

func UpdateActionQueueSize(n int) {
	if globalManager.enabled {
		globalManager.actionQueueSize.Set(float64(n))
	}
}

func RecordActionRejected() {
	if globalManager.enabled {
		globalManager.actionQueueRejected.Inc()
	}
}

func RecordActionLatency(latencyMs float64) {
	if globalManager.enabled {
		globalManager.actionLatency.Observe(latencyMs)
	}
}

func UpdateSessionsActive(n int) {
	if globalManager.enabled {
		globalManager.sessionsActive.Set(float64(n))
	}
}

// HTTP.

func RecordHTTPRequest(endpoint, method, statusCode string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	}
}

func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
	}
}

func RecordErrorByType(errorType, severity string) {
	if globalManager.enabled {
		globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
	}
}

func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if globalManager.enabled {
		globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
	}
}

// System.

func UpdateSystemMemoryUsage(bytes uint64) {
	if globalManager.enabled {
		globalManager.systemMemoryUsage.Set(float64(bytes))
	}
}

func UpdateSystemGoroutineCount(count int) {
	if globalManager.enabled {
		globalManager.systemGoroutineCount.Set(float64(count))
	}
}

func RecordSystemGCPauseTime(pauseMs float64) {
	if globalManager.enabled {
		globalManager.systemGCPauseTime.Observe(pauseMs)
	}
}

// GetRegistry returns the registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RefreshInterval reports how often gauge snapshots should be refreshed.
func RefreshInterval() time.Duration {
	return globalManager.refreshInterval
}

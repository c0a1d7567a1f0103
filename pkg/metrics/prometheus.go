// Package metrics provides Prometheus metrics for the draft analyzer.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels shared by upstream and analysis metrics.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Reasons a pick is left out of every owner's counts.
const (
	SkipNoRoster      = "no_roster"
	SkipUnknownRoster = "unknown_roster"
)

// upstreamBuckets covers Sleeper round trips, in milliseconds.
var upstreamBuckets = []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000} //nolint:gochecknoglobals // fixed bucket layout

// Manager manages all Prometheus metrics for the analyzer.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	registry         prometheus.Registerer

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorRateByEndpoint *prometheus.CounterVec
	errorRateByType     *prometheus.CounterVec

	// Upstream (Sleeper API)
	upstreamRequests *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec

	// Analysis
	analyses         *prometheus.CounterVec
	analysisDuration prometheus.Histogram
	picksFolded      prometheus.Counter
	picksSkipped     *prometheus.CounterVec
	owners           prometheus.Gauge
	drafts           prometheus.Gauge

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
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
		namespace:        "draftintel",
		subsystem:        "analyzer",
		histogramBuckets: prometheus.DefBuckets,
		constLabels:      map[string]string{},
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) counterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return promauto.With(m.registry).NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}, labels)
}

func (m *Manager) gauge(name, help string) prometheus.Gauge {
	return promauto.With(m.registry).NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	})
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = m.counterVec("http_requests_total",
		"Total number of HTTP requests by endpoint and method",
		"endpoint", "method", "status_code")

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_request_duration_milliseconds",
		Help:        "HTTP request duration in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "status_code"})

	m.errorRateByEndpoint = m.counterVec("errors_by_endpoint_total",
		"HTTP errors by endpoint, method and error type",
		"endpoint", "method", "error_type")

	m.errorRateByType = m.counterVec("errors_by_type_total",
		"HTTP errors by error type and severity",
		"error_type", "severity")

	m.upstreamRequests = m.counterVec("upstream_requests_total",
		"Requests made to the league data API by endpoint and outcome",
		"endpoint", "outcome")

	m.upstreamLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "upstream_latency_milliseconds",
		Help:        "League data API round trip in milliseconds",
		Buckets:     upstreamBuckets,
		ConstLabels: m.constLabels,
	}, []string{"endpoint"})

	m.analyses = m.counterVec("analyses_total",
		"Draft analyses run, by outcome",
		"outcome")

	m.analysisDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "analysis_duration_milliseconds",
		Help:        "Duration of one full retrieval and aggregation pass in milliseconds",
		Buckets:     upstreamBuckets,
		ConstLabels: m.constLabels,
	})

	m.picksFolded = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "picks_folded_total",
		Help:        "Draft picks attributed to an owner",
		ConstLabels: m.constLabels,
	})

	m.picksSkipped = m.counterVec("picks_skipped_total",
		"Draft picks excluded from owner counts, by reason",
		"reason")

	m.owners = m.gauge("owners", "Owners ranked by the last analysis")
	m.drafts = m.gauge("drafts", "Drafts covered by the last analysis")
	m.systemMemoryUsage = m.gauge("system_memory_bytes", "Heap bytes allocated")
	m.systemGoroutineCount = m.gauge("system_goroutines", "Number of goroutines")
}

func checkOutcome(outcome string) error {
	if outcome != OutcomeSuccess && outcome != OutcomeFailure {
		return fmt.Errorf("%w: %q", ErrUnknownOutcome, outcome)
	}
	return nil
}

// HTTP Metrics Functions.

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// Upstream Metrics Functions.

// RecordUpstreamRequest counts one call to the league data API.
func RecordUpstreamRequest(endpoint, outcome string) error {
	if err := checkOutcome(outcome); err != nil {
		return err
	}
	globalManager.upstreamRequests.WithLabelValues(endpoint, outcome).Inc()
	return nil
}

// RecordUpstreamLatency records the round trip of one upstream call.
func RecordUpstreamLatency(endpoint string, latencyMs float64) {
	globalManager.upstreamLatency.WithLabelValues(endpoint).Observe(latencyMs)
}

// Analysis Metrics Functions.

// RecordAnalysis counts a finished analysis and its duration.
func RecordAnalysis(outcome string, durationMs float64) error {
	if err := checkOutcome(outcome); err != nil {
		return err
	}
	globalManager.analyses.WithLabelValues(outcome).Inc()
	globalManager.analysisDuration.Observe(durationMs)
	return nil
}

// RecordPicksFolded adds n picks attributed to an owner.
func RecordPicksFolded(n int) {
	if n > 0 {
		globalManager.picksFolded.Add(float64(n))
	}
}

// RecordPicksSkipped adds n picks dropped for reason.
func RecordPicksSkipped(reason string, n int) {
	if n > 0 {
		globalManager.picksSkipped.WithLabelValues(reason).Add(float64(n))
	}
}

// UpdateOwners sets the owner count of the last analysis.
func UpdateOwners(count int) {
	globalManager.owners.Set(float64(count))
}

// UpdateDrafts sets the draft count of the last analysis.
func UpdateDrafts(count int) {
	globalManager.drafts.Set(float64(count))
}

// System Performance Metrics Functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

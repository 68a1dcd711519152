// Package metrics provides Prometheus metrics for the GoalVault verifier.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the verifier.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Core Business Metrics - the verification pipeline
	proofsSeen       prometheus.Counter
	proofsFetched    prometheus.Counter
	proofFetchErrors prometheus.Counter
	proofFallbacks   *prometheus.CounterVec
	scoresClamped    prometheus.Counter
	scoresZeroed     prometheus.Counter
	verdictsSent     prometheus.Counter
	verdictErrors    prometheus.Counter

	// Operational Health Metrics
	pollCycles  prometheus.Counter
	queueSize   prometheus.Gauge
	workerCount prometheus.Gauge

	// Latency Metrics
	fetchLatency   prometheus.Histogram
	scoringLatency prometheus.Histogram
	submitLatency  prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry()

func init() {
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "goalvault",
		subsystem:        "verifier",
		histogramBuckets: prometheus.DefBuckets,
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

	m.proofsSeen = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "proofs_seen_total",
		Help:      "Total number of proof-submitted events observed on chain",
	})

	m.proofsFetched = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "proofs_fetched_total",
		Help:      "Total number of proof payloads fetched from the gateway",
	})

	m.proofFetchErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "proof_fetch_errors_total",
		Help:      "Total number of gateway fetches that failed",
	})

	m.proofFallbacks = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "proof_fallbacks_total",
		Help:      "Which field the proof text was extracted from",
	}, []string{"source"})

	m.scoresClamped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scores_clamped_total",
		Help:      "Total number of scorer responses clamped into the 0-100 band",
	})

	m.scoresZeroed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scores_zeroed_total",
		Help:      "Total number of malformed scorer responses mapped to zero",
	})

	m.verdictsSent = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "verdicts_sent_total",
		Help:      "Total number of score_set submissions accepted by the ledger",
	})

	m.verdictErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "verdict_errors_total",
		Help:      "Total number of score_set submissions rejected or failed",
	})

	m.pollCycles = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "poll_cycles_total",
		Help:      "Total number of completed chain poll cycles",
	})

	m.queueSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_size",
		Help:      "Current number of goals waiting for verification",
	})

	m.workerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_count",
		Help:      "Number of verification workers",
	})

	m.fetchLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fetch_latency_milliseconds",
		Help:      "Histogram of gateway fetch latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.scoringLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_latency_milliseconds",
		Help:      "Histogram of reasoning-service latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.submitLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "submit_latency_milliseconds",
		Help:      "Histogram of ledger submission latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})
}

// Business Metrics Functions.

// RecordProofSeen increments the observed-event counter.
func RecordProofSeen() {
	globalManager.proofsSeen.Inc()
}

// RecordProofFetched increments the successful gateway fetch counter.
func RecordProofFetched() {
	globalManager.proofsFetched.Inc()
}

// RecordProofFetchError increments the gateway error counter.
func RecordProofFetchError() {
	globalManager.proofFetchErrors.Inc()
}

// RecordProofFallback notes which field the proof text came from.
func RecordProofFallback(source string) {
	globalManager.proofFallbacks.WithLabelValues(source).Inc()
}

// RecordScoreClamped increments the out-of-band score counter.
func RecordScoreClamped() {
	globalManager.scoresClamped.Inc()
}

// RecordScoreZeroed increments the malformed-response counter.
func RecordScoreZeroed() {
	globalManager.scoresZeroed.Inc()
}

// RecordVerdictSent increments the accepted submission counter.
func RecordVerdictSent() {
	globalManager.verdictsSent.Inc()
}

// RecordVerdictError increments the failed submission counter.
func RecordVerdictError() {
	globalManager.verdictErrors.Inc()
}

// Operational Metrics Functions.

// RecordPollCycle increments the poll cycle counter.
func RecordPollCycle() {
	globalManager.pollCycles.Inc()
}

// UpdateQueueSize sets the pending verification gauge.
func UpdateQueueSize(size int) {
	globalManager.queueSize.Set(float64(size))
}

// UpdateWorkerCount sets the worker gauge.
func UpdateWorkerCount(count int) {
	globalManager.workerCount.Set(float64(count))
}

// Latency Metrics Functions.

// RecordFetchLatency records gateway fetch latency.
func RecordFetchLatency(latencyMs float64) {
	globalManager.fetchLatency.Observe(latencyMs)
}

// RecordScoringLatency records reasoning-service latency.
func RecordScoringLatency(latencyMs float64) {
	globalManager.scoringLatency.Observe(latencyMs)
}

// RecordSubmitLatency records ledger submission latency.
func RecordSubmitLatency(latencyMs float64) {
	globalManager.submitLatency.Observe(latencyMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Network Metrics
	NetworkProteinsTotal     prometheus.Gauge
	NetworkInteractionsTotal prometheus.Gauge
	EvidenceTotal            *prometheus.CounterVec
	EvidenceScore            *prometheus.HistogramVec

	// Measurement Metrics
	MeasurementSeriesTotal prometheus.Counter
	MeasurementSitesTotal  *prometheus.CounterVec

	// Community Metrics
	PartitionsTotal    *prometheus.CounterVec
	PartitionDuration  *prometheus.HistogramVec
	CommunitiesCurrent prometheus.Gauge

	// Enrichment Metrics
	EnrichmentTestsTotal   *prometheus.CounterVec
	EnrichmentTestDuration *prometheus.HistogramVec
	CorrectionBatchesTotal *prometheus.CounterVec

	// System Metrics
	UptimeSeconds    prometheus.Gauge
	GoRoutines       prometheus.Gauge
	MemoryAllocBytes prometheus.Gauge
	MemorySysBytes   prometheus.Gauge

	registry *prometheus.Registry
	mu       sync.RWMutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initNetworkMetrics()
	r.initMeasurementMetrics()
	r.initAnalysisMetrics()
	r.initSystemMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

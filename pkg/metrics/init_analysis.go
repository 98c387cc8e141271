package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalysisMetrics() {
	r.PartitionsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ppi_partitions_total",
			Help: "Total number of community detection runs",
		},
		[]string{"algorithm"},
	)

	r.PartitionDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ppi_partition_duration_seconds",
			Help:    "Community detection duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0, 60.0},
		},
		[]string{"algorithm"},
	)

	r.CommunitiesCurrent = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "ppi_communities_current",
			Help: "Number of communities in the latest partition",
		},
	)

	r.EnrichmentTestsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ppi_enrichment_tests_total",
			Help: "Total number of enrichment tests",
		},
		[]string{"test", "status"},
	)

	r.EnrichmentTestDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ppi_enrichment_test_duration_seconds",
			Help:    "Enrichment test batch duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"test"},
	)

	r.CorrectionBatchesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ppi_correction_batches_total",
			Help: "Total number of corrected p-value batches",
		},
		[]string{"procedure"},
	)
}

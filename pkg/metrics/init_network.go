package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initNetworkMetrics() {
	r.NetworkProteinsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "ppi_network_proteins_total",
			Help: "Total number of proteins in the network",
		},
	)

	r.NetworkInteractionsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "ppi_network_interactions_total",
			Help: "Total number of interactions in the network",
		},
	)

	r.EvidenceTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ppi_evidence_total",
			Help: "Total number of processed evidence records",
		},
		[]string{"source", "status"},
	)

	r.EvidenceScore = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ppi_evidence_score",
			Help:    "Confidence scores of accepted evidence records",
			Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		},
		[]string{"source"},
	)
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initMeasurementMetrics() {
	r.MeasurementSeriesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "ppi_measurement_series_total",
			Help: "Total number of attached measurement series",
		},
	)

	r.MeasurementSitesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ppi_measurement_sites_total",
			Help: "Total number of processed modification sites",
		},
		[]string{"status"},
	)
}

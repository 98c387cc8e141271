package metrics

import (
	"runtime"
	"time"
)

// RecordEvidence records a processed evidence record
func (r *Registry) RecordEvidence(source, status string, score float64) {
	r.EvidenceTotal.WithLabelValues(source, status).Inc()
	if status == "accepted" {
		r.EvidenceScore.WithLabelValues(source).Observe(score)
	}
}

// UpdateNetworkSize updates the network size gauges
func (r *Registry) UpdateNetworkSize(proteins, interactions int) {
	r.NetworkProteinsTotal.Set(float64(proteins))
	r.NetworkInteractionsTotal.Set(float64(interactions))
}

// RecordSeries records an attached measurement series with its site outcomes
func (r *Registry) RecordSeries(kept, skipped int) {
	r.MeasurementSeriesTotal.Inc()
	r.MeasurementSitesTotal.WithLabelValues("kept").Add(float64(kept))
	r.MeasurementSitesTotal.WithLabelValues("skipped").Add(float64(skipped))
}

// RecordPartition records a community detection run
func (r *Registry) RecordPartition(algorithm string, communities int, duration time.Duration) {
	r.PartitionsTotal.WithLabelValues(algorithm).Inc()
	r.PartitionDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	r.CommunitiesCurrent.Set(float64(communities))
}

// RecordEnrichment records an enrichment test batch
func (r *Registry) RecordEnrichment(test string, tested, skipped int, duration time.Duration) {
	r.EnrichmentTestsTotal.WithLabelValues(test, "tested").Add(float64(tested))
	r.EnrichmentTestsTotal.WithLabelValues(test, "skipped").Add(float64(skipped))
	r.EnrichmentTestDuration.WithLabelValues(test).Observe(duration.Seconds())
}

// RecordCorrection records a corrected p-value batch
func (r *Registry) RecordCorrection(procedure string) {
	r.CorrectionBatchesTotal.WithLabelValues(procedure).Inc()
}

// UpdateSystemMetrics refreshes runtime gauges
func (r *Registry) UpdateSystemMetrics(start time.Time) {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	r.UptimeSeconds.Set(time.Since(start).Seconds())
	r.GoRoutines.Set(float64(runtime.NumGoroutine()))
	r.MemoryAllocBytes.Set(float64(stats.Alloc))
	r.MemorySysBytes.Set(float64(stats.Sys))
}

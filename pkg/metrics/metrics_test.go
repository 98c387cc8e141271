package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordEvidence(t *testing.T) {
	r := NewRegistry()

	r.RecordEvidence("BioGRID", "accepted", 0.9)
	r.RecordEvidence("BioGRID", "accepted", 0.7)
	r.RecordEvidence("BioGRID", "rejected", 0)

	accepted := testutil.ToFloat64(r.EvidenceTotal.WithLabelValues("BioGRID", "accepted"))
	if accepted != 2 {
		t.Errorf("accepted evidence = %v, want 2", accepted)
	}

	rejected := testutil.ToFloat64(r.EvidenceTotal.WithLabelValues("BioGRID", "rejected"))
	if rejected != 1 {
		t.Errorf("rejected evidence = %v, want 1", rejected)
	}
}

func TestUpdateNetworkSize(t *testing.T) {
	r := NewRegistry()

	r.UpdateNetworkSize(100, 250)

	if got := testutil.ToFloat64(r.NetworkProteinsTotal); got != 100 {
		t.Errorf("proteins gauge = %v, want 100", got)
	}
	if got := testutil.ToFloat64(r.NetworkInteractionsTotal); got != 250 {
		t.Errorf("interactions gauge = %v, want 250", got)
	}
}

func TestRecordSeries(t *testing.T) {
	r := NewRegistry()

	r.RecordSeries(8, 2)
	r.RecordSeries(5, 0)

	if got := testutil.ToFloat64(r.MeasurementSeriesTotal); got != 2 {
		t.Errorf("series counter = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.MeasurementSitesTotal.WithLabelValues("kept")); got != 13 {
		t.Errorf("kept sites = %v, want 13", got)
	}
	if got := testutil.ToFloat64(r.MeasurementSitesTotal.WithLabelValues("skipped")); got != 2 {
		t.Errorf("skipped sites = %v, want 2", got)
	}
}

func TestRecordPartition(t *testing.T) {
	r := NewRegistry()

	r.RecordPartition("Louvain", 7, 50*time.Millisecond)

	if got := testutil.ToFloat64(r.PartitionsTotal.WithLabelValues("Louvain")); got != 1 {
		t.Errorf("partitions counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.CommunitiesCurrent); got != 7 {
		t.Errorf("communities gauge = %v, want 7", got)
	}
}

func TestRecordCorrection(t *testing.T) {
	r := NewRegistry()

	r.RecordCorrection("Benjamini-Hochberg")
	r.RecordCorrection("Benjamini-Hochberg")

	got := testutil.ToFloat64(r.CorrectionBatchesTotal.WithLabelValues("Benjamini-Hochberg"))
	if got != 2 {
		t.Errorf("correction batches = %v, want 2", got)
	}
}

func TestDefaultRegistrySingleton(t *testing.T) {
	a := DefaultRegistry()
	b := DefaultRegistry()
	if a != b {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

package enrichment

import (
	"errors"
	"fmt"
	"testing"
)

func TestHypergeometricOverFullOverlap(t *testing.T) {
	// All 10 drawn proteins annotated out of 10 annotated in 100:
	// p = 1 / C(100, 10), far below any threshold.
	p, err := HypergeometricOver(10, 100, 10, 10)
	if err != nil {
		t.Fatalf("HypergeometricOver failed: %v", err)
	}
	if p >= 1e-6 {
		t.Errorf("p = %g, want < 1e-6", p)
	}
}

func TestHypergeometricOverZeroOverlap(t *testing.T) {
	p, err := HypergeometricOver(0, 100, 10, 10)
	if err != nil {
		t.Fatalf("HypergeometricOver failed: %v", err)
	}
	if p != 1.0 {
		t.Errorf("p = %v, want exactly 1.0 for k = 0", p)
	}
}

func TestHypergeometricOverMatchesComplement(t *testing.T) {
	// P(X >= k) + P(X <= k-1) = 1 for any k in the support.
	for k := 1; k <= 5; k++ {
		over, err := HypergeometricOver(k, 50, 10, 15)
		if err != nil {
			t.Fatalf("HypergeometricOver failed: %v", err)
		}
		under, err := HypergeometricUnder(k-1, 50, 10, 15)
		if err != nil {
			t.Fatalf("HypergeometricUnder failed: %v", err)
		}
		total := over + under
		if total < 1-1e-9 || total > 1+1e-9 {
			t.Errorf("k=%d: over + under = %v, want 1", k, total)
		}
	}
}

func TestHypergeometricUnderFullDraw(t *testing.T) {
	p, err := HypergeometricUnder(10, 100, 10, 10)
	if err != nil {
		t.Fatalf("HypergeometricUnder failed: %v", err)
	}
	if p != 1.0 {
		t.Errorf("p = %v, want 1.0 at the top of the support", p)
	}
}

func TestHypergeometricEmptyReference(t *testing.T) {
	_, err := HypergeometricOver(0, 0, 0, 0)
	if !errors.Is(err, ErrEmptyReference) {
		t.Errorf("expected ErrEmptyReference, got %v", err)
	}
}

func TestHypergeometricInvalidCounts(t *testing.T) {
	_, err := HypergeometricOver(5, 10, 3, 4)
	if !errors.Is(err, ErrInvalidCounts) {
		t.Errorf("expected ErrInvalidCounts for k > n, got %v", err)
	}
}

func TestMannWhitneyShiftedSamples(t *testing.T) {
	x := []float64{5.1, 6.2, 7.3, 8.4, 9.5, 6.8, 7.9}
	y := []float64{1.1, 2.2, 1.3, 2.4, 1.5, 2.8, 1.9}

	over, err := MannWhitney(x, y, OverRepresentation, false)
	if err != nil {
		t.Fatalf("MannWhitney failed: %v", err)
	}
	if over >= 0.05 {
		t.Errorf("over-representation p = %v, want < 0.05 for clearly shifted x", over)
	}

	under, err := MannWhitney(x, y, UnderRepresentation, false)
	if err != nil {
		t.Fatalf("MannWhitney failed: %v", err)
	}
	if under <= 0.5 {
		t.Errorf("under-representation p = %v, want > 0.5 for x above y", under)
	}
}

func TestMannWhitneyAbsolute(t *testing.T) {
	// Signed values look balanced; magnitudes of x dominate.
	x := []float64{-9, 8, -7, 9, -8}
	y := []float64{1, -2, 1.5, -1, 2}

	p, err := MannWhitney(x, y, OverRepresentation, true)
	if err != nil {
		t.Fatalf("MannWhitney failed: %v", err)
	}
	if p >= 0.05 {
		t.Errorf("absolute p = %v, want < 0.05", p)
	}
}

func TestMannWhitneyEmptySample(t *testing.T) {
	_, err := MannWhitney(nil, []float64{1}, OverRepresentation, false)
	if !errors.Is(err, ErrEmptySample) {
		t.Errorf("expected ErrEmptySample, got %v", err)
	}
}

func TestMannWhitneyAllTied(t *testing.T) {
	x := []float64{2, 2, 2}
	y := []float64{2, 2}

	p, err := MannWhitney(x, y, OverRepresentation, false)
	if err != nil {
		t.Fatalf("MannWhitney failed: %v", err)
	}
	if p != 1.0 {
		t.Errorf("p = %v, want 1.0 when every observation ties", p)
	}
}

func annotationFixture() map[Term]Set {
	return map[Term]Set{
		{ID: "GO:0001", Name: "apoptosis"}:  NewSet([]string{"A1", "A2", "A3", "A4"}),
		{ID: "GO:0002", Name: "signaling"}:  NewSet([]string{"B1", "B2", "B3", "B4"}),
		{ID: "GO:0003", Name: "empty term"}: {},
	}
}

func TestTestSetsEnrichedTerm(t *testing.T) {
	annotation := annotationFixture()
	queries := []Set{NewSet([]string{"A1", "A2", "A3"})}
	reference := []Set{NewSet([]string{"A1", "A2", "A3", "A4", "B1", "B2", "B3", "B4"})}

	results, skipped := TestSets(queries, reference, annotation, OverRepresentation)

	apoptosis := Key{Query: 0, Term: Term{ID: "GO:0001", Name: "apoptosis"}}
	signaling := Key{Query: 0, Term: Term{ID: "GO:0002", Name: "signaling"}}

	if results[apoptosis] >= results[signaling] {
		t.Errorf("apoptosis p = %v should be below signaling p = %v",
			results[apoptosis], results[signaling])
	}
	if results[signaling] != 1.0 {
		t.Errorf("signaling p = %v, want 1.0 for zero overlap", results[signaling])
	}

	if len(skipped) != 1 || !errors.Is(skipped[0].Err, ErrEmptyAnnotation) {
		t.Errorf("expected one ErrEmptyAnnotation skip, got %v", skipped)
	}
}

func TestTestSetsDefaultsToAnnotationUniverse(t *testing.T) {
	annotation := annotationFixture()
	queries := []Set{NewSet([]string{"A1", "A2"})}

	results, _ := TestSets(queries, nil, annotation, OverRepresentation)

	apoptosis := Key{Query: 0, Term: Term{ID: "GO:0001", Name: "apoptosis"}}
	if _, ok := results[apoptosis]; !ok {
		t.Error("expected a result against the annotation universe reference")
	}
}

func TestTestSetsPerQueryReferences(t *testing.T) {
	annotation := annotationFixture()
	queries := []Set{
		NewSet([]string{"A1", "A2"}),
		NewSet([]string{"B1", "B2"}),
	}
	references := []Set{
		NewSet([]string{"A1", "A2", "A3", "A4"}),
		NewSet([]string{"B1", "B2", "B3", "B4"}),
	}

	results, _ := TestSets(queries, references, annotation, OverRepresentation)

	if len(results) == 0 {
		t.Fatal("expected results for per-query references")
	}
	for key, p := range results {
		if p < 0 || p > 1 {
			t.Errorf("%v: p = %v outside [0, 1]", key, p)
		}
	}
}

func TestTestMeasurements(t *testing.T) {
	annotation := map[Term]Set{
		{ID: "GO:0001", Name: "apoptosis"}: NewSet([]string{"A1", "A2", "A3"}),
	}
	queries := []map[string]float64{{
		"A1": 9.1, "A2": 8.7, "A3": 9.4,
		"B1": 1.2, "B2": 0.8, "B3": 1.5, "B4": 0.3,
	}}

	results, skipped := TestMeasurements(queries, annotation, OverRepresentation, false)
	if len(skipped) != 0 {
		t.Fatalf("unexpected skips: %v", skipped)
	}

	key := Key{Query: 0, Term: Term{ID: "GO:0001", Name: "apoptosis"}}
	if p, ok := results[key]; !ok || p >= 0.05 {
		t.Errorf("p = %v, %v; want a significant result", p, ok)
	}
}

func TestParseTest(t *testing.T) {
	if test, err := ParseTest(""); err != nil || test != Hypergeometric {
		t.Errorf("ParseTest(\"\") = %v, %v; want hypergeometric", test, err)
	}
	if _, err := ParseTest("chi squared"); !errors.Is(err, ErrUnknownTest) {
		t.Errorf("expected ErrUnknownTest, got %v", err)
	}
}

func TestPairErrorMessage(t *testing.T) {
	pair := PairError{
		Key: Key{Query: 2, Term: Term{ID: "GO:0001"}},
		Err: ErrEmptyAnnotation,
	}
	want := fmt.Sprintf("query 2, term GO:0001: %v", ErrEmptyAnnotation)
	if pair.Error() != want {
		t.Errorf("Error() = %q, want %q", pair.Error(), want)
	}
}

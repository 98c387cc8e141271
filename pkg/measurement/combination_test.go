package measurement

import (
	"errors"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestCombinationMean(t *testing.T) {
	c, err := SiteCombination("mean")
	if err != nil {
		t.Fatalf("SiteCombination failed: %v", err)
	}

	got, err := c.Combine([]float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("Combine failed: %v", err)
	}
	if got != 2.5 {
		t.Errorf("mean = %v, want 2.5", got)
	}
}

func TestCombinationMedian(t *testing.T) {
	c, _ := SiteCombination("median")

	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"odd length", []float64{3, 1, 2}, 2},
		{"even length averages middle pair", []float64{1, 2, 3, 4}, 2.5},
		{"single value", []float64{7}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Combine(tt.values)
			if err != nil {
				t.Fatalf("Combine failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("median(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestCombinationAbsMaxKeepsSign(t *testing.T) {
	c, _ := SiteCombination("absmax")

	got, err := c.Combine([]float64{1, -5, 3})
	if err != nil {
		t.Fatalf("Combine failed: %v", err)
	}
	if got != -5 {
		t.Errorf("absmax = %v, want -5", got)
	}
}

func TestCombinationAbsMaxFirstOccurrenceOnTies(t *testing.T) {
	c, _ := SiteCombination("absmax")

	got, _ := c.Combine([]float64{-2, 2})
	if got != -2 {
		t.Errorf("absmax tie = %v, want -2 (first occurrence)", got)
	}
}

func TestCombinationAbsMinKeepsSign(t *testing.T) {
	c, _ := SiteCombination("absmin")

	got, _ := c.Combine([]float64{4, -1, 3})
	if got != -1 {
		t.Errorf("absmin = %v, want -1", got)
	}
}

func TestCombinationEmptySequence(t *testing.T) {
	for name := range map[string]bool{"mean": true, "median": true, "max": true, "absmax": true} {
		c, _ := SiteCombination(name)
		_, err := c.Combine(nil)
		if !errors.Is(err, ErrEmptySequence) {
			t.Errorf("%s: expected ErrEmptySequence, got %v", name, err)
		}
	}
}

func TestUnknownCombination(t *testing.T) {
	_, err := SiteCombination("harmonic")
	if !errors.Is(err, ErrUnknownCombination) {
		t.Errorf("expected ErrUnknownCombination, got %v", err)
	}

	_, err = ReplicateCombination("absmax")
	if !errors.Is(err, ErrUnknownCombination) {
		t.Errorf("replicate registry should not know absmax, got %v", err)
	}
}

func TestCombinationDefaults(t *testing.T) {
	site, err := SiteCombination("")
	if err != nil || site.Name() != "absmax" {
		t.Errorf("default site combination = %q, %v; want absmax", site.Name(), err)
	}

	replicate, err := ReplicateCombination("")
	if err != nil || replicate.Name() != "mean" {
		t.Errorf("default replicate combination = %q, %v; want mean", replicate.Name(), err)
	}
}

func TestCombinationProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	values := gen.SliceOfN(10, gen.Float64Range(-100, 100))

	absmax, _ := SiteCombination("absmax")
	properties.Property("absmax magnitude dominates all inputs", prop.ForAll(
		func(vs []float64) bool {
			got, err := absmax.Combine(vs)
			if err != nil {
				return false
			}
			for _, v := range vs {
				if math.Abs(v) > math.Abs(got) {
					return false
				}
			}
			return true
		},
		values,
	))

	mini, _ := SiteCombination("min")
	maxi, _ := SiteCombination("max")
	mean, _ := SiteCombination("mean")
	properties.Property("mean lies between min and max", prop.ForAll(
		func(vs []float64) bool {
			lo, _ := mini.Combine(vs)
			hi, _ := maxi.Combine(vs)
			mid, _ := mean.Combine(vs)
			const eps = 1e-9
			return mid >= lo-eps && mid <= hi+eps
		},
		values,
	))

	properties.TestingRun(t)
}

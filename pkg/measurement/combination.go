package measurement

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Combination reduces a non-empty sequence of measurements to one value.
// Combining an empty sequence is an error, never a silent zero.
type Combination struct {
	name    string
	combine func([]float64) float64
}

// Name returns the registered name of the combination.
func (c Combination) Name() string {
	return c.name
}

// Combine reduces values to a single representative value.
func (c Combination) Combine(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("%s: %w", c.name, ErrEmptySequence)
	}
	return c.combine(values), nil
}

func mean(values []float64) float64 {
	return stat.Mean(values, nil)
}

// median averages the two middle order statistics for even-length input
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return stat.Quantile(0.5, stat.LinInterp, sorted, nil)
}

func maximum(values []float64) float64 {
	max := values[0]
	for _, value := range values[1:] {
		if value > max {
			max = value
		}
	}
	return max
}

func minimum(values []float64) float64 {
	min := values[0]
	for _, value := range values[1:] {
		if value < min {
			min = value
		}
	}
	return min
}

// absMax returns the signed element of largest absolute value, ties broken
// by first occurrence.
func absMax(values []float64) float64 {
	max := values[0]
	for _, value := range values[1:] {
		if math.Abs(value) > math.Abs(max) {
			max = value
		}
	}
	return max
}

// absMin returns the signed element of smallest absolute value, ties broken
// by first occurrence.
func absMin(values []float64) float64 {
	min := values[0]
	for _, value := range values[1:] {
		if math.Abs(value) < math.Abs(min) {
			min = value
		}
	}
	return min
}

func sum(values []float64) float64 {
	total := 0.0
	for _, value := range values {
		total += value
	}
	return total
}

func absSum(values []float64) float64 {
	total := 0.0
	for _, value := range values {
		total += math.Abs(value)
	}
	return total
}

var siteCombinations = map[string]Combination{
	"mean":   {"mean", mean},
	"median": {"median", median},
	"max":    {"max", maximum},
	"absmax": {"absmax", absMax},
	"min":    {"min", minimum},
	"absmin": {"absmin", absMin},
	"sum":    {"sum", sum},
	"abssum": {"abssum", absSum},
}

var replicateCombinations = map[string]Combination{
	"mean":   {"mean", mean},
	"median": {"median", median},
}

// SiteCombination resolves a named combination of per-site measurements.
// The empty name defaults to absmax.
func SiteCombination(name string) (Combination, error) {
	if name == "" {
		name = "absmax"
	}
	combination, ok := siteCombinations[name]
	if !ok {
		return Combination{}, fmt.Errorf("site combination %q: %w", name, ErrUnknownCombination)
	}
	return combination, nil
}

// ReplicateCombination resolves a named combination of replicate measurements.
// The empty name defaults to mean.
func ReplicateCombination(name string) (Combination, error) {
	if name == "" {
		name = "mean"
	}
	combination, ok := replicateCombinations[name]
	if !ok {
		return Combination{}, fmt.Errorf("replicate combination %q: %w", name, ErrUnknownCombination)
	}
	return combination, nil
}

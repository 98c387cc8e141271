// Package correction adjusts batches of raw p-values for multiple testing.
// All procedures treat the batch as one family and return adjusted p-values
// under the same keys.
package correction

import (
	"fmt"
	"math"
	"sort"
)

// Procedure adjusts a keyed batch of raw p-values.
type Procedure[K comparable] func(raw map[K]float64) (map[K]float64, error)

// Bonferroni controls the family-wise error rate: each p-value is multiplied
// by the batch size and clamped to 1.
func Bonferroni[K comparable](raw map[K]float64) (map[K]float64, error) {
	if err := validate(raw); err != nil {
		return nil, err
	}
	m := float64(len(raw))
	adjusted := make(map[K]float64, len(raw))
	for key, p := range raw {
		adjusted[key] = math.Min(p*m, 1.0)
	}
	return adjusted, nil
}

// BenjaminiHochberg controls the false discovery rate under independence.
func BenjaminiHochberg[K comparable](raw map[K]float64) (map[K]float64, error) {
	if err := validate(raw); err != nil {
		return nil, err
	}
	return stepUp(raw, 1.0), nil
}

// BenjaminiYekutieli controls the false discovery rate under arbitrary
// dependence by scaling with the harmonic sum of the batch size.
func BenjaminiYekutieli[K comparable](raw map[K]float64) (map[K]float64, error) {
	if err := validate(raw); err != nil {
		return nil, err
	}
	scale := 0.0
	for i := 1; i <= len(raw); i++ {
		scale += 1.0 / float64(i)
	}
	return stepUp(raw, scale), nil
}

// Parse resolves a procedure name. The empty name defaults to
// Benjamini-Hochberg.
func Parse[K comparable](name string) (Procedure[K], error) {
	switch name {
	case "", "Benjamini-Hochberg":
		return BenjaminiHochberg[K], nil
	case "Benjamini-Yekutieli":
		return BenjaminiYekutieli[K], nil
	case "Bonferroni":
		return Bonferroni[K], nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownProcedure)
	}
}

// stepUp runs the Benjamini-Hochberg step-up pass. The enforced monotonicity
// guarantees an adjusted p-value never exceeds that of a larger raw p-value.
func stepUp[K comparable](raw map[K]float64, scale float64) map[K]float64 {
	type entry struct {
		key K
		p   float64
	}
	sorted := make([]entry, 0, len(raw))
	for key, p := range raw {
		sorted = append(sorted, entry{key, p})
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].p < sorted[j].p })

	for i := len(sorted) - 1; i > 0; i-- {
		capped := sorted[i].p * float64(i) / float64(i+1)
		if capped < sorted[i-1].p {
			sorted[i-1].p = capped
		}
	}

	m := float64(len(sorted))
	adjusted := make(map[K]float64, len(sorted))
	for i, e := range sorted {
		rank := float64(i + 1)
		adjusted[e.key] = math.Min(scale*m*e.p/rank, 1.0)
	}
	return adjusted
}

func validate[K comparable](raw map[K]float64) error {
	for key, p := range raw {
		if math.IsNaN(p) || p < 0.0 || p > 1.0 {
			return fmt.Errorf("%v: %g: %w", key, p, ErrInvalidPValue)
		}
	}
	return nil
}

package measurement

import (
	"fmt"
	"math"
	"sort"
)

// Prioritization ranks modification sites when more sites were measured than
// the configured cap allows. Higher keys are kept first.
type Prioritization struct {
	name string
	key  func(float64) float64
}

// Name returns the registered name of the prioritization.
func (p Prioritization) Name() string {
	return p.name
}

var prioritizations = map[string]Prioritization{
	"absolute": {"absolute", math.Abs},
	"increase": {"increase", func(value float64) float64 { return value }},
	"decrease": {"decrease", func(value float64) float64 { return -value }},
}

// SitePrioritization resolves a named site prioritization rule. The empty
// name defaults to absolute.
func SitePrioritization(name string) (Prioritization, error) {
	if name == "" {
		name = "absolute"
	}
	prioritization, ok := prioritizations[name]
	if !ok {
		return Prioritization{}, fmt.Errorf("site prioritization %q: %w", name, ErrUnknownPrioritization)
	}
	return prioritization, nil
}

// CustomPrioritization wraps a caller-supplied ranking key.
func CustomPrioritization(name string, key func(float64) float64) Prioritization {
	return Prioritization{name: name, key: key}
}

// Select keeps the cap highest-ranked sites by the prioritization key applied
// to each site's combined value, preserving the original order among kept
// sites. Ranking ties keep the earlier site.
func (p Prioritization) Select(sites []Site, combined []float64, cap int) []Site {
	if cap <= 0 || len(sites) <= cap {
		return sites
	}

	indices := make([]int, len(sites))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(i, j int) bool {
		return p.key(combined[indices[i]]) > p.key(combined[indices[j]])
	})

	keep := make(map[int]bool, cap)
	for _, index := range indices[:cap] {
		keep[index] = true
	}

	kept := make([]Site, 0, cap)
	for i, site := range sites {
		if keep[i] {
			kept = append(kept, site)
		}
	}
	return kept
}

package enrichment

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// MannWhitney computes the one-sided Mann-Whitney U test between two
// measurement samples using the normal approximation with tie correction and
// continuity correction. Over-representation tests whether x is located
// above y, under-representation the reverse. With absolute set, the test
// runs on absolute values, comparing magnitudes of regulation regardless of
// direction.
func MannWhitney(x, y []float64, direction Direction, absolute bool) (float64, error) {
	if len(x) == 0 || len(y) == 0 {
		return 0, ErrEmptySample
	}
	if absolute {
		x, y = absoluteValues(x), absoluteValues(y)
	}

	n1, n2 := float64(len(x)), float64(len(y))
	ranks, tieTerm := midRanks(x, y)

	r1 := 0.0
	for i := range x {
		r1 += ranks[i]
	}
	u1 := r1 - n1*(n1+1)/2

	mean := n1 * n2 / 2
	n := n1 + n2
	variance := n1 * n2 / 12 * ((n + 1) - tieTerm/(n*(n-1)))
	if variance <= 0 {
		// Every observation tied: no location evidence either way.
		return 1.0, nil
	}
	sigma := math.Sqrt(variance)

	standard := distuv.Normal{Mu: 0, Sigma: 1}
	if direction == UnderRepresentation {
		z := (u1 - mean + 0.5) / sigma
		return clampProbability(standard.CDF(z)), nil
	}
	z := (u1 - mean - 0.5) / sigma
	return clampProbability(standard.Survival(z)), nil
}

// midRanks assigns average ranks to the pooled samples and accumulates the
// tie correction term sum(t^3 - t) over tie groups. The returned ranks are
// ordered as x followed by y.
func midRanks(x, y []float64) ([]float64, float64) {
	total := len(x) + len(y)
	pooled := make([]float64, 0, total)
	pooled = append(pooled, x...)
	pooled = append(pooled, y...)

	order := make([]int, total)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return pooled[order[i]] < pooled[order[j]]
	})

	ranks := make([]float64, total)
	tieTerm := 0.0
	for start := 0; start < total; {
		end := start
		for end+1 < total && pooled[order[end+1]] == pooled[order[start]] {
			end++
		}
		// Average rank of the tie group, 1-based.
		rank := float64(start+end)/2 + 1
		for i := start; i <= end; i++ {
			ranks[order[i]] = rank
		}
		t := float64(end - start + 1)
		tieTerm += t*t*t - t
		start = end + 1
	}
	return ranks, tieTerm
}

func absoluteValues(values []float64) []float64 {
	result := make([]float64, len(values))
	for i, value := range values {
		result[i] = math.Abs(value)
	}
	return result
}

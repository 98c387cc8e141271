package network

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ConfidenceCombination derives one scalar edge weight from an interaction's
// per-source confidence scores.
type ConfidenceCombination struct {
	name    string
	combine func(map[string]float64) float64
}

// Name returns the registered name of the combination.
func (c ConfidenceCombination) Name() string {
	return c.name
}

// Combine derives the scalar weight for one score map.
func (c ConfidenceCombination) Combine(scores map[string]float64) float64 {
	return c.combine(scores)
}

func scoreValues(scores map[string]float64) []float64 {
	values := make([]float64, 0, len(scores))
	for _, score := range scores {
		values = append(values, score)
	}
	sort.Float64s(values)
	return values
}

var confidenceCombinations = map[string]ConfidenceCombination{
	"mean": {"mean", func(scores map[string]float64) float64 {
		return stat.Mean(scoreValues(scores), nil)
	}},
	"median": {"median", func(scores map[string]float64) float64 {
		return stat.Quantile(0.5, stat.LinInterp, scoreValues(scores), nil)
	}},
	"max": {"max", func(scores map[string]float64) float64 {
		values := scoreValues(scores)
		return values[len(values)-1]
	}},
	"min": {"min", func(scores map[string]float64) float64 {
		return scoreValues(scores)[0]
	}},
	"number": {"number", func(scores map[string]float64) float64 {
		return float64(len(scores))
	}},
	"sum": {"sum", func(scores map[string]float64) float64 {
		total := 0.0
		for _, score := range scores {
			total += score
		}
		return total
	}},
}

// AnyEvidence weights every edge 1.0: the presence of any evidence counts,
// its score does not.
func AnyEvidence() ConfidenceCombination {
	return ConfidenceCombination{name: "any", combine: func(scores map[string]float64) float64 {
		if len(scores) > 0 {
			return 1.0
		}
		return 0.0
	}}
}

// SourceScore weights edges by the score of one source database, 0.0 where
// that source contributed no evidence.
func SourceScore(source string) ConfidenceCombination {
	return ConfidenceCombination{name: source, combine: func(scores map[string]float64) float64 {
		return scores[source]
	}}
}

// ConfidenceScoreCombination resolves a named combination. The empty name and
// "any" resolve to the any-evidence indicator; a name that is no summary
// statistic is taken as a source database lookup.
func ConfidenceScoreCombination(name string) (ConfidenceCombination, error) {
	if name == "" || name == "any" {
		return AnyEvidence(), nil
	}
	if combination, ok := confidenceCombinations[name]; ok {
		return combination, nil
	}
	return SourceScore(name), nil
}

// SetEdgeWeights derives and stores a scalar weight on every interaction.
// Weights from a previous combination are overwritten, never mixed.
func (n *Network) SetEdgeWeights(combination ConfidenceCombination) {
	for _, interaction := range n.Interactions() {
		interaction.weight = combination.Combine(interaction.scores)
		interaction.weighted = true
	}
}

// RemoveEdgeWeights strips the stored weight from every interaction.
// Idempotent; partitioning never sees a stale weight from a previous run.
func (n *Network) RemoveEdgeWeights() {
	for _, interaction := range n.Interactions() {
		interaction.weight = 0
		interaction.weighted = false
	}
}

// Weighted reports whether every interaction carries a weight. A network
// without interactions is trivially weighted.
func (n *Network) Weighted() error {
	for _, interaction := range n.Interactions() {
		if !interaction.weighted {
			return fmt.Errorf("%s - %s: %w", interaction.A, interaction.B, ErrNoEdgeWeights)
		}
	}
	return nil
}

// Package community partitions a weighted protein-protein interaction
// network into communities by modularity optimization, optionally
// re-partitioning oversized communities until a size constraint holds.
package community

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/lucasfein/ppi/pkg/network"
)

// Algorithm selects the base partitioning procedure.
type Algorithm string

// Supported algorithms
const (
	Louvain          Algorithm = "Louvain"
	GreedyModularity Algorithm = "greedy modularity"
	LabelPropagation Algorithm = "label propagation"
)

// ParseAlgorithm resolves an algorithm name. The empty name defaults to
// Louvain.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case "":
		return Louvain, nil
	case Louvain, GreedyModularity, LabelPropagation:
		return Algorithm(name), nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
	}
}

// SizeStatistic reduces community sizes to the single value compared against
// the size constraint.
type SizeStatistic struct {
	name    string
	combine func([]float64) float64
}

// Name returns the registered name of the statistic.
func (s SizeStatistic) Name() string {
	return s.name
}

var sizeStatistics = map[string]SizeStatistic{
	"mean": {"mean", func(sizes []float64) float64 {
		return stat.Mean(sizes, nil)
	}},
	"median": {"median", func(sizes []float64) float64 {
		sorted := make([]float64, len(sizes))
		copy(sorted, sizes)
		sort.Float64s(sorted)
		return stat.Quantile(0.5, stat.LinInterp, sorted, nil)
	}},
	"max": {"max", func(sizes []float64) float64 {
		max := sizes[0]
		for _, size := range sizes[1:] {
			if size > max {
				max = size
			}
		}
		return max
	}},
	"min": {"min", func(sizes []float64) float64 {
		min := sizes[0]
		for _, size := range sizes[1:] {
			if size < min {
				min = size
			}
		}
		return min
	}},
}

// ParseSizeStatistic resolves a named size statistic. The empty name defaults
// to mean.
func ParseSizeStatistic(name string) (SizeStatistic, error) {
	if name == "" {
		return sizeStatistics["mean"], nil
	}
	statistic, ok := sizeStatistics[name]
	if !ok {
		return SizeStatistic{}, fmt.Errorf("%q: %w", name, ErrUnknownStatistic)
	}
	return statistic, nil
}

// Options configures community detection.
type Options struct {
	Algorithm  Algorithm
	Resolution float64

	// MaxSize bounds community sizes through SizeStatistic; zero disables
	// the constraint.
	MaxSize       int
	SizeStatistic SizeStatistic

	// MinSize drops smaller communities from the result; zero keeps all,
	// including singletons.
	MinSize int

	// MaxRepartitions bounds how often oversized communities are split at
	// an increased resolution before the best partition found is returned.
	MaxRepartitions int
}

const defaultMaxRepartitions = 32

// partitioned is one community together with the resolution it was found at.
type partitioned struct {
	members    []string
	resolution float64
	final      bool // no further split possible
}

// Detect partitions a weighted network into disjoint communities. Every
// protein lands in exactly one community; a network without interactions
// yields one singleton community per protein. The edge weights must have
// been set (SetEdgeWeights) beforehand.
func Detect(net *network.Network, options Options) ([]*network.Network, error) {
	if err := net.Weighted(); err != nil {
		return nil, err
	}
	resolution := options.Resolution
	if resolution == 0 {
		resolution = 1.0
	}
	if resolution < 0 {
		return nil, fmt.Errorf("%f: %w", resolution, ErrInvalidResolution)
	}
	algorithm := options.Algorithm
	if algorithm == "" {
		algorithm = Louvain
	}
	statistic := options.SizeStatistic
	if statistic.combine == nil {
		statistic = sizeStatistics["mean"]
	}
	maxRepartitions := options.MaxRepartitions
	if maxRepartitions <= 0 {
		maxRepartitions = defaultMaxRepartitions
	}

	communities := make([]partitioned, 0)
	for _, members := range partition(net, algorithm, resolution) {
		communities = append(communities, partitioned{members: members, resolution: resolution})
	}

	// Re-partition the largest community at a doubled resolution until the
	// size statistic satisfies the constraint, a bounded number of times.
	// When no community can be split further, the best partition found is
	// returned rather than looping indefinitely.
	for attempt := 0; options.MaxSize > 0 && attempt < maxRepartitions; attempt++ {
		if sizeStatisticOf(communities, statistic) <= float64(options.MaxSize) {
			break
		}

		largest := -1
		for i, community := range communities {
			if community.final {
				continue
			}
			if largest < 0 || len(community.members) > len(communities[largest].members) {
				largest = i
			}
		}
		if largest < 0 || len(communities[largest].members) <= 1 {
			break
		}

		oversized := communities[largest]
		raised := oversized.resolution * 2
		subgraph := net.Subgraph(oversized.members)
		parts := partition(subgraph, algorithm, raised)
		if len(parts) <= 1 {
			communities[largest].final = true
			continue
		}

		replacement := make([]partitioned, 0, len(parts))
		for _, members := range parts {
			replacement = append(replacement, partitioned{members: members, resolution: raised})
		}
		communities = append(communities[:largest], append(replacement, communities[largest+1:]...)...)
	}

	sort.Slice(communities, func(i, j int) bool {
		if len(communities[i].members) != len(communities[j].members) {
			return len(communities[i].members) > len(communities[j].members)
		}
		return communities[i].members[0] < communities[j].members[0]
	})

	subgraphs := make([]*network.Network, 0, len(communities))
	for _, community := range communities {
		if len(community.members) < options.MinSize {
			continue
		}
		subgraphs = append(subgraphs, net.Subgraph(community.members))
	}
	return subgraphs, nil
}

// partition runs the base algorithm once and groups members per community,
// each group in accession order.
func partition(net *network.Network, algorithm Algorithm, resolution float64) [][]string {
	g := buildGraph(net)

	var assignment []int
	switch algorithm {
	case GreedyModularity:
		assignment = greedyModularity(g, resolution)
	case LabelPropagation:
		assignment = labelPropagation(g, resolution)
	default:
		assignment = louvain(g, resolution)
	}

	groups := make(map[int][]string)
	for node, comm := range assignment {
		groups[comm] = append(groups[comm], g.labels[node])
	}
	communities := make([][]string, 0, len(groups))
	for _, comm := range sortedGroupKeys(groups) {
		communities = append(communities, sortedAccessions(groups[comm]))
	}
	return communities
}

func sortedGroupKeys(groups map[int][]string) []int {
	keys := make([]int, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	return keys
}

func sizeStatisticOf(communities []partitioned, statistic SizeStatistic) float64 {
	sizes := make([]float64, 0, len(communities))
	for _, community := range communities {
		sizes = append(sizes, float64(len(community.members)))
	}
	if len(sizes) == 0 {
		return 0
	}
	return statistic.combine(sizes)
}

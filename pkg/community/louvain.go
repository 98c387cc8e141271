package community

import "sort"

// louvainState tracks one level of Louvain modularity optimization: the
// community of each node and the in/tot weight sums per community.
type louvainState struct {
	graph      *weightedGraph
	resolution float64
	nodeComm   []int
	in         []float64 // intra-community edge weight, self-loops counted once
	tot        []float64 // total weighted degree of the community
	sizes      []int
}

func newLouvainState(g *weightedGraph, resolution float64) *louvainState {
	n := len(g.adj)
	state := &louvainState{
		graph:      g,
		resolution: resolution,
		nodeComm:   make([]int, n),
		in:         make([]float64, n),
		tot:        make([]float64, n),
		sizes:      make([]int, n),
	}
	for node := 0; node < n; node++ {
		state.nodeComm[node] = node
		state.in[node] = g.self[node]
		state.tot[node] = g.degree[node]
		state.sizes[node] = 1
	}
	return state
}

// neighborCommWeights sums the weight from node to each neighboring
// community, excluding self-loops.
func (s *louvainState) neighborCommWeights(node int) map[int]float64 {
	weights := make(map[int]float64)
	weights[s.nodeComm[node]] += 0
	for neighbor, weight := range s.graph.adj[node] {
		if neighbor != node {
			weights[s.nodeComm[neighbor]] += weight
		}
	}
	return weights
}

func (s *louvainState) remove(node, comm int, weightToComm float64) {
	s.tot[comm] -= s.graph.degree[node]
	s.in[comm] -= weightToComm + s.graph.self[node]
	s.sizes[comm]--
	s.nodeComm[node] = -1
}

func (s *louvainState) insert(node, comm int, weightToComm float64) {
	s.tot[comm] += s.graph.degree[node]
	s.in[comm] += weightToComm + s.graph.self[node]
	s.sizes[comm]++
	s.nodeComm[node] = comm
}

// oneLevel moves nodes between communities until no move improves
// modularity. Nodes are visited in ascending index order and candidate
// communities in ascending id, with a strictly positive gain required to
// leave the current community, so identical inputs always produce identical
// partitions.
func (s *louvainState) oneLevel(maxPasses int) bool {
	improved := false
	twoM := 2 * s.graph.total
	if twoM == 0 {
		return false
	}

	for pass := 0; pass < maxPasses; pass++ {
		moves := 0

		for node := 0; node < len(s.graph.adj); node++ {
			oldComm := s.nodeComm[node]
			weights := s.neighborCommWeights(node)

			s.remove(node, oldComm, weights[oldComm])

			// Gain of inserting the isolated node into comm, up to a
			// constant: k_in(comm) - resolution * tot(comm) * k / 2m.
			k := s.graph.degree[node]
			bestComm := oldComm
			bestGain := weights[oldComm] - s.resolution*s.tot[oldComm]*k/twoM

			for _, comm := range sortedKeys(weights) {
				if comm == oldComm {
					continue
				}
				gain := weights[comm] - s.resolution*s.tot[comm]*k/twoM
				if gain > bestGain {
					bestComm = comm
					bestGain = gain
				}
			}

			s.insert(node, bestComm, weights[bestComm])
			if bestComm != oldComm {
				moves++
			}
		}

		if moves == 0 {
			break
		}
		improved = true
	}
	return improved
}

// modularity returns the partition quality at the configured resolution.
func (s *louvainState) modularity() float64 {
	twoM := 2 * s.graph.total
	if twoM == 0 {
		return 0
	}
	q := 0.0
	for comm := range s.in {
		if s.sizes[comm] > 0 {
			q += 2*s.in[comm]/twoM - s.resolution*(s.tot[comm]/twoM)*(s.tot[comm]/twoM)
		}
	}
	return q
}

const louvainMaxPasses = 128

// louvain runs multi-level Louvain modularity optimization and returns the
// community of each node, ids compacted in order of first appearance.
func louvain(g *weightedGraph, resolution float64) []int {
	assignment := make([]int, len(g.adj))
	for node := range assignment {
		assignment[node] = node
	}

	current := g
	for {
		state := newLouvainState(current, resolution)
		if !state.oneLevel(louvainMaxPasses) {
			break
		}

		coarse, mapping := current.coarsen(state.nodeComm)
		for node := range assignment {
			assignment[node] = mapping[assignment[node]]
		}
		if len(coarse.adj) >= len(current.adj) {
			break
		}
		current = coarse
	}

	return compactAssignment(assignment)
}

// compactAssignment renumbers community ids in order of first appearance.
func compactAssignment(assignment []int) []int {
	compact := make(map[int]int)
	order := 0
	result := make([]int, len(assignment))
	for node, comm := range assignment {
		id, ok := compact[comm]
		if !ok {
			id = order
			compact[comm] = id
			order++
		}
		result[node] = id
	}
	return result
}

func sortedKeys(weights map[int]float64) []int {
	keys := make([]int, 0, len(weights))
	for key := range weights {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	return keys
}

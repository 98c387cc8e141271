package community

import (
	"sort"

	"github.com/lucasfein/ppi/pkg/network"
)

// weightedGraph is the dense-index view of a network used by the partitioning
// algorithms. Node indices follow sorted accession order, which fixes the
// tie-breaking order of every greedy decision.
type weightedGraph struct {
	labels []string
	adj    []map[int]float64
	self   []float64 // self-loop weights, present only in coarsened graphs
	degree []float64 // weighted degree, self-loops counted twice
	total  float64   // sum of edge weights, each undirected edge counted once
}

func newWeightedGraph(n int) *weightedGraph {
	g := &weightedGraph{
		labels: make([]string, n),
		adj:    make([]map[int]float64, n),
		self:   make([]float64, n),
		degree: make([]float64, n),
	}
	for i := range g.adj {
		g.adj[i] = make(map[int]float64)
	}
	return g
}

// addEdge accumulates weight between two distinct nodes.
func (g *weightedGraph) addEdge(u, v int, weight float64) {
	g.adj[u][v] += weight
	g.adj[v][u] += weight
	g.degree[u] += weight
	g.degree[v] += weight
	g.total += weight
}

// addSelfLoop accumulates a node's self-loop weight.
func (g *weightedGraph) addSelfLoop(u int, weight float64) {
	g.self[u] += weight
	g.degree[u] += 2 * weight
	g.total += weight
}

// buildGraph converts a weighted network into the index view. The caller has
// verified that edge weights are set.
func buildGraph(net *network.Network) *weightedGraph {
	accessions := net.Proteins()
	index := make(map[string]int, len(accessions))
	for i, accession := range accessions {
		index[accession] = i
	}

	g := newWeightedGraph(len(accessions))
	copy(g.labels, accessions)
	for _, interaction := range net.Interactions() {
		weight, _ := interaction.Weight()
		g.addEdge(index[interaction.A], index[interaction.B], weight)
	}
	return g
}

// coarsen builds the graph whose nodes are the communities of an assignment.
// Community ids are compacted in ascending order, keeping coarsening
// deterministic.
func (g *weightedGraph) coarsen(assignment []int) (*weightedGraph, []int) {
	compact := make(map[int]int)
	order := 0
	for node := 0; node < len(assignment); node++ {
		if _, ok := compact[assignment[node]]; !ok {
			compact[assignment[node]] = order
			order++
		}
	}

	coarse := newWeightedGraph(order)
	mapping := make([]int, len(assignment))
	for node, comm := range assignment {
		mapping[node] = compact[comm]
	}

	for u := range g.adj {
		cu := mapping[u]
		coarse.self[cu] += g.self[u]
		for v, weight := range g.adj[u] {
			if u < v {
				cv := mapping[v]
				if cu == cv {
					coarse.self[cu] += weight
				} else if cu < cv {
					coarse.adj[cu][cv] += weight
					coarse.adj[cv][cu] += weight
				} else {
					coarse.adj[cv][cu] += weight
					coarse.adj[cu][cv] += weight
				}
			}
		}
	}

	for u := range coarse.adj {
		coarse.degree[u] = 2 * coarse.self[u]
		coarse.total += coarse.self[u]
		for v, weight := range coarse.adj[u] {
			coarse.degree[u] += weight
			if u < v {
				coarse.total += weight
			}
		}
	}
	return coarse, mapping
}

// neighborsAscending returns a node's neighbors in ascending index order.
func (g *weightedGraph) neighborsAscending(u int) []int {
	neighbors := make([]int, 0, len(g.adj[u]))
	for v := range g.adj[u] {
		neighbors = append(neighbors, v)
	}
	sort.Ints(neighbors)
	return neighbors
}

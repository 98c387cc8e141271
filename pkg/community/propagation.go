package community

const propagationMaxIterations = 128

// labelPropagation assigns each node the label carrying the most incident
// edge weight among its neighbors, iterating until convergence. Nodes are
// visited in ascending index order and weight ties resolve to the smallest
// label, keeping the result deterministic. The resolution parameter is
// unused; label propagation has no scale knob.
func labelPropagation(g *weightedGraph, _ float64) []int {
	n := len(g.adj)
	labels := make([]int, n)
	for node := range labels {
		labels[node] = node
	}

	for iteration := 0; iteration < propagationMaxIterations; iteration++ {
		changed := false

		for node := 0; node < n; node++ {
			weights := make(map[int]float64)
			for _, neighbor := range g.neighborsAscending(node) {
				if neighbor != node {
					weights[labels[neighbor]] += g.adj[node][neighbor]
				}
			}
			if len(weights) == 0 {
				continue
			}

			bestLabel := labels[node]
			bestWeight := weights[bestLabel]
			for _, label := range sortedKeys(weights) {
				if weights[label] > bestWeight {
					bestLabel = label
					bestWeight = weights[label]
				}
			}

			if bestLabel != labels[node] {
				labels[node] = bestLabel
				changed = true
			}
		}

		if !changed {
			break
		}
	}

	return compactAssignment(labels)
}

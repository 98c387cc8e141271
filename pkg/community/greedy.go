package community

import "sort"

// greedyModularity merges connected communities pairwise, always taking the
// merge with the largest modularity gain, until no merge improves modularity.
// Ties resolve to the lowest community id pair, keeping the partition
// deterministic.
func greedyModularity(g *weightedGraph, resolution float64) []int {
	n := len(g.adj)
	assignment := make([]int, n)
	for node := range assignment {
		assignment[node] = node
	}
	twoM := 2 * g.total
	if twoM == 0 {
		return assignment
	}

	// Community-level adjacency, merged in place.
	between := make([]map[int]float64, n)
	tot := make([]float64, n)
	alive := make([]bool, n)
	for node := 0; node < n; node++ {
		between[node] = make(map[int]float64, len(g.adj[node]))
		for neighbor, weight := range g.adj[node] {
			if neighbor != node {
				between[node][neighbor] = weight
			}
		}
		tot[node] = g.degree[node]
		alive[node] = true
	}

	for {
		bestA, bestB := -1, -1
		bestGain := 0.0

		for a := 0; a < n; a++ {
			if !alive[a] {
				continue
			}
			for _, b := range sortedKeys(between[a]) {
				if b <= a || !alive[b] {
					continue
				}
				// Gain of merging a and b, up to a constant factor:
				// e(a,b) - resolution * tot(a) * tot(b) / 2m.
				gain := between[a][b] - resolution*tot[a]*tot[b]/twoM
				if gain > bestGain {
					bestA, bestB = a, b
					bestGain = gain
				}
			}
		}

		if bestA < 0 {
			break
		}

		// Merge the higher id into the lower.
		for neighbor, weight := range between[bestB] {
			if neighbor == bestA {
				continue
			}
			between[bestA][neighbor] += weight
			between[neighbor][bestA] += weight
			delete(between[neighbor], bestB)
		}
		delete(between[bestA], bestB)
		tot[bestA] += tot[bestB]
		alive[bestB] = false

		for node := range assignment {
			if assignment[node] == bestB {
				assignment[node] = bestA
			}
		}
	}

	return compactAssignment(assignment)
}

// sortedAccessions returns community members in accession order.
func sortedAccessions(members []string) []string {
	sorted := make([]string, len(members))
	copy(sorted, members)
	sort.Strings(sorted)
	return sorted
}

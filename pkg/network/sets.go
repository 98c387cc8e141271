package network

import "sort"

// Union returns the sorted union of protein subsets.
func Union(subsets ...[]string) []string {
	present := make(map[string]bool)
	for _, subset := range subsets {
		for _, accession := range subset {
			present[accession] = true
		}
	}
	union := make([]string, 0, len(present))
	for accession := range present {
		union = append(union, accession)
	}
	sort.Strings(union)
	return union
}

// Intersection returns the sorted intersection of protein subsets. The
// intersection of no subsets is empty.
func Intersection(subsets ...[]string) []string {
	if len(subsets) == 0 {
		return nil
	}
	counts := make(map[string]int)
	for _, subset := range subsets {
		seen := make(map[string]bool, len(subset))
		for _, accession := range subset {
			if !seen[accession] {
				seen[accession] = true
				counts[accession]++
			}
		}
	}
	intersection := make([]string, 0)
	for accession, count := range counts {
		if count == len(subsets) {
			intersection = append(intersection, accession)
		}
	}
	sort.Strings(intersection)
	return intersection
}

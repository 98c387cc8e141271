package network

import (
	"fmt"
	"sort"

	"github.com/lucasfein/ppi/pkg/measurement"
)

// AddMeasurementSeries attaches an aggregated measurement series to a protein
// at one timepoint and modification, creating the protein if absent. A series
// is set once; re-setting the same (time, modification) is an error so that
// downstream styling can read but never partially overwrite it.
func (n *Network) AddMeasurementSeries(accession string, time int, modification string, sites []measurement.Site) error {
	normalized, err := n.AddProtein(accession)
	if err != nil {
		return err
	}
	key := SeriesKey{Time: time, Modification: modification}
	protein := n.nodes[normalized]
	if _, ok := protein.series[key]; ok {
		return fmt.Errorf("%s at %d %s: %w", normalized, time, modification, ErrSeriesExists)
	}
	owned := make([]measurement.Site, len(sites))
	copy(owned, sites)
	protein.series[key] = owned
	return nil
}

// Series returns a protein's measurement series at one timepoint and
// modification.
func (n *Network) Series(accession string, time int, modification string) ([]measurement.Site, bool) {
	protein, ok := n.nodes[accession]
	if !ok {
		return nil, false
	}
	sites, ok := protein.series[SeriesKey{Time: time, Modification: modification}]
	return sites, ok
}

// Times returns the distinct timepoints present across all proteins, sorted.
func (n *Network) Times() []int {
	present := make(map[int]bool)
	for _, protein := range n.nodes {
		for key := range protein.series {
			present[key.Time] = true
		}
	}
	times := make([]int, 0, len(present))
	for time := range present {
		times = append(times, time)
	}
	sort.Ints(times)
	return times
}

// Modifications returns the distinct modifications measured at a timepoint,
// sorted.
func (n *Network) Modifications(time int) []string {
	present := make(map[string]bool)
	for _, protein := range n.nodes {
		for key := range protein.series {
			if key.Time == time {
				present[key.Modification] = true
			}
		}
	}
	modifications := make([]string, 0, len(present))
	for modification := range present {
		modifications = append(modifications, modification)
	}
	sort.Strings(modifications)
	return modifications
}

// SiteCount returns the largest number of sites any protein carries at one
// timepoint and modification.
func (n *Network) SiteCount(time int, modification string) int {
	key := SeriesKey{Time: time, Modification: modification}
	max := 0
	for _, protein := range n.nodes {
		if sites, ok := protein.series[key]; ok && len(sites) > max {
			max = len(sites)
		}
	}
	return max
}

// Measurements returns each measured protein's representative value at one
// timepoint and modification under the given site and replicate combinations.
func (n *Network) Measurements(time int, modification string, site, replicate measurement.Combination) (map[string]float64, error) {
	key := SeriesKey{Time: time, Modification: modification}
	values := make(map[string]float64)
	for accession, protein := range n.nodes {
		sites, ok := protein.series[key]
		if !ok {
			continue
		}
		value, err := measurement.Representative(sites, site, replicate)
		if err != nil {
			return nil, fmt.Errorf("%s at %d %s: %w", accession, time, modification, err)
		}
		values[accession] = value
	}
	return values, nil
}

// ProteinsWithin returns the proteins whose representative measurement at one
// timepoint and modification lies within [lower, upper], bounds inclusive.
func (n *Network) ProteinsWithin(time int, modification string, site, replicate measurement.Combination, lower, upper float64) ([]string, error) {
	values, err := n.Measurements(time, modification, site, replicate)
	if err != nil {
		return nil, err
	}
	selected := make([]string, 0, len(values))
	for accession, value := range values {
		if value >= lower && value <= upper {
			selected = append(selected, accession)
		}
	}
	sort.Strings(selected)
	return selected, nil
}

// ModificationSummary returns, per protein, the sorted modifications measured
// at a timepoint.
func (n *Network) ModificationSummary(time int) map[string][]string {
	summary := make(map[string][]string, len(n.nodes))
	for accession, protein := range n.nodes {
		present := make(map[string]bool)
		for key := range protein.series {
			if key.Time == time {
				present[key.Modification] = true
			}
		}
		modifications := make([]string, 0, len(present))
		for modification := range present {
			modifications = append(modifications, modification)
		}
		sort.Strings(modifications)
		summary[accession] = modifications
	}
	return summary
}

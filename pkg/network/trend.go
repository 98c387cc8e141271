package network

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucasfein/ppi/pkg/measurement"
)

// Trend labels for classified measurement directions.
const (
	TrendUp      = "up"
	TrendMidUp   = "mid up"
	TrendDown    = "down"
	TrendMidDown = "mid down"
)

// TrendClassification labels each measured protein's direction of regulation
// at a timepoint. A protein whose per-modification representatives all rise
// is "up" when any reaches upper, "mid up" otherwise; falling measurements
// mirror this against lower. Mixed directions are labelled per modification,
// sorted ("phosphorylation down ubiquitination up"). Proteins without
// measurements at the timepoint map to the empty string.
func (n *Network) TrendClassification(time int, site, replicate measurement.Combination, lower, upper float64) (map[string]string, error) {
	modifications := n.Modifications(time)
	trends := make(map[string]string, len(n.nodes))

	for accession, protein := range n.nodes {
		perModification := make(map[string]float64)
		for _, modification := range modifications {
			sites, ok := protein.series[SeriesKey{Time: time, Modification: modification}]
			if !ok {
				continue
			}
			value, err := measurement.Representative(sites, site, replicate)
			if err != nil {
				return nil, fmt.Errorf("%s at %d %s: %w", accession, time, modification, err)
			}
			perModification[modification] = value
		}

		trends[accession] = classifyTrend(perModification, lower, upper)
	}
	return trends, nil
}

func classifyTrend(perModification map[string]float64, lower, upper float64) string {
	if len(perModification) == 0 {
		return ""
	}

	allUp, allDown := true, true
	anyHigh, anyLow := false, false
	for _, value := range perModification {
		if value <= 0.0 {
			allUp = false
		}
		if value >= 0.0 {
			allDown = false
		}
		if value >= upper {
			anyHigh = true
		}
		if value <= lower {
			anyLow = true
		}
	}

	switch {
	case allUp && anyHigh:
		return TrendUp
	case allUp:
		return TrendMidUp
	case allDown && anyLow:
		return TrendDown
	case allDown:
		return TrendMidDown
	}

	directions := make([]string, 0, len(perModification))
	for modification, value := range perModification {
		if value > 0.0 {
			directions = append(directions, modification+" up")
		} else {
			directions = append(directions, modification+" down")
		}
	}
	sort.Strings(directions)
	return strings.Join(directions, " ")
}

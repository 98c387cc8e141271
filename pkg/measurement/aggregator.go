// Package measurement reduces raw per-replicate, per-site mass spectrometry
// readings to the per-protein measurement series carried by the interaction
// network.
package measurement

import "fmt"

// Site is one modification site: its sequence position and the converted
// measurement of each replicate.
type Site struct {
	Position     int
	Measurements []float64
}

// RawSite is one modification site as read from a measurement table, before
// replicate reduction and conversion.
type RawSite struct {
	Position   int
	Replicates []float64
}

// Aggregator reduces raw sites to the capped, prioritized series stored per
// protein, timepoint and modification.
type Aggregator struct {
	// MinReplicates is the smallest number of replicate readings a site
	// needs; sites below it are skipped, not zero-filled.
	MinReplicates int

	// SiteCap bounds the number of sites retained per series. Zero means
	// unbounded.
	SiteCap int

	Replicates Combination
	Convert    Conversion
	Prioritize Prioritization
}

// ReduceSite combines one site's replicates and converts the result.
// Returns ErrInsufficientReplicates when fewer than MinReplicates readings
// are present.
func (a Aggregator) ReduceSite(replicates []float64) (float64, error) {
	if len(replicates) < a.MinReplicates || len(replicates) == 0 {
		return 0, fmt.Errorf("%d of %d replicates: %w", len(replicates), a.MinReplicates, ErrInsufficientReplicates)
	}
	combined, err := a.Replicates.Combine(replicates)
	if err != nil {
		return 0, err
	}
	return a.Convert.Convert(combined), nil
}

// Aggregate converts raw sites into a measurement series. Sites with too few
// replicates are dropped; if more sites remain than SiteCap allows, the
// prioritization rule selects which to keep, preserving discovery order among
// kept sites.
func (a Aggregator) Aggregate(raw []RawSite) ([]Site, error) {
	sites := make([]Site, 0, len(raw))
	combined := make([]float64, 0, len(raw))

	for _, site := range raw {
		if len(site.Replicates) < a.MinReplicates || len(site.Replicates) == 0 {
			continue
		}
		value, err := a.ReduceSite(site.Replicates)
		if err != nil {
			return nil, err
		}

		converted := make([]float64, len(site.Replicates))
		for i, replicate := range site.Replicates {
			converted[i] = a.Convert.Convert(replicate)
		}
		sites = append(sites, Site{Position: site.Position, Measurements: converted})
		combined = append(combined, value)
	}

	if len(sites) == 0 {
		return nil, fmt.Errorf("no site meets %d replicates: %w", a.MinReplicates, ErrInsufficientReplicates)
	}

	return a.Prioritize.Select(sites, combined, a.SiteCap), nil
}

// Representative reduces a series to one value: replicates are combined per
// site, then sites are combined across the series.
func Representative(sites []Site, site, replicate Combination) (float64, error) {
	values := make([]float64, 0, len(sites))
	for _, s := range sites {
		value, err := replicate.Combine(s.Measurements)
		if err != nil {
			return 0, err
		}
		values = append(values, value)
	}
	return site.Combine(values)
}

// Package network holds the in-memory protein-protein interaction network:
// proteins keyed by isoform-qualified UniProt accession, undirected
// interactions carrying per-source confidence scores, and per-protein
// measurement series keyed by timepoint and post-translational modification.
//
// All mutation goes through the network's methods; callers never touch
// adjacency or attribute state directly. One network instance is not safe for
// concurrent mutation; callers serialize merges against it.
package network

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucasfein/ppi/pkg/measurement"
)

// SeriesKey identifies one measurement series of a protein.
type SeriesKey struct {
	Time         int
	Modification string
}

// Protein is a node of the interaction network.
type Protein struct {
	Accession string
	series    map[SeriesKey][]measurement.Site
}

// Interaction is an undirected edge between two distinct proteins. A holds
// the lexicographically smaller accession.
type Interaction struct {
	A, B     string
	scores   map[string]float64
	weight   float64
	weighted bool
}

// Sources returns the evidence sources of the interaction, sorted.
func (i *Interaction) Sources() []string {
	sources := make([]string, 0, len(i.scores))
	for source := range i.scores {
		sources = append(sources, source)
	}
	sort.Strings(sources)
	return sources
}

// Score returns the confidence score contributed by one source.
func (i *Interaction) Score(source string) (float64, bool) {
	score, ok := i.scores[source]
	return score, ok
}

// Weight returns the derived scalar weight, if one has been set.
func (i *Interaction) Weight() (float64, bool) {
	return i.weight, i.weighted
}

// Network is the protein-protein interaction graph.
type Network struct {
	nodes     map[string]*Protein
	adjacency map[string]map[string]*Interaction
	edgeCount int
}

// New creates an empty network.
func New() *Network {
	return &Network{
		nodes:     make(map[string]*Protein),
		adjacency: make(map[string]map[string]*Interaction),
	}
}

// NormalizeAccession canonicalizes an isoform-qualified accession. The
// canonical isoform "-1" collapses to the base accession.
func NormalizeAccession(accession string) (string, error) {
	accession = strings.TrimSpace(accession)
	if accession == "" || strings.ContainsAny(accession, " \t") {
		return "", fmt.Errorf("%q: %w", accession, ErrInvalidAccession)
	}
	if base, isoform, ok := strings.Cut(accession, "-"); ok && isoform == "1" {
		return base, nil
	}
	return accession, nil
}

// AddProtein adds a protein node, returning its normalized accession. Adding
// an existing protein is a no-op.
func (n *Network) AddProtein(accession string) (string, error) {
	normalized, err := NormalizeAccession(accession)
	if err != nil {
		return "", err
	}
	if _, ok := n.nodes[normalized]; !ok {
		n.nodes[normalized] = &Protein{
			Accession: normalized,
			series:    make(map[SeriesKey][]measurement.Site),
		}
		n.adjacency[normalized] = make(map[string]*Interaction)
	}
	return normalized, nil
}

// HasProtein reports whether the network contains the protein.
func (n *Network) HasProtein(accession string) bool {
	_, ok := n.nodes[accession]
	return ok
}

// Proteins returns all protein accessions, sorted.
func (n *Network) Proteins() []string {
	accessions := make([]string, 0, len(n.nodes))
	for accession := range n.nodes {
		accessions = append(accessions, accession)
	}
	sort.Strings(accessions)
	return accessions
}

// ProteinCount returns the number of proteins.
func (n *Network) ProteinCount() int {
	return len(n.nodes)
}

// InteractionCount returns the number of interactions.
func (n *Network) InteractionCount() int {
	return n.edgeCount
}

// RemoveProtein removes a protein and all its incident interactions.
func (n *Network) RemoveProtein(accession string) error {
	if _, ok := n.nodes[accession]; !ok {
		return fmt.Errorf("%s: %w", accession, ErrProteinNotFound)
	}
	for neighbor := range n.adjacency[accession] {
		delete(n.adjacency[neighbor], accession)
		n.edgeCount--
	}
	delete(n.adjacency, accession)
	delete(n.nodes, accession)
	return nil
}

// RetainProteins removes every protein not in keep, cascading to incident
// interactions. Used to intersect the network down to a mapped organism
// constraint.
func (n *Network) RetainProteins(keep map[string]bool) {
	for accession := range n.nodes {
		if !keep[accession] {
			n.RemoveProtein(accession)
		}
	}
}

// Neighbors returns the interaction partners of a protein, sorted.
func (n *Network) Neighbors(accession string) []string {
	neighbors := make([]string, 0, len(n.adjacency[accession]))
	for neighbor := range n.adjacency[accession] {
		neighbors = append(neighbors, neighbor)
	}
	sort.Strings(neighbors)
	return neighbors
}

// Interaction returns the interaction between two proteins, if present.
func (n *Network) Interaction(a, b string) (*Interaction, bool) {
	interaction, ok := n.adjacency[a][b]
	return interaction, ok
}

// Interactions returns all interactions ordered by accession pair.
func (n *Network) Interactions() []*Interaction {
	interactions := make([]*Interaction, 0, n.edgeCount)
	for accession, partners := range n.adjacency {
		for neighbor, interaction := range partners {
			if accession < neighbor {
				interactions = append(interactions, interaction)
			}
		}
	}
	sort.Slice(interactions, func(i, j int) bool {
		if interactions[i].A != interactions[j].A {
			return interactions[i].A < interactions[j].A
		}
		return interactions[i].B < interactions[j].B
	})
	return interactions
}

// Subgraph returns the induced subgraph over the given proteins. Measurement
// series are shared (they are immutable once set); interactions are copied so
// that edge weight changes do not leak between graphs.
func (n *Network) Subgraph(members []string) *Network {
	sub := New()
	for _, accession := range members {
		if protein, ok := n.nodes[accession]; ok {
			sub.nodes[accession] = &Protein{Accession: accession, series: protein.series}
			sub.adjacency[accession] = make(map[string]*Interaction)
		}
	}
	for accession := range sub.nodes {
		for neighbor, interaction := range n.adjacency[accession] {
			if _, ok := sub.nodes[neighbor]; !ok || accession > neighbor {
				continue
			}
			scores := make(map[string]float64, len(interaction.scores))
			for source, score := range interaction.scores {
				scores[source] = score
			}
			copied := &Interaction{
				A:        interaction.A,
				B:        interaction.B,
				scores:   scores,
				weight:   interaction.weight,
				weighted: interaction.weighted,
			}
			sub.adjacency[accession][neighbor] = copied
			sub.adjacency[neighbor][accession] = copied
			sub.edgeCount++
		}
	}
	return sub
}

package network

import (
	"fmt"
	"io"
)

// Evidence is one interaction claim from an external source database.
type Evidence struct {
	A, B   string
	Source string
	Score  float64
}

// RejectedEvidence pairs a dropped claim with the reason it was dropped.
type RejectedEvidence struct {
	Evidence Evidence
	Err      error
}

// EvidenceSource produces a lazy, finite, non-restartable sequence of
// interaction claims. Next returns io.EOF after the final claim. Progress
// logging belongs to the consumer, not the source.
type EvidenceSource interface {
	Next() (Evidence, error)
}

// sliceSource adapts a slice of claims to an EvidenceSource.
type sliceSource struct {
	records []Evidence
	next    int
}

// SliceSource returns an EvidenceSource over in-memory claims.
func SliceSource(records []Evidence) EvidenceSource {
	return &sliceSource{records: records}
}

func (s *sliceSource) Next() (Evidence, error) {
	if s.next >= len(s.records) {
		return Evidence{}, io.EOF
	}
	record := s.records[s.next]
	s.next++
	return record, nil
}

// MergeResult reports the outcome of merging one evidence stream.
type MergeResult struct {
	// Accepted holds the normalized claims in merge order, each carrying
	// the score now stored on the edge for its source.
	Accepted []Evidence

	// Rejected holds malformed claims that were dropped.
	Rejected []RejectedEvidence
}

// AddEvidence merges a single interaction claim. Both accessions are
// normalized; missing proteins are created. A claim whose endpoints coincide
// after normalization is rejected. When the unordered pair already carries a
// score from the same source, the larger score wins; other sources are left
// untouched. The returned claim is normalized and carries the stored score.
func (n *Network) AddEvidence(a, b, source string, score float64) (Evidence, error) {
	accessionA, err := NormalizeAccession(a)
	if err != nil {
		return Evidence{}, err
	}
	accessionB, err := NormalizeAccession(b)
	if err != nil {
		return Evidence{}, err
	}
	if accessionA == accessionB {
		return Evidence{}, fmt.Errorf("%s with itself: %w", accessionA, ErrSelfInteraction)
	}
	if accessionA > accessionB {
		accessionA, accessionB = accessionB, accessionA
	}

	if _, err := n.AddProtein(accessionA); err != nil {
		return Evidence{}, err
	}
	if _, err := n.AddProtein(accessionB); err != nil {
		return Evidence{}, err
	}

	interaction, ok := n.adjacency[accessionA][accessionB]
	if !ok {
		interaction = &Interaction{
			A:      accessionA,
			B:      accessionB,
			scores: map[string]float64{source: score},
		}
		n.adjacency[accessionA][accessionB] = interaction
		n.adjacency[accessionB][accessionA] = interaction
		n.edgeCount++
	} else if existing, ok := interaction.scores[source]; !ok || score > existing {
		interaction.scores[source] = score
	}

	return Evidence{
		A:      accessionA,
		B:      accessionB,
		Source: source,
		Score:  interaction.scores[source],
	}, nil
}

// MergeEvidence drains an evidence stream into the network. Malformed claims
// (self-interactions, invalid accessions) are collected, not fatal; a source
// error other than io.EOF aborts the merge.
func (n *Network) MergeEvidence(stream EvidenceSource) (*MergeResult, error) {
	result := &MergeResult{}
	for {
		record, err := stream.Next()
		if err == io.EOF {
			return result, nil
		}
		if err != nil {
			return result, fmt.Errorf("evidence stream: %w", err)
		}

		accepted, err := n.AddEvidence(record.A, record.B, record.Source, record.Score)
		if err != nil {
			result.Rejected = append(result.Rejected, RejectedEvidence{Evidence: record, Err: err})
			continue
		}
		result.Accepted = append(result.Accepted, accepted)
	}
}

// Package enrichment tests protein subsets for over- or under-representation
// of externally annotated terms against a reference population. It produces
// raw p-values only; multiple-testing correction is a separate step.
package enrichment

import "fmt"

// Term is an external annotation term: a Gene Ontology term or a Reactome
// pathway, identified and displayed by the annotation collaborator.
type Term struct {
	ID   string
	Name string
}

// Direction selects the tested tail.
type Direction string

// Test directions
const (
	OverRepresentation  Direction = "over-representation"
	UnderRepresentation Direction = "under-representation"
)

// ParseDirection maps the configuration flag for increased representation to
// a direction.
func ParseDirection(increase bool) Direction {
	if increase {
		return OverRepresentation
	}
	return UnderRepresentation
}

// Test selects the statistical procedure.
type Test string

// Supported tests
const (
	Hypergeometric Test = "hypergeometric"
	RankSum        Test = "rank sum"
	AbsoluteRank   Test = "absolute rank sum"
)

// ParseTest resolves a test name. The empty name defaults to the
// hypergeometric test.
func ParseTest(name string) (Test, error) {
	switch Test(name) {
	case "":
		return Hypergeometric, nil
	case Hypergeometric, RankSum, AbsoluteRank:
		return Test(name), nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownTest)
	}
}

// Set is a protein set keyed by accession.
type Set map[string]bool

// NewSet builds a Set from accessions.
func NewSet(accessions []string) Set {
	set := make(Set, len(accessions))
	for _, accession := range accessions {
		set[accession] = true
	}
	return set
}

// Key identifies one (query set, term) test.
type Key struct {
	Query int
	Term  Term
}

// PairError records a single skipped (query, term) pair; the remaining pairs
// of the batch proceed.
type PairError struct {
	Key Key
	Err error
}

func (e PairError) Error() string {
	return fmt.Sprintf("query %d, term %s: %v", e.Key.Query, e.Key.Term.ID, e.Err)
}

// AnnotationUniverse returns the union of all annotated proteins, the
// reference used when no explicit reference population is supplied.
func AnnotationUniverse(annotation map[Term]Set) Set {
	universe := make(Set)
	for _, annotated := range annotation {
		for accession := range annotated {
			universe[accession] = true
		}
	}
	return universe
}

// TestSets computes one raw p-value per (query, term) pair with the one-sided
// hypergeometric test. references holds either one shared reference or one
// per query; an empty reference set stands for the annotation universe. A
// pair with an empty reference or an unannotated term is skipped and
// reported, not fatal.
func TestSets(queries []Set, references []Set, annotation map[Term]Set, direction Direction) (map[Key]float64, []PairError) {
	universe := AnnotationUniverse(annotation)

	results := make(map[Key]float64)
	var skipped []PairError

	for q, query := range queries {
		reference := referenceFor(references, q, universe)

		if len(reference) == 0 {
			for term := range annotation {
				skipped = append(skipped, PairError{Key{q, term}, ErrEmptyReference})
			}
			continue
		}

		M := len(reference)
		N := intersectionSize(query, reference)

		for term, annotated := range annotation {
			key := Key{Query: q, Term: term}
			if len(annotated) == 0 {
				skipped = append(skipped, PairError{key, ErrEmptyAnnotation})
				continue
			}

			n := intersectionSize(annotated, reference)
			k := 0
			for accession := range annotated {
				if query[accession] && reference[accession] {
					k++
				}
			}

			var p float64
			var err error
			if direction == UnderRepresentation {
				p, err = HypergeometricUnder(k, M, n, N)
			} else {
				p, err = HypergeometricOver(k, M, n, N)
			}
			if err != nil {
				skipped = append(skipped, PairError{key, err})
				continue
			}
			results[key] = p
		}
	}
	return results, skipped
}

// TestMeasurements computes one raw p-value per (query, term) pair with the
// Mann-Whitney U test, comparing the measurements of term-annotated proteins
// against the rest of the query. Queries map each measured protein to its
// representative value.
func TestMeasurements(queries []map[string]float64, annotation map[Term]Set, direction Direction, absolute bool) (map[Key]float64, []PairError) {
	results := make(map[Key]float64)
	var skipped []PairError

	for q, measurements := range queries {
		for term, annotated := range annotation {
			key := Key{Query: q, Term: term}
			if len(annotated) == 0 {
				skipped = append(skipped, PairError{key, ErrEmptyAnnotation})
				continue
			}

			var inTerm, complement []float64
			for accession, value := range measurements {
				if annotated[accession] {
					inTerm = append(inTerm, value)
				} else {
					complement = append(complement, value)
				}
			}

			p, err := MannWhitney(inTerm, complement, direction, absolute)
			if err != nil {
				skipped = append(skipped, PairError{key, err})
				continue
			}
			results[key] = p
		}
	}
	return results, skipped
}

func referenceFor(references []Set, query int, universe Set) Set {
	var reference Set
	switch {
	case len(references) == 0:
		reference = universe
	case len(references) == 1:
		reference = references[0]
	case query < len(references):
		reference = references[query]
	}
	if len(reference) == 0 {
		return universe
	}
	return reference
}

func intersectionSize(a, b Set) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	count := 0
	for accession := range a {
		if b[accession] {
			count++
		}
	}
	return count
}

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/lucasfein/ppi/pkg/enrichment"
	"github.com/lucasfein/ppi/pkg/measurement"
	"github.com/lucasfein/ppi/pkg/network"
)

// evidenceFile streams interaction claims from a tab-separated file with
// columns: interactor A, interactor B, confidence score. Claims scoring below
// the threshold are filtered at the source.
type evidenceFile struct {
	file      *os.File
	reader    *csv.Reader
	source    string
	threshold float64
}

func openEvidence(path, source string, threshold float64) (*evidenceFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open evidence: %w", err)
	}

	reader := csv.NewReader(file)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1

	return &evidenceFile{
		file:      file,
		reader:    reader,
		source:    source,
		threshold: threshold,
	}, nil
}

func (e *evidenceFile) Next() (network.Evidence, error) {
	for {
		record, err := e.reader.Read()
		if err != nil {
			return network.Evidence{}, err
		}
		if len(record) < 2 {
			continue
		}

		score := 1.0
		if len(record) >= 3 {
			parsed, err := strconv.ParseFloat(record[2], 64)
			if err != nil {
				continue
			}
			score = parsed
		}
		if score < e.threshold {
			continue
		}

		return network.Evidence{
			A:      record[0],
			B:      record[1],
			Source: e.source,
			Score:  score,
		}, nil
	}
}

func (e *evidenceFile) Close() error {
	return e.file.Close()
}

// readMeasurements reads a tab-separated measurement table with columns:
// accession, site position, then one column per replicate. Rows of the same
// accession accumulate as separate sites.
func readMeasurements(path string) (map[string][]measurement.RawSite, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open measurements: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1

	sites := make(map[string][]measurement.RawSite)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return sites, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read measurements: %w", err)
		}
		if len(record) < 3 {
			continue
		}

		position, err := strconv.Atoi(record[1])
		if err != nil {
			continue
		}

		replicates := make([]float64, 0, len(record)-2)
		for _, field := range record[2:] {
			if field == "" {
				continue
			}
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				continue
			}
			replicates = append(replicates, value)
		}

		sites[record[0]] = append(sites[record[0]], measurement.RawSite{
			Position:   position,
			Replicates: replicates,
		})
	}
}

// readAnnotation reads a GMT-style annotation file: term ID, term name, then
// one column per annotated protein.
func readAnnotation(path string) (map[enrichment.Term]enrichment.Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open annotation: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1

	annotation := make(map[enrichment.Term]enrichment.Set)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return annotation, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read annotation: %w", err)
		}
		if len(record) < 3 {
			continue
		}

		term := enrichment.Term{ID: record[0], Name: record[1]}
		annotation[term] = enrichment.NewSet(record[2:])
	}
}

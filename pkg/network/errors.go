package network

import "errors"

// Common network errors
var (
	ErrSelfInteraction  = errors.New("self-interaction")
	ErrInvalidAccession = errors.New("invalid protein accession")
	ErrProteinNotFound  = errors.New("protein not found")
	ErrSeriesExists     = errors.New("measurement series already set")
	ErrNoEdgeWeights    = errors.New("edge weights not set")
)

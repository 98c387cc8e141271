package enrichment

import "errors"

// Common enrichment errors
var (
	ErrEmptyReference  = errors.New("empty reference population")
	ErrEmptyAnnotation = errors.New("empty term annotation")
	ErrEmptySample     = errors.New("empty measurement sample")
	ErrInvalidCounts   = errors.New("inconsistent contingency counts")
	ErrUnknownTest     = errors.New("unknown enrichment test")
)

package measurement

import "errors"

// Common measurement errors
var (
	ErrEmptySequence          = errors.New("empty measurement sequence")
	ErrInsufficientReplicates = errors.New("insufficient replicates")
	ErrUnknownCombination     = errors.New("unknown combination")
	ErrUnknownConversion      = errors.New("unknown logarithm base")
	ErrUnknownPrioritization  = errors.New("unknown site prioritization")
)

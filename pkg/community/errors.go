package community

import "errors"

// Common community detection errors
var (
	ErrUnknownAlgorithm  = errors.New("unknown community detection algorithm")
	ErrUnknownStatistic  = errors.New("unknown community size statistic")
	ErrInvalidResolution = errors.New("resolution must be positive")
)

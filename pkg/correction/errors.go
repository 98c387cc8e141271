package correction

import "errors"

// Common correction errors
var (
	ErrInvalidPValue    = errors.New("p-value outside the unit interval")
	ErrUnknownProcedure = errors.New("unknown correction procedure")
)

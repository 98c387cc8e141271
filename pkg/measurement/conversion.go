package measurement

import (
	"fmt"
	"math"
)

// Conversion transforms a combined measurement onto a comparison scale.
type Conversion struct {
	name    string
	convert func(float64) float64
}

// Name returns the registered name of the conversion.
func (c Conversion) Name() string {
	return c.name
}

// Convert applies the conversion to a single measurement.
func (c Conversion) Convert(value float64) float64 {
	return c.convert(value)
}

func identity(value float64) float64 { return value }

var conversions = map[string]Conversion{
	"":      {"", identity},
	"none":  {"none", identity},
	"log2":  {"log2", math.Log2},
	"log10": {"log10", math.Log10},
	"ln":    {"ln", math.Log},
}

// LogConversion resolves a named logarithmic conversion. The empty name and
// "none" map to the identity.
func LogConversion(name string) (Conversion, error) {
	conversion, ok := conversions[name]
	if !ok {
		return Conversion{}, fmt.Errorf("conversion %q: %w", name, ErrUnknownConversion)
	}
	return conversion, nil
}

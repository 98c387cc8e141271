// Package config loads and validates workflow configuration from YAML files.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Config is the root workflow configuration.
type Config struct {
	Networks     []NetworkConfig   `yaml:"networks" validate:"required,min=1,dive"`
	Measurements []MeasurementFile `yaml:"measurements" validate:"omitempty,dive"`
	EdgeWeight   string            `yaml:"edge_weight"`
	Community    CommunityConfig   `yaml:"community"`
	Enrichment   EnrichmentConfig  `yaml:"enrichment"`
	Workers      int               `yaml:"workers" validate:"min=0"`
	LogLevel     string            `yaml:"log_level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
}

// NetworkConfig names one interaction evidence file.
type NetworkConfig struct {
	Path      string  `yaml:"path" validate:"required"`
	Source    string  `yaml:"source" validate:"required"`
	Threshold float64 `yaml:"threshold" validate:"min=0,max=1"`
}

// MeasurementFile names one mass spectrometry measurement file and its
// processing parameters.
type MeasurementFile struct {
	Path             string  `yaml:"path" validate:"required"`
	Time             int     `yaml:"time" validate:"min=0"`
	Modification     string  `yaml:"modification" validate:"required"`
	SiteCombination  string  `yaml:"site_combination"`
	ReplicateAverage string  `yaml:"replicate_average"`
	Conversion       string  `yaml:"conversion"`
	Prioritization   string  `yaml:"site_prioritization"`
	MinReplicates    int     `yaml:"replicates" validate:"min=0"`
	Sites            int     `yaml:"sites" validate:"min=0"`
	LowerBound       float64 `yaml:"lower_bound"`
	UpperBound       float64 `yaml:"upper_bound"`
}

// CommunityConfig controls community detection.
type CommunityConfig struct {
	Algorithm       string  `yaml:"algorithm"`
	Resolution      float64 `yaml:"resolution" validate:"min=0"`
	CommunitySize   int     `yaml:"community_size" validate:"min=0"`
	SizeStatistic   string  `yaml:"community_size_average"`
	MinSize         int     `yaml:"min_size" validate:"min=0"`
	MaxRepartitions int     `yaml:"max_repartitions" validate:"min=0"`
}

// EnrichmentConfig controls per-community enrichment analysis.
type EnrichmentConfig struct {
	Test       string `yaml:"test"`
	Correction string `yaml:"correction"`
	Increase   bool   `yaml:"increase"`
	Absolute   bool   `yaml:"absolute"`
	Annotation string `yaml:"annotation"`
}

// Defaults applied after unmarshalling
const (
	DefaultMinReplicates = 1
	DefaultSiteCap       = 5
	DefaultResolution    = 1.0
)

// Load reads, defaults, and validates a workflow configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates configuration bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := validate.Struct(&cfg); err != nil {
		return nil, formatValidationError(err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	for i := range c.Measurements {
		m := &c.Measurements[i]
		if m.MinReplicates == 0 {
			m.MinReplicates = DefaultMinReplicates
		}
		if m.Sites == 0 {
			m.Sites = DefaultSiteCap
		}
	}
	if c.Community.Resolution == 0 {
		c.Community.Resolution = DefaultResolution
	}
}

// formatValidationError converts validator errors to user-friendly messages
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of %s", field, param)
		default:
			return fmt.Errorf("%s: failed %s validation", field, tag)
		}
	}
	return err
}

// Package config resolves the defaults chromatic applies when a command does not say otherwise.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jmylchreest/chromatic/pkg/colour"
)

// Environment variables read by Builder.WithEnvConfig.
const (
	EnvIlluminant = "CHROMATIC_ILLUMINANT"
	EnvRGBSpace   = "CHROMATIC_RGB_SPACE"
	EnvMetric     = "CHROMATIC_METRIC"
)

// Metric names a colour difference formula.
type Metric string

const (
	MetricCIEDE2000 Metric = "ciede2000"
	MetricEuclidean Metric = "euclidean"
)

// ErrInvalidMetric is returned for metric names other than ciede2000 and euclidean.
var ErrInvalidMetric = errors.New("invalid metric")

// ParseMetric accepts a metric name, ignoring case. "de2000" and "cie76" are accepted as aliases.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ciede2000", "de2000", "de00":
		return MetricCIEDE2000, nil
	case "euclidean", "cie76", "de76":
		return MetricEuclidean, nil
	}
	return "", fmt.Errorf("%w: %q (valid: ciede2000, euclidean)", ErrInvalidMetric, s)
}

// Config holds the working defaults.
type Config struct {
	// Illuminant is the white point for Lab, Luv, LCh and XYZ results.
	Illuminant colour.Illuminant
	// RGBSpace is the device space for RGB, HSV and HSL values.
	RGBSpace *colour.RGBSpace
	// Metric is the distance formula used by the distance command.
	Metric Metric
}

// Default returns D65, sRGB and CIEDE2000.
func Default() Config {
	return Config{
		Illuminant: colour.D65,
		RGBSpace:   colour.SRGB,
		Metric:     MetricCIEDE2000,
	}
}

// Validate checks that every field is usable.
func (c Config) Validate() error {
	if c.Illuminant.IsZero() {
		return errors.New("illuminant is not set")
	}
	if c.Illuminant.Y <= 0 {
		return fmt.Errorf("illuminant %s has non-positive luminance", c.Illuminant.Name)
	}
	if c.RGBSpace == nil {
		return errors.New("rgb space is not set")
	}
	if _, err := ParseMetric(string(c.Metric)); err != nil {
		return err
	}
	return nil
}

// Builder assembles a Config from defaults, the environment and explicit overrides,
// in that order of precedence.
type Builder struct {
	config Config
	useEnv bool
}

// NewBuilder creates a builder seeded with Default.
func NewBuilder() *Builder {
	return &Builder{config: Default()}
}

// WithConfig replaces the base configuration.
func (b *Builder) WithConfig(config Config) *Builder {
	b.config = config
	return b
}

// WithEnvConfig loads configuration from environment variables.
// Reads CHROMATIC_ILLUMINANT, CHROMATIC_RGB_SPACE and CHROMATIC_METRIC.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// Build resolves and validates the configuration.
func (b *Builder) Build() (Config, error) {
	config := b.config

	if b.useEnv {
		if name := os.Getenv(EnvIlluminant); name != "" {
			ill, err := colour.LookupIlluminant(name)
			if err != nil {
				return Config{}, fmt.Errorf("%s: %w", EnvIlluminant, err)
			}
			config.Illuminant = ill
		}
		if name := os.Getenv(EnvRGBSpace); name != "" {
			space, err := colour.LookupRGBSpace(name)
			if err != nil {
				return Config{}, fmt.Errorf("%s: %w", EnvRGBSpace, err)
			}
			config.RGBSpace = space
		}
		if name := os.Getenv(EnvMetric); name != "" {
			metric, err := ParseMetric(name)
			if err != nil {
				return Config{}, fmt.Errorf("%s: %w", EnvMetric, err)
			}
			config.Metric = metric
		}
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

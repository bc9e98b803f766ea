package config

import (
	"errors"
	"testing"

	"github.com/jmylchreest/chromatic/pkg/colour"
)

func TestDefault(t *testing.T) {
	cfg, err := NewBuilder().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !cfg.Illuminant.Equal(colour.D65) {
		t.Errorf("Illuminant = %v, want D65", cfg.Illuminant)
	}
	if cfg.RGBSpace != colour.SRGB {
		t.Errorf("RGBSpace = %v, want sRGB", cfg.RGBSpace)
	}
	if cfg.Metric != MetricCIEDE2000 {
		t.Errorf("Metric = %v, want %v", cfg.Metric, MetricCIEDE2000)
	}
}

func TestWithEnvConfig(t *testing.T) {
	t.Setenv(EnvIlluminant, "d50")
	t.Setenv(EnvRGBSpace, "display-p3")
	t.Setenv(EnvMetric, "CIE76")

	cfg, err := NewBuilder().WithEnvConfig().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !cfg.Illuminant.Equal(colour.D50) {
		t.Errorf("Illuminant = %v, want D50", cfg.Illuminant)
	}
	if cfg.RGBSpace != colour.DisplayP3 {
		t.Errorf("RGBSpace = %v, want Display P3", cfg.RGBSpace)
	}
	if cfg.Metric != MetricEuclidean {
		t.Errorf("Metric = %v, want %v", cfg.Metric, MetricEuclidean)
	}
}

func TestEnvIgnoredWithoutOptIn(t *testing.T) {
	t.Setenv(EnvIlluminant, "A")

	cfg, err := NewBuilder().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !cfg.Illuminant.Equal(colour.D65) {
		t.Errorf("Illuminant = %v, want D65 when env is not requested", cfg.Illuminant)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  error
	}{
		{"unknown illuminant", EnvIlluminant, "D93", colour.ErrUnknownIlluminant},
		{"unknown rgb space", EnvRGBSpace, "rec2020", colour.ErrUnknownRGBSpace},
		{"unknown metric", EnvMetric, "cmc", ErrInvalidMetric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := NewBuilder().WithEnvConfig().Build()
			if !errors.Is(err, tt.want) {
				t.Errorf("Build() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"default", Default(), false},
		{"no illuminant", Config{RGBSpace: colour.SRGB, Metric: MetricEuclidean}, true},
		{"no rgb space", Config{Illuminant: colour.D50, Metric: MetricEuclidean}, true},
		{"bad metric", Config{Illuminant: colour.D50, RGBSpace: colour.SRGB, Metric: "cmc"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

package cli

import (
	"testing"

	"github.com/jmylchreest/chromatic/internal/config"
	"github.com/jmylchreest/chromatic/internal/parse"
	"github.com/jmylchreest/chromatic/pkg/colour"
)

func TestNum(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0"},
		{-0.00001, "0"},
		{60, "60"},
		{53.240794, "53.2408"},
		{-12.5, "-12.5"},
		{100.00004, "100"},
	}

	for _, tt := range tests {
		if got := num(tt.input); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNotationParsesBack(t *testing.T) {
	colours := []colour.Colour{
		colour.RGB{R: 1, G: 0.5, B: 0.25, Space: colour.AdobeRGB},
		colour.LinearRGB{R: 0.2, G: 0.3, B: 0.4},
		colour.HSV{H: 200, S: 0.5, V: 0.75},
		colour.HSL{H: 10, S: 0.25, L: 0.5, Space: colour.ProPhotoRGB},
		colour.XYZ{X: 0.5, Y: 0.4, Z: 0.3, White: colour.D50},
		colour.Lab{L: 40, A: -20, B: 30, White: colour.IlluminantA},
		colour.Luv{L: 70, U: 10, V: -5},
		colour.LChab{L: 50, C: 20, H: 300, White: colour.D75},
		colour.LChuv{L: 50, C: 20, H: 300, White: colour.IlluminantF2},
	}

	for _, c := range colours {
		text := notation(c)
		back, err := parse.Colour(text)
		if err != nil {
			t.Errorf("parse(%q) error = %v", text, err)
			continue
		}
		if got := notation(back); got != text {
			t.Errorf("notation round trip %q -> %q", text, got)
		}
		d, err := colour.EuclideanDistance(c, back)
		if err != nil || d > 1e-3 {
			t.Errorf("%q parsed back %g away (%v)", text, d, err)
		}
	}
}

func TestSplitStops(t *testing.T) {
	inputs, positions, err := splitStops([]string{"red@0", "lab(50 0 0)@0.5", "blue@1"})
	if err != nil {
		t.Fatal(err)
	}
	if inputs[1] != "lab(50 0 0)" || positions[1] != 0.5 {
		t.Errorf("splitStops() = %q, %v", inputs, positions)
	}

	inputs, positions, err = splitStops([]string{"red", "blue"})
	if err != nil || positions != nil || inputs[1] != "blue" {
		t.Errorf("splitStops() without positions = %q, %v, %v", inputs, positions, err)
	}

	if _, _, err := splitStops([]string{"red@x", "blue@1"}); err == nil {
		t.Error("expected an error for a malformed position")
	}
}

func TestSpaceByName(t *testing.T) {
	cfg := config.Default()
	for _, name := range spaceNames {
		ops, err := spaceByName(name, cfg)
		if err != nil {
			t.Fatalf("spaceByName(%q) error = %v", name, err)
		}
		out, err := ops.convert(colour.NewRGB(0.2, 0.4, 0.6))
		if err != nil {
			t.Fatalf("convert to %s: %v", name, err)
		}
		if space, _ := describe(out); space != ops.name {
			t.Errorf("convert to %s produced %s", name, space)
		}
	}

	if _, err := spaceByName("cmyk", cfg); err == nil {
		t.Error("expected an error for an unknown space")
	}
}

func TestSpaceOfKeepsFlavour(t *testing.T) {
	lab := colour.Lab{L: 50, A: 10, B: 10, White: colour.D50}
	out, err := spaceOf(lab).adjust(lab, adjustments{lighten: 5})
	if err != nil {
		t.Fatal(err)
	}
	got, ok := out.(colour.Lab)
	if !ok || !got.White.Equal(colour.D50) {
		t.Errorf("adjusted value %v lost its type or white point", out)
	}
}

func TestFlagValues(t *testing.T) {
	var ill colour.Illuminant
	iv := &illuminantValue{ill: &ill}
	if err := iv.Set("d50"); err != nil || iv.String() != "D50" {
		t.Errorf("illuminantValue.Set(d50) = %v, String() = %q", err, iv.String())
	}
	if err := iv.Set("nope"); err == nil {
		t.Error("expected an error for an unknown illuminant")
	}

	var space *colour.RGBSpace
	sv := &rgbSpaceValue{space: &space}
	if sv.String() != "" {
		t.Errorf("unset rgbSpaceValue.String() = %q", sv.String())
	}
	if err := sv.Set("adobe"); err != nil || space != colour.AdobeRGB {
		t.Errorf("rgbSpaceValue.Set(adobe) = %v, space %v", err, space)
	}

	var metric config.Metric
	mv := &metricValue{metric: &metric}
	if err := mv.Set("DE2000"); err != nil || metric != config.MetricCIEDE2000 {
		t.Errorf("metricValue.Set(DE2000) = %v, metric %q", err, metric)
	}

	var s string
	cv := newChoiceValue(&s, "table", formats...)
	if s != "table" {
		t.Errorf("choice default = %q", s)
	}
	if err := cv.Set("JSON"); err != nil || s != "json" {
		t.Errorf("choiceValue.Set(JSON) = %v, value %q", err, s)
	}
	if err := cv.Set("yaml"); err == nil {
		t.Error("expected an error for an unknown choice")
	}
}

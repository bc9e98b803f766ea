package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/jmylchreest/chromatic/pkg/colour"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  colour.Colour
	}{
		{"hex", "#ff8000", colour.NewRGB(1, 128.0/255, 0)},
		{"hex without hash", "00FF00", colour.NewRGB(0, 1, 0)},
		{"short hex", "#fff", colour.NewRGB(1, 1, 1)},
		{"name", "DarkOrange", colour.NewRGB(1, 140.0/255, 0)},
		{"rgb commas", "rgb(255, 0, 0)", colour.NewRGB(1, 0, 0)},
		{"rgb percent", "rgb(100% 50% 0%)", colour.NewRGB(1, 0.5, 0)},
		{"rgb in p3", "rgb(255 0 0 / display-p3)", colour.RGB{R: 1, Space: colour.DisplayP3}},
		{"linear rgb", "lrgb(0.5, 0.5, 0.5)", colour.LinearRGB{R: 0.5, G: 0.5, B: 0.5}},
		{"hsv", "hsv(120, 50%, 1)", colour.HSV{H: 120, S: 0.5, V: 1}},
		{"hsl", "hsl(240 1 0.5)", colour.HSL{H: 240, S: 1, L: 0.5}},
		{"lab", "lab(53.24, 80.09, 67.2)", colour.Lab{L: 53.24, A: 80.09, B: 67.2}},
		{"lab d50", "Lab(50 -20 10 / d50)", colour.Lab{L: 50, A: -20, B: 10, White: colour.D50}},
		{"lch", "lch(50, 30, 270)", colour.LChab{L: 50, C: 30, H: 270}},
		{"lchuv", "lchuv(50 30 270)", colour.LChuv{L: 50, C: 30, H: 270}},
		{"luv", "luv(60, -10, 25 / A)", colour.Luv{L: 60, U: -10, V: 25, White: colour.IlluminantA}},
		{"xyz", "xyz(0.4124, 0.2126, 0.0193)", colour.XYZ{X: 0.4124, Y: 0.2126, Z: 0.0193}},
		{"lab lightness percent", "lab(50% 0 0)", colour.Lab{L: 50}},
		{"lch percents", "lch(25% 30 50%)", colour.LChab{L: 25, C: 30, H: 180}},
		{"hsv hue percent", "hsv(50% 1 1)", colour.HSV{H: 180, S: 1, V: 1}},
		{"hsl percents", "hsl(25% 100% 50%)", colour.HSL{H: 90, S: 1, L: 0.5}},
	}

	opts := cmp.Options{
		cmpopts.EquateApprox(0, 1e-12),
		cmpopts.IgnoreUnexported(colour.RGBSpace{}),
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Colour(tt.input)
			if err != nil {
				t.Fatalf("Colour(%q) error = %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got, opts); diff != "" {
				t.Errorf("Colour(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParserDefaults(t *testing.T) {
	p := Parser{White: colour.D50, RGBSpace: colour.AdobeRGB}

	lab, err := p.Parse("lab(40 10 10)")
	if err != nil {
		t.Fatal(err)
	}
	if got := lab.WhitePoint(); !got.Equal(colour.D50) {
		t.Errorf("lab white = %v, want D50", got)
	}

	rgb, err := p.Parse("rgb(10 20 30)")
	if err != nil {
		t.Fatal(err)
	}
	if got := rgb.(colour.RGB).Space; got != colour.AdobeRGB {
		t.Errorf("rgb space = %v, want Adobe RGB", got)
	}

	hex, err := p.Parse("#102030")
	if err != nil {
		t.Fatal(err)
	}
	if got := hex.(colour.RGB).Space; got != nil {
		t.Errorf("hex should stay sRGB, got %v", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "  ", ErrSyntax},
		{"unknown name", "notacolour", ErrSyntax},
		{"long hex", "#ff0000ff", ErrSyntax},
		{"bad hex digit", "#ff00zz", ErrSyntax},
		{"unclosed", "lab(50 0 0", ErrSyntax},
		{"two components", "lab(50 0)", ErrSyntax},
		{"not a number", "rgb(255 0 x)", ErrSyntax},
		{"nan", "lab(nan 0 0)", ErrSyntax},
		{"percent opponent axis", "lab(50 10% 0)", ErrSyntax},
		{"percent chroma", "lch(50 10% 90)", ErrSyntax},
		{"percent xyz", "xyz(50% 0.5 0.5)", ErrSyntax},
		{"unknown function", "cmyk(0 0 0)", ErrSyntax},
		{"unknown white", "lab(50 0 0 / D93)", colour.ErrUnknownIlluminant},
		{"unknown space", "rgb(1 2 3 / rec2020)", colour.ErrUnknownRGBSpace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Colour(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("Colour(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestAll(t *testing.T) {
	got, err := Parser{}.All([]string{"red", "#00f"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("All() returned %d colours, want 2", len(got))
	}

	if _, err := (Parser{}).All([]string{"red", "nope"}); !errors.Is(err, ErrSyntax) {
		t.Errorf("All() error = %v, want ErrSyntax", err)
	}
}

package colour

import (
	"errors"
	"math"
	"testing"
)

func TestRGBSpaceWhiteMapsToWhite(t *testing.T) {
	for _, space := range RGBSpaces() {
		t.Run(space.Name, func(t *testing.T) {
			xyz, err := LinearRGB{R: 1, G: 1, B: 1, Space: space}.ToXYZ(space.White)
			if err != nil {
				t.Fatalf("ToXYZ: %v", err)
			}
			w := space.White
			approx(t, "white", xyz.Components(), [3]float64{w.X, w.Y, w.Z}, 1e-12)
		})
	}
}

func TestSRGBMatrix(t *testing.T) {
	want := [3][3]float64{
		{0.4124, 0.3576, 0.1805},
		{0.2126, 0.7152, 0.0722},
		{0.0193, 0.1192, 0.9505},
	}
	got := SRGB.Matrix()
	for i := range want {
		approx(t, "row", got[i], want[i], 1e-3)
	}
}

func TestNewRGBSpaceRejectsDegeneratePrimaries(t *testing.T) {
	_, err := NewRGBSpace("flat", [3]Chromaticity{{0.3, 0.3}, {0.3, 0.3}, {0.3, 0.3}}, D65, nil)
	if err == nil {
		t.Error("collinear primaries should fail")
	}
	_, err = NewRGBSpace("zero y", [3]Chromaticity{{0.6, 0}, {0.3, 0.6}, {0.15, 0.06}}, D65, nil)
	if !errors.Is(err, ErrDomain) {
		t.Errorf("zero y primary should be a domain error, got %v", err)
	}
}

func TestTransferRoundTrip(t *testing.T) {
	transfers := map[string]Transfer{
		"srgb":   SRGBTransfer{},
		"adobe":  GammaTransfer{Gamma: 563.0 / 256.0},
		"romm":   ROMMTransfer{},
		"linear": LinearTransfer{},
	}
	for name, tr := range transfers {
		t.Run(name, func(t *testing.T) {
			for _, v := range []float64{-0.5, -0.001, 0, 0.001, 0.003, 0.04045, 0.2, 0.5, 1, 1.3} {
				got := tr.Encode(tr.Decode(v))
				if !near(got, v, 1e-7) {
					t.Errorf("Encode(Decode(%g)) = %g", v, got)
				}
			}
		})
	}
}

func TestRGB8(t *testing.T) {
	c := NewRGB8(255, 128, 0)
	r, g, b := c.RGB8()
	if r != 255 || g != 128 || b != 0 {
		t.Errorf("RGB8() = (%d, %d, %d), want (255, 128, 0)", r, g, b)
	}

	r, g, b = NewRGB(1.4, -0.2, math.NaN()).RGB8()
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("out of range channels should clamp, got (%d, %d, %d)", r, g, b)
	}
}

func TestRGBNonFinite(t *testing.T) {
	_, err := NewRGB(math.Inf(1), 0, 0).ToXYZ(D65)
	if !errors.Is(err, ErrDomain) {
		t.Errorf("infinite channel should be a domain error, got %v", err)
	}
}

func TestLookupRGBSpace(t *testing.T) {
	tests := []struct {
		name string
		want *RGBSpace
	}{
		{"sRGB", SRGB},
		{"display-p3", DisplayP3},
		{"P3", DisplayP3},
		{" Adobe RGB (1998) ", AdobeRGB},
		{"prophoto", ProPhotoRGB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LookupRGBSpace(tt.name)
			if err != nil {
				t.Fatalf("LookupRGBSpace(%q) error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("LookupRGBSpace(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}

	if _, err := LookupRGBSpace("rec2020"); !errors.Is(err, ErrUnknownRGBSpace) {
		t.Errorf("unknown space error = %v", err)
	}
}

package colour

import "testing"

func TestLightenDarken(t *testing.T) {
	got, err := Lighten(Lab{L: 50, A: 20, B: 20}, 10)
	if err != nil {
		t.Fatal(err)
	}
	approx(t, "lighten", got.Components(), [3]float64{60, 20, 20}, 1e-9)

	dark, err := Darken(Lab{L: 5}, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !near(dark.L, 0, 1e-9) {
		t.Errorf("Darken should clamp at 0, got %g", dark.L)
	}
}

func TestGrayscaleKeepsType(t *testing.T) {
	gray, err := Grayscale(NewRGB(1, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if !near(gray.R, gray.G, 1e-9) || !near(gray.G, gray.B, 1e-9) {
		t.Errorf("Grayscale(red) = %v, want equal channels", gray)
	}
	c, err := Chroma(gray)
	if err != nil || c > 1e-6 {
		t.Errorf("Chroma(gray) = %g, %v", c, err)
	}
	l0, _ := Lightness(NewRGB(1, 0, 0))
	l1, _ := Lightness(gray)
	if !near(l0, l1, 1e-6) {
		t.Errorf("lightness changed from %g to %g", l0, l1)
	}
}

func TestSaturateAndHue(t *testing.T) {
	base := LChab{L: 60, C: 30, H: 90}

	more, err := Saturate(base, 15)
	if err != nil {
		t.Fatal(err)
	}
	if !near(more.C, 45, 1e-9) {
		t.Errorf("Saturate chroma = %g, want 45", more.C)
	}
	less, err := Desaturate(base, 50)
	if err != nil {
		t.Fatal(err)
	}
	if less.C > 1e-9 {
		t.Errorf("Desaturate should stop at 0, got %g", less.C)
	}

	turned, err := SetHue(base, -90)
	if err != nil {
		t.Fatal(err)
	}
	h, _ := Hue(turned)
	if HueDistance(h, 270) > 1e-6 {
		t.Errorf("SetHue(-90) = %g, want 270", h)
	}
}

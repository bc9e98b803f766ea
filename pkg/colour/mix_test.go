package colour

import (
	"errors"
	"testing"
)

func TestMixEndpoints(t *testing.T) {
	a := NewRGB(0.9, 0.1, 0.2)
	b := NewRGB(0.1, 0.4, 0.8)

	got, err := Mix(a, b, 0)
	if err != nil || got != a {
		t.Errorf("Mix(a, b, 0) = %v, %v; want a", got, err)
	}
	got, err = Mix(a, b, 1)
	if err != nil || got != b {
		t.Errorf("Mix(a, b, 1) = %v, %v; want b", got, err)
	}

	lab := Lab{L: 60, A: 20, B: -30}
	la, err := Mix(lab, a, 0, WithAdaptation())
	if err != nil || la != lab {
		t.Errorf("Mix(lab, rgb, 0) = %v, %v; want lab", la, err)
	}
}

func TestMixOtherTypeAtOne(t *testing.T) {
	a := NewRGB(0.2, 0.2, 0.2)
	b, err := Convert[Lab](NewRGB(0.3, 0.6, 0.9))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Mix(a, b, 1)
	if err != nil {
		t.Fatal(err)
	}
	approx(t, "converted b", got.Components(), [3]float64{0.3, 0.6, 0.9}, 1e-9)
}

func TestMixMidpointLab(t *testing.T) {
	got, err := Mix(Lab{L: 20}, Lab{L: 80}, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	approx(t, "midpoint", got.Components(), [3]float64{50, 0, 0}, 1e-9)
}

func TestMixHueShortPath(t *testing.T) {
	got, err := MixIn(LChab{L: 50, C: 30, H: 350}, LChab{L: 50, C: 30, H: 10}, 0.5, LChab{})
	if err != nil {
		t.Fatal(err)
	}
	if d := HueDistance(got.H, 0); d > 1e-6 {
		t.Errorf("hue = %g, want 0 (short path through 360)", got.H)
	}
	if !near(got.C, 30, 1e-9) {
		t.Errorf("chroma = %g, want 30", got.C)
	}

	magenta, err := MixIn(NewRGB(1, 0, 0), NewRGB(0, 0, 1), 0.5, HSV{})
	if err != nil {
		t.Fatal(err)
	}
	approx(t, "hsv mix", magenta.Components(), [3]float64{1, 0, 1}, 1e-9)
}

func TestMixAchromaticTakesOtherHue(t *testing.T) {
	got, err := MixIn(LChab{L: 50}, LChab{L: 50, C: 40, H: 200}, 0.5, LChab{})
	if err != nil {
		t.Fatal(err)
	}
	if !near(got.H, 200, 1e-6) || !near(got.C, 20, 1e-9) {
		t.Errorf("mix with gray = %v, want hue 200 chroma 20", got)
	}
}

func TestMixErrors(t *testing.T) {
	a, b := Lab{L: 40, White: D65}, Lab{L: 60, White: D50}

	if _, err := Mix(a, b, 0.5); !errors.Is(err, ErrIlluminantMismatch) {
		t.Errorf("expected illuminant mismatch, got %v", err)
	}
	if _, err := Mix(a, b, 0.5, WithAdaptation()); err != nil {
		t.Errorf("with adaptation: %v", err)
	}
	for _, w := range []float64{-0.1, 1.5} {
		if _, err := Mix(a, a, w); !errors.Is(err, ErrDomain) {
			t.Errorf("weight %g: expected domain error, got %v", w, err)
		}
	}
}

package colour

import (
	"fmt"
	"math"
)

// AchromaticThreshold is the chroma below which a hue angle is meaningless and is reported as 0.
const AchromaticThreshold = 1e-9

// LChab is the polar form of Lab: lightness, chroma and hue angle in degrees [0, 360).
type LChab struct {
	L, C, H float64
	White   Illuminant
}

// NewLChab returns an LChab value; the optional illuminant defaults to D65.
func NewLChab(l, c, h float64, white ...Illuminant) LChab {
	return LChab{L: l, C: c, H: h, White: firstWhite(white)}
}

// Lab returns the rectangular form.
func (c LChab) Lab() Lab {
	a, b := fromPolar(c.C, c.H)
	return Lab{L: c.L, A: a, B: b, White: c.White}
}

func (c LChab) WhitePoint() Illuminant { return c.White.orDefault() }

func (c LChab) ToXYZ(target Illuminant) (XYZ, error) { return c.Lab().ToXYZ(target) }

func (c LChab) FromXYZ(xyz XYZ) (LChab, error) {
	lab, err := Lab{White: c.White}.FromXYZ(xyz)
	if err != nil {
		return LChab{}, err
	}
	return lab.LCh(), nil
}

func (c LChab) Components() [3]float64 { return [3]float64{c.L, c.C, c.H} }

func (c LChab) withComponents(v [3]float64) LChab {
	return LChab{L: v[0], C: v[1], H: v[2], White: c.White}
}

func (c LChab) withDefaultWhite(w Illuminant) LChab {
	if c.White.IsZero() {
		c.White = w
	}
	return c
}

func (LChab) polar() (hue, chroma int, ok bool) { return 2, 1, true }

func (LChab) illuminantRelative() {}

func (c LChab) String() string {
	return fmt.Sprintf("lch(%.4f, %.4f, %.4f) %s", c.L, c.C, c.H, c.WhitePoint())
}

// LChuv is the polar form of Luv.
type LChuv struct {
	L, C, H float64
	White   Illuminant
}

// NewLChuv returns an LChuv value; the optional illuminant defaults to D65.
func NewLChuv(l, c, h float64, white ...Illuminant) LChuv {
	return LChuv{L: l, C: c, H: h, White: firstWhite(white)}
}

// Luv returns the rectangular form.
func (c LChuv) Luv() Luv {
	u, v := fromPolar(c.C, c.H)
	return Luv{L: c.L, U: u, V: v, White: c.White}
}

func (c LChuv) WhitePoint() Illuminant { return c.White.orDefault() }

func (c LChuv) ToXYZ(target Illuminant) (XYZ, error) { return c.Luv().ToXYZ(target) }

func (c LChuv) FromXYZ(xyz XYZ) (LChuv, error) {
	luv, err := Luv{White: c.White}.FromXYZ(xyz)
	if err != nil {
		return LChuv{}, err
	}
	return luv.LCh(), nil
}

func (c LChuv) Components() [3]float64 { return [3]float64{c.L, c.C, c.H} }

func (c LChuv) withComponents(v [3]float64) LChuv {
	return LChuv{L: v[0], C: v[1], H: v[2], White: c.White}
}

func (c LChuv) withDefaultWhite(w Illuminant) LChuv {
	if c.White.IsZero() {
		c.White = w
	}
	return c
}

func (LChuv) polar() (hue, chroma int, ok bool) { return 2, 1, true }

func (LChuv) illuminantRelative() {}

func (c LChuv) String() string {
	return fmt.Sprintf("lchuv(%.4f, %.4f, %.4f) %s", c.L, c.C, c.H, c.WhitePoint())
}

func toPolar(x, y float64) (chroma, hue float64) {
	chroma = math.Hypot(x, y)
	if chroma < AchromaticThreshold {
		return chroma, 0
	}
	return chroma, NormalizeHue(math.Atan2(y, x) * 180 / math.Pi)
}

func fromPolar(chroma, hue float64) (x, y float64) {
	s, c := math.Sincos(hue * math.Pi / 180)
	return chroma * c, chroma * s
}

// NormalizeHue wraps an angle in degrees into [0, 360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// HueDistance returns the angular distance between two hues along the shorter arc, in [0, 180].
func HueDistance(h1, h2 float64) float64 {
	return math.Abs(hueDelta(h1, h2))
}

// hueDelta is the signed shortest rotation from h1 to h2, in [-180, 180].
func hueDelta(h1, h2 float64) float64 {
	d := NormalizeHue(h2) - NormalizeHue(h1)
	if d > 180 {
		d -= 360
	} else if d < -180 {
		d += 360
	}
	return d
}

package colour

import (
	"fmt"
	"math"
)

// luvSingularity is the |v'| below which the inverse transform divides by zero.
const luvSingularity = 1e-12

// Luv is a CIE 1976 L*u*v* colour relative to White (zero means D65).
type Luv struct {
	L, U, V float64
	White   Illuminant
}

// NewLuv returns a Luv value; the optional illuminant defaults to D65.
func NewLuv(l, u, v float64, white ...Illuminant) Luv {
	return Luv{L: l, U: u, V: v, White: firstWhite(white)}
}

func (c Luv) WhitePoint() Illuminant { return c.White.orDefault() }

func (c Luv) ToXYZ(target Illuminant) (XYZ, error) {
	in := vec3{c.L, c.U, c.V}
	if !finite(in) {
		return XYZ{}, domainError("luv to xyz", firstNonFinite(in), "components must be finite")
	}
	w := c.WhitePoint()
	if c.L == 0 {
		return Adapt(XYZ{White: w}, target), nil
	}
	un, vn := uvPrime(w.vec())
	u := c.U/(13*c.L) + un
	v := c.V/(13*c.L) + vn
	if math.Abs(v) < luvSingularity {
		return XYZ{}, domainError("luv to xyz", v, "v' chromaticity is zero")
	}

	var y float64
	if c.L > cieKappa*cieEpsilon {
		fy := (c.L + 16) / 116
		y = fy * fy * fy
	} else {
		y = c.L / cieKappa
	}
	y *= w.Y
	xyz := XYZ{
		X:     y * 9 * u / (4 * v),
		Y:     y,
		Z:     y * (12 - 3*u - 20*v) / (4 * v),
		White: w,
	}
	return Adapt(xyz, target), nil
}

// FromXYZ converts relative to the receiver's white point.
func (c Luv) FromXYZ(xyz XYZ) (Luv, error) {
	if err := checkLuminance("xyz to luv", xyz); err != nil {
		return Luv{}, err
	}
	w := c.WhitePoint()
	a := Adapt(xyz, w)
	l := 116*labF(a.Y/w.Y) - 16
	if a.X+15*a.Y+3*a.Z == 0 {
		return Luv{L: l, White: w}, nil
	}
	un, vn := uvPrime(w.vec())
	u, v := uvPrime(a.vec())
	return Luv{L: l, U: 13 * l * (u - un), V: 13 * l * (v - vn), White: w}, nil
}

// LCh returns the polar form.
func (c Luv) LCh() LChuv {
	ch, h := toPolar(c.U, c.V)
	return LChuv{L: c.L, C: ch, H: h, White: c.White}
}

func (c Luv) Components() [3]float64 { return [3]float64{c.L, c.U, c.V} }

func (c Luv) withComponents(v [3]float64) Luv {
	return Luv{L: v[0], U: v[1], V: v[2], White: c.White}
}

func (c Luv) withDefaultWhite(w Illuminant) Luv {
	if c.White.IsZero() {
		c.White = w
	}
	return c
}

func (Luv) polar() (hue, chroma int, ok bool) { return 0, 0, false }

func (Luv) illuminantRelative() {}

func (c Luv) String() string {
	return fmt.Sprintf("luv(%.4f, %.4f, %.4f) %s", c.L, c.U, c.V, c.WhitePoint())
}

// uvPrime returns the CIE 1976 UCS chromaticity of a tristimulus value.
func uvPrime(v vec3) (u, vp float64) {
	d := v[0] + 15*v[1] + 3*v[2]
	return 4 * v[0] / d, 9 * v[1] / d
}

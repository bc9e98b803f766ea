package colour

import (
	"fmt"
	"math"
)

// CIE 1976 breakpoints, in their exact rational form.
const (
	cieEpsilon = 216.0 / 24389.0
	cieKappa   = 24389.0 / 27.0
)

// negativeLuminanceTolerance absorbs rounding below zero for black.
const negativeLuminanceTolerance = 1e-12

// Lab is a CIE 1976 L*a*b* colour relative to White (zero means D65).
type Lab struct {
	L, A, B float64
	White   Illuminant
}

// NewLab returns a Lab value; the optional illuminant defaults to D65.
func NewLab(l, a, b float64, white ...Illuminant) Lab {
	return Lab{L: l, A: a, B: b, White: firstWhite(white)}
}

func (c Lab) WhitePoint() Illuminant { return c.White.orDefault() }

func (c Lab) ToXYZ(target Illuminant) (XYZ, error) {
	v := vec3{c.L, c.A, c.B}
	if !finite(v) {
		return XYZ{}, domainError("lab to xyz", firstNonFinite(v), "components must be finite")
	}
	w := c.WhitePoint()
	fy := (c.L + 16) / 116
	fx := fy + c.A/500
	fz := fy - c.B/200

	var yr float64
	if c.L > cieKappa*cieEpsilon {
		yr = fy * fy * fy
	} else {
		yr = c.L / cieKappa
	}
	xyz := XYZ{X: labFInv(fx) * w.X, Y: yr * w.Y, Z: labFInv(fz) * w.Z, White: w}
	return Adapt(xyz, target), nil
}

// FromXYZ converts relative to the receiver's white point.
func (c Lab) FromXYZ(xyz XYZ) (Lab, error) {
	if err := checkLuminance("xyz to lab", xyz); err != nil {
		return Lab{}, err
	}
	w := c.WhitePoint()
	a := Adapt(xyz, w)
	fx := labF(a.X / w.X)
	fy := labF(a.Y / w.Y)
	fz := labF(a.Z / w.Z)
	return Lab{L: 116*fy - 16, A: 500 * (fx - fy), B: 200 * (fy - fz), White: w}, nil
}

// LCh returns the polar form.
func (c Lab) LCh() LChab {
	ch, h := toPolar(c.A, c.B)
	return LChab{L: c.L, C: ch, H: h, White: c.White}
}

func (c Lab) Components() [3]float64 { return [3]float64{c.L, c.A, c.B} }

func (c Lab) withComponents(v [3]float64) Lab {
	return Lab{L: v[0], A: v[1], B: v[2], White: c.White}
}

func (c Lab) withDefaultWhite(w Illuminant) Lab {
	if c.White.IsZero() {
		c.White = w
	}
	return c
}

func (Lab) polar() (hue, chroma int, ok bool) { return 0, 0, false }

func (Lab) illuminantRelative() {}

func (c Lab) String() string {
	return fmt.Sprintf("lab(%.4f, %.4f, %.4f) %s", c.L, c.A, c.B, c.WhitePoint())
}

func labF(t float64) float64 {
	if t > cieEpsilon {
		return math.Cbrt(t)
	}
	return (cieKappa*t + 16) / 116
}

func labFInv(f float64) float64 {
	if f3 := f * f * f; f3 > cieEpsilon {
		return f3
	}
	return (116*f - 16) / cieKappa
}

func checkLuminance(op string, xyz XYZ) error {
	if !finite(xyz.vec()) {
		return domainError(op, firstNonFinite(xyz.vec()), "tristimulus values must be finite")
	}
	if xyz.Y < -negativeLuminanceTolerance {
		return domainError(op, xyz.Y, "luminance must not be negative")
	}
	return nil
}

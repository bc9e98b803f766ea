package colour

import "fmt"

// XYZ is a CIE 1931 tristimulus value relative to a white point normalised to Y = 1.
// It is the hub every other space converts through.
type XYZ struct {
	X, Y, Z float64
	White   Illuminant
}

// NewXYZ returns an XYZ value; the optional illuminant defaults to D65.
func NewXYZ(x, y, z float64, white ...Illuminant) XYZ {
	return XYZ{X: x, Y: y, Z: z, White: firstWhite(white)}
}

func (c XYZ) WhitePoint() Illuminant { return c.White.orDefault() }

// ToXYZ adapts the value to target.
func (c XYZ) ToXYZ(target Illuminant) (XYZ, error) {
	if !finite(c.vec()) {
		return XYZ{}, domainError("xyz", firstNonFinite(c.vec()), "tristimulus values must be finite")
	}
	return Adapt(c, target), nil
}

// FromXYZ adapts xyz to the receiver's white point.
func (c XYZ) FromXYZ(xyz XYZ) (XYZ, error) {
	return xyz.ToXYZ(c.WhitePoint())
}

// Adapt is shorthand for the package-level Adapt.
func (c XYZ) Adapt(to Illuminant) XYZ {
	return Adapt(c, to)
}

// Chromaticity returns the xy chromaticity; black maps to the white point's chromaticity.
func (c XYZ) Chromaticity() (x, y float64) {
	sum := c.X + c.Y + c.Z
	if sum == 0 {
		return c.WhitePoint().Chromaticity()
	}
	return c.X / sum, c.Y / sum
}

func (c XYZ) Components() [3]float64 { return [3]float64{c.X, c.Y, c.Z} }

func (c XYZ) withComponents(v [3]float64) XYZ {
	return XYZ{X: v[0], Y: v[1], Z: v[2], White: c.White}
}

func (c XYZ) withDefaultWhite(w Illuminant) XYZ {
	if c.White.IsZero() {
		c.White = w
	}
	return c
}

func (XYZ) polar() (hue, chroma int, ok bool) { return 0, 0, false }

func (XYZ) illuminantRelative() {}

func (c XYZ) String() string {
	return fmt.Sprintf("xyz(%.4f, %.4f, %.4f) %s", c.X, c.Y, c.Z, c.WhitePoint())
}

func (c XYZ) vec() vec3 { return vec3{c.X, c.Y, c.Z} }

func firstWhite(w []Illuminant) Illuminant {
	if len(w) == 0 {
		return D65
	}
	return w[0].orDefault()
}

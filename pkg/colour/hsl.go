package colour

import (
	"fmt"
	"math"
)

// HSL is the hue/saturation/lightness bi-hexcone of a companded RGB colour.
// Lightness is the mean of the largest and smallest channel. A nil Space means sRGB.
type HSL struct {
	H, S, L float64
	Space   *RGBSpace
}

// NewHSL returns an sRGB-based HSL value.
func NewHSL(h, s, l float64) HSL {
	return HSL{H: h, S: s, L: l}
}

// HSL projects the colour onto the bi-hexcone. Gray has hue 0 and saturation 0.
func (c RGB) HSL() HSL {
	maxC, minC, h := hexHue(c.R, c.G, c.B)
	l := (maxC + minC) / 2
	var s float64
	if d := 1 - math.Abs(2*l-1); maxC != minC && d != 0 {
		s = (maxC - minC) / d
	}
	return HSL{H: h, S: s, L: l, Space: c.Space}
}

// RGB unprojects the bi-hexcone.
func (c HSL) RGB() RGB {
	chroma := (1 - math.Abs(2*c.L-1)) * c.S
	r, g, b := hexRGB(c.H, chroma)
	m := c.L - chroma/2
	return RGB{R: r + m, G: g + m, B: b + m, Space: c.Space}
}

func (c HSL) WhitePoint() Illuminant { return orSRGB(c.Space).White }

func (c HSL) ToXYZ(target Illuminant) (XYZ, error) { return c.RGB().ToXYZ(target) }

func (c HSL) FromXYZ(xyz XYZ) (HSL, error) {
	rgb, err := RGB{Space: c.Space}.FromXYZ(xyz)
	if err != nil {
		return HSL{}, err
	}
	return rgb.HSL(), nil
}

func (c HSL) Components() [3]float64 { return [3]float64{c.H, c.S, c.L} }

func (c HSL) withComponents(v [3]float64) HSL {
	return HSL{H: v[0], S: v[1], L: v[2], Space: c.Space}
}

func (c HSL) withDefaultWhite(Illuminant) HSL { return c }

func (HSL) polar() (hue, chroma int, ok bool) { return 0, 1, true }

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%.2f, %.4f, %.4f)", c.H, c.S, c.L)
}

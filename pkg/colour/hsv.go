package colour

import (
	"fmt"
	"math"
)

// HSV is the hexagonal hue/saturation/value projection of a companded RGB colour.
// Hue is in degrees [0, 360), saturation and value in [0, 1]. A nil Space means sRGB.
type HSV struct {
	H, S, V float64
	Space   *RGBSpace
}

// NewHSV returns an sRGB-based HSV value.
func NewHSV(h, s, v float64) HSV {
	return HSV{H: h, S: s, V: v}
}

// HSV projects the colour onto the hexcone. Gray has hue 0.
func (c RGB) HSV() HSV {
	maxC, minC, h := hexHue(c.R, c.G, c.B)
	var s float64
	if maxC != 0 {
		s = (maxC - minC) / maxC
	}
	return HSV{H: h, S: s, V: maxC, Space: c.Space}
}

// RGB unprojects the hexcone.
func (c HSV) RGB() RGB {
	chroma := c.V * c.S
	r, g, b := hexRGB(c.H, chroma)
	m := c.V - chroma
	return RGB{R: r + m, G: g + m, B: b + m, Space: c.Space}
}

func (c HSV) WhitePoint() Illuminant { return orSRGB(c.Space).White }

func (c HSV) ToXYZ(target Illuminant) (XYZ, error) { return c.RGB().ToXYZ(target) }

func (c HSV) FromXYZ(xyz XYZ) (HSV, error) {
	rgb, err := RGB{Space: c.Space}.FromXYZ(xyz)
	if err != nil {
		return HSV{}, err
	}
	return rgb.HSV(), nil
}

func (c HSV) Components() [3]float64 { return [3]float64{c.H, c.S, c.V} }

func (c HSV) withComponents(v [3]float64) HSV {
	return HSV{H: v[0], S: v[1], V: v[2], Space: c.Space}
}

func (c HSV) withDefaultWhite(Illuminant) HSV { return c }

func (HSV) polar() (hue, chroma int, ok bool) { return 0, 1, true }

func (c HSV) String() string {
	return fmt.Sprintf("hsv(%.2f, %.4f, %.4f)", c.H, c.S, c.V)
}

// hexHue returns the largest and smallest channel and the hexagonal hue angle.
func hexHue(r, g, b float64) (maxC, minC, hue float64) {
	maxC = math.Max(r, math.Max(g, b))
	minC = math.Min(r, math.Min(g, b))
	delta := maxC - minC
	if delta == 0 {
		return maxC, minC, 0
	}
	switch maxC {
	case r:
		hue = math.Mod((g-b)/delta, 6)
	case g:
		hue = (b-r)/delta + 2
	default:
		hue = (r-g)/delta + 4
	}
	return maxC, minC, NormalizeHue(hue * 60)
}

// hexRGB places a hue and chroma on the hexagon with the smallest channel at zero.
func hexRGB(hue, chroma float64) (r, g, b float64) {
	hp := NormalizeHue(hue) / 60
	x := chroma * (1 - math.Abs(math.Mod(hp, 2)-1))
	switch int(hp) {
	case 0:
		return chroma, x, 0
	case 1:
		return x, chroma, 0
	case 2:
		return 0, chroma, x
	case 3:
		return 0, x, chroma
	case 4:
		return x, 0, chroma
	default:
		return chroma, 0, x
	}
}

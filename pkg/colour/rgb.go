package colour

import (
	"fmt"
	"math"
	"strings"
)

// Chromaticity is a CIE xy chromaticity coordinate.
type Chromaticity struct {
	X, Y float64
}

// RGBSpace describes an additive RGB device: its primaries, reference white and transfer curve.
// RGBSpace values are immutable once built; share them by pointer.
type RGBSpace struct {
	Name      string
	Primaries [3]Chromaticity
	White     Illuminant
	Transfer  Transfer

	toXYZ   mat3
	fromXYZ mat3
}

// Built-in RGB spaces.
var (
	SRGB = mustRGBSpace("sRGB",
		[3]Chromaticity{{0.64, 0.33}, {0.30, 0.60}, {0.15, 0.06}}, D65, SRGBTransfer{})
	AdobeRGB = mustRGBSpace("Adobe RGB (1998)",
		[3]Chromaticity{{0.64, 0.33}, {0.21, 0.71}, {0.15, 0.06}}, D65, GammaTransfer{Gamma: 563.0 / 256.0})
	ProPhotoRGB = mustRGBSpace("ProPhoto RGB",
		[3]Chromaticity{{0.7347, 0.2653}, {0.1596, 0.8404}, {0.0366, 0.0001}}, D50, ROMMTransfer{})
	DisplayP3 = mustRGBSpace("Display P3",
		[3]Chromaticity{{0.680, 0.320}, {0.265, 0.690}, {0.150, 0.060}}, D65, SRGBTransfer{})
)

// RGBSpaces returns the built-in RGB spaces.
func RGBSpaces() []*RGBSpace {
	return []*RGBSpace{SRGB, AdobeRGB, ProPhotoRGB, DisplayP3}
}

var rgbSpaceAliases = map[string]*RGBSpace{
	"srgb":      SRGB,
	"adobe":     AdobeRGB,
	"adobergb":  AdobeRGB,
	"prophoto":  ProPhotoRGB,
	"romm":      ProPhotoRGB,
	"p3":        DisplayP3,
	"displayp3": DisplayP3,
}

// LookupRGBSpace finds a built-in RGB space by name or short alias, ignoring case, spaces
// and hyphens ("Display P3", "display-p3" and "p3" are the same space).
func LookupRGBSpace(name string) (*RGBSpace, error) {
	key := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(name)))
	if s, ok := rgbSpaceAliases[key]; ok {
		return s, nil
	}
	for _, s := range RGBSpaces() {
		if strings.EqualFold(s.Name, strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRGBSpace, name)
}

// NewRGBSpace derives the primary matrix from the primaries and white point, so that
// RGB (1, 1, 1) maps exactly onto the white point.
func NewRGBSpace(name string, primaries [3]Chromaticity, white Illuminant, transfer Transfer) (*RGBSpace, error) {
	if transfer == nil {
		transfer = LinearTransfer{}
	}
	var p mat3
	for i, c := range primaries {
		if !(c.Y > 0) {
			return nil, fmt.Errorf("rgb space %s: %w", name, domainError("primary", c.Y, "y chromaticity must be positive"))
		}
		p[0][i] = c.X / c.Y
		p[1][i] = 1
		p[2][i] = (1 - c.X - c.Y) / c.Y
	}
	pinv, ok := p.inverse()
	if !ok {
		return nil, fmt.Errorf("rgb space %s: primaries are collinear", name)
	}
	s := pinv.apply(white.vec())
	m := p.mul(diag(s[0], s[1], s[2]))
	inv, ok := m.inverse()
	if !ok {
		return nil, fmt.Errorf("rgb space %s: primary matrix is singular", name)
	}
	return &RGBSpace{
		Name:      name,
		Primaries: primaries,
		White:     white.orDefault(),
		Transfer:  transfer,
		toXYZ:     m,
		fromXYZ:   inv,
	}, nil
}

func mustRGBSpace(name string, primaries [3]Chromaticity, white Illuminant, transfer Transfer) *RGBSpace {
	s, err := NewRGBSpace(name, primaries, white, transfer)
	if err != nil {
		panic(err)
	}
	return s
}

// Matrix returns the linear RGB to XYZ matrix (row-major).
func (s *RGBSpace) Matrix() [3][3]float64 {
	return s.toXYZ
}

func (s *RGBSpace) String() string {
	return s.Name
}

func orSRGB(s *RGBSpace) *RGBSpace {
	if s == nil {
		return SRGB
	}
	return s
}

// RGB is a companded (gamma-encoded) RGB colour with channels nominally in [0, 1].
// A nil Space means sRGB.
type RGB struct {
	R, G, B float64
	Space   *RGBSpace
}

// NewRGB returns an sRGB colour from channels in [0, 1].
func NewRGB(r, g, b float64) RGB {
	return RGB{R: r, G: g, B: b}
}

// NewRGB8 returns an sRGB colour from 8-bit channels.
func NewRGB8(r, g, b uint8) RGB {
	return RGB{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// RGB8 returns the channels clamped and rounded to 8 bits.
func (c RGB) RGB8() (r, g, b uint8) {
	return to8(c.R), to8(c.G), to8(c.B)
}

func to8(v float64) uint8 {
	return uint8(math.Round(clampUnit(v) * 255))
}

// Linear decodes the transfer curve.
func (c RGB) Linear() LinearRGB {
	t := orSRGB(c.Space).Transfer
	return LinearRGB{R: t.Decode(c.R), G: t.Decode(c.G), B: t.Decode(c.B), Space: c.Space}
}

func (c RGB) WhitePoint() Illuminant { return orSRGB(c.Space).White }

func (c RGB) ToXYZ(target Illuminant) (XYZ, error) {
	return c.Linear().ToXYZ(target)
}

// FromXYZ converts into the receiver's RGB space.
func (c RGB) FromXYZ(xyz XYZ) (RGB, error) {
	lin, err := LinearRGB{Space: c.Space}.FromXYZ(xyz)
	if err != nil {
		return RGB{}, err
	}
	return lin.Companded(), nil
}

func (c RGB) Components() [3]float64 { return [3]float64{c.R, c.G, c.B} }

func (c RGB) withComponents(v [3]float64) RGB {
	return RGB{R: v[0], G: v[1], B: v[2], Space: c.Space}
}

func (c RGB) withDefaultWhite(Illuminant) RGB { return c }

func (RGB) polar() (hue, chroma int, ok bool) { return 0, 0, false }

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%.4f, %.4f, %.4f)", c.R, c.G, c.B)
}

// LinearRGB is RGB before companding, proportional to light intensity.
type LinearRGB struct {
	R, G, B float64
	Space   *RGBSpace
}

// Companded applies the space's transfer curve.
func (c LinearRGB) Companded() RGB {
	t := orSRGB(c.Space).Transfer
	return RGB{R: t.Encode(c.R), G: t.Encode(c.G), B: t.Encode(c.B), Space: c.Space}
}

func (c LinearRGB) WhitePoint() Illuminant { return orSRGB(c.Space).White }

func (c LinearRGB) ToXYZ(target Illuminant) (XYZ, error) {
	v := vec3{c.R, c.G, c.B}
	if !finite(v) {
		return XYZ{}, domainError("rgb to xyz", firstNonFinite(v), "channels must be finite")
	}
	s := orSRGB(c.Space)
	xyz := s.toXYZ.apply(v)
	return Adapt(XYZ{X: xyz[0], Y: xyz[1], Z: xyz[2], White: s.White}, target), nil
}

// FromXYZ converts into the receiver's RGB space, adapting to its white point first.
func (c LinearRGB) FromXYZ(xyz XYZ) (LinearRGB, error) {
	if !finite(xyz.vec()) {
		return LinearRGB{}, domainError("xyz to rgb", firstNonFinite(xyz.vec()), "tristimulus values must be finite")
	}
	s := orSRGB(c.Space)
	v := s.fromXYZ.apply(Adapt(xyz, s.White).vec())
	return LinearRGB{R: v[0], G: v[1], B: v[2], Space: c.Space}, nil
}

func (c LinearRGB) Components() [3]float64 { return [3]float64{c.R, c.G, c.B} }

func (c LinearRGB) withComponents(v [3]float64) LinearRGB {
	return LinearRGB{R: v[0], G: v[1], B: v[2], Space: c.Space}
}

func (c LinearRGB) withDefaultWhite(Illuminant) LinearRGB { return c }

func (LinearRGB) polar() (hue, chroma int, ok bool) { return 0, 0, false }

func (c LinearRGB) String() string {
	return fmt.Sprintf("linear-rgb(%.4f, %.4f, %.4f)", c.R, c.G, c.B)
}

func clampUnit(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func firstNonFinite(v vec3) float64 {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return x
		}
	}
	return 0
}

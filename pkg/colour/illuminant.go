package colour

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Illuminant is a reference white point expressed as a tristimulus value normalised to Y = 1.
// The zero value stands for the default white point, D65.
type Illuminant struct {
	Name    string
	X, Y, Z float64
}

// CIE 1931 2° standard observer white points (ASTM E308).
var (
	IlluminantA   = Illuminant{Name: "A", X: 1.09850, Y: 1, Z: 0.35585}
	IlluminantB   = Illuminant{Name: "B", X: 0.99072, Y: 1, Z: 0.85223}
	IlluminantC   = Illuminant{Name: "C", X: 0.98074, Y: 1, Z: 1.18232}
	D50           = Illuminant{Name: "D50", X: 0.96422, Y: 1, Z: 0.82521}
	D55           = Illuminant{Name: "D55", X: 0.95682, Y: 1, Z: 0.92149}
	D65           = Illuminant{Name: "D65", X: 0.95047, Y: 1, Z: 1.08883}
	D75           = Illuminant{Name: "D75", X: 0.94972, Y: 1, Z: 1.22638}
	IlluminantE   = Illuminant{Name: "E", X: 1, Y: 1, Z: 1}
	IlluminantF2  = Illuminant{Name: "F2", X: 0.99186, Y: 1, Z: 0.67393}
	IlluminantF7  = Illuminant{Name: "F7", X: 0.95041, Y: 1, Z: 1.08747}
	IlluminantF11 = Illuminant{Name: "F11", X: 1.00962, Y: 1, Z: 0.64350}
)

var registry = map[string]Illuminant{}

func init() {
	for _, ill := range []Illuminant{
		IlluminantA, IlluminantB, IlluminantC, D50, D55, D65, D75,
		IlluminantE, IlluminantF2, IlluminantF7, IlluminantF11,
	} {
		if ill.Y != 1 || ill.X <= 0 || ill.Z <= 0 {
			panic(fmt.Sprintf("colour: malformed illuminant %q", ill.Name))
		}
		registry[strings.ToUpper(ill.Name)] = ill
	}
}

// LookupIlluminant returns the registered illuminant with the given name (case-insensitive).
func LookupIlluminant(name string) (Illuminant, error) {
	ill, ok := registry[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return Illuminant{}, fmt.Errorf("%w: %q", ErrUnknownIlluminant, name)
	}
	return ill, nil
}

// MustIlluminant is like LookupIlluminant but panics if the name is not registered.
func MustIlluminant(name string) Illuminant {
	ill, err := LookupIlluminant(name)
	if err != nil {
		panic(err)
	}
	return ill
}

// Illuminants returns all registered illuminants sorted by name.
func Illuminants() []Illuminant {
	out := make([]Illuminant, 0, len(registry))
	for _, ill := range registry {
		out = append(out, ill)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// IlluminantFromChromaticity builds a white point from its xy chromaticity coordinates.
func IlluminantFromChromaticity(name string, x, y float64) (Illuminant, error) {
	if !(y > 0) || x < 0 || x+y > 1 || math.IsInf(x, 0) || math.IsNaN(x) {
		return Illuminant{}, domainError("illuminant", y, "chromaticity must satisfy x >= 0, y > 0, x+y <= 1")
	}
	return Illuminant{Name: name, X: x / y, Y: 1, Z: (1 - x - y) / y}, nil
}

// Chromaticity returns the xy chromaticity coordinates of the white point.
func (i Illuminant) Chromaticity() (x, y float64) {
	w := i.orDefault()
	sum := w.X + w.Y + w.Z
	return w.X / sum, w.Y / sum
}

// Equal reports whether two illuminants have the same tristimulus values.
// The zero value compares equal to D65.
func (i Illuminant) Equal(other Illuminant) bool {
	a, b := i.orDefault(), other.orDefault()
	return a.X == b.X && a.Y == b.Y && a.Z == b.Z
}

// IsZero reports whether i is the unset default.
func (i Illuminant) IsZero() bool {
	return i == Illuminant{}
}

func (i Illuminant) String() string {
	return i.orDefault().Name
}

func (i Illuminant) orDefault() Illuminant {
	if i.IsZero() {
		return D65
	}
	return i
}

func (i Illuminant) vec() vec3 {
	w := i.orDefault()
	return vec3{w.X, w.Y, w.Z}
}

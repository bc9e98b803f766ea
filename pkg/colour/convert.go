// Package colour converts colours between device RGB, CIE XYZ, CIELAB, CIELUV, their polar
// LCh forms, HSV and HSL, and measures and manipulates them perceptually.
//
// Every space converts through CIE XYZ. Illuminant-relative values (XYZ, Lab, Luv, LCh)
// carry their white point; a conversion adapts to the target's white point with the
// Bradford transform. All values are immutable and every function is safe for concurrent use.
package colour

// Colour is any value that can be expressed as CIE XYZ.
type Colour interface {
	// ToXYZ returns the colour as tristimulus values relative to target.
	ToXYZ(target Illuminant) (XYZ, error)
	// WhitePoint returns the reference white the value is expressed against.
	WhitePoint() Illuminant
}

// Space is the closed set of colour types provided by this package. T is the type itself.
// The receiver of FromXYZ acts as a template: its white point or RGB space selects the
// flavour of the result.
type Space[T any] interface {
	Colour
	Components() [3]float64
	FromXYZ(xyz XYZ) (T, error)

	withComponents(v [3]float64) T
	withDefaultWhite(w Illuminant) T
	polar() (hue, chroma int, ok bool)
}

// relative marks types whose numbers only mean something together with their white point.
type relative interface {
	illuminantRelative()
}

var (
	_ Space[XYZ]       = XYZ{}
	_ Space[RGB]       = RGB{}
	_ Space[LinearRGB] = LinearRGB{}
	_ Space[Lab]       = Lab{}
	_ Space[Luv]       = Luv{}
	_ Space[LChab]     = LChab{}
	_ Space[LChuv]     = LChuv{}
	_ Space[HSV]       = HSV{}
	_ Space[HSL]       = HSL{}
)

// Convert converts c to the default flavour of T: D65 for relative spaces, sRGB for
// device spaces.
func Convert[T Space[T]](c Colour) (T, error) {
	var zero T
	return ConvertLike(c, zero)
}

// ConvertLike converts c into the space of like, honouring its white point or RGB space.
func ConvertLike[T Space[T]](c Colour, like T) (T, error) {
	xyz, err := c.ToXYZ(like.WhitePoint())
	if err != nil {
		var zero T
		return zero, err
	}
	return like.FromXYZ(xyz)
}

func isRelative(c Colour) bool {
	_, ok := c.(relative)
	return ok
}

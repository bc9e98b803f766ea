package colour

// CAT is a linear chromatic adaptation transform: XYZ is taken into a cone-response space,
// scaled channel-wise by the ratio of destination to source white, and taken back.
type CAT struct {
	Name    string
	cone    mat3
	coneInv mat3
}

// Adaptation transforms. Bradford is the one used by every implicit conversion.
var (
	Bradford = newCAT("Bradford", mat3{
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	})
	VonKries = newCAT("von Kries", mat3{
		{0.40024, 0.70760, -0.08081},
		{-0.22630, 1.16532, 0.04570},
		{0, 0, 0.91822},
	})
	XYZScaling = newCAT("XYZ scaling", diag(1, 1, 1))
)

func newCAT(name string, cone mat3) *CAT {
	return &CAT{Name: name, cone: cone, coneInv: cone.mustInverse()}
}

// Adapt re-expresses xyz, currently relative to xyz.White, relative to the white point to
// using the Bradford transform. Equal illuminants return the input unchanged.
func Adapt(xyz XYZ, to Illuminant) XYZ {
	return Bradford.Adapt(xyz, to)
}

// Adapt applies the transform.
func (t *CAT) Adapt(xyz XYZ, to Illuminant) XYZ {
	from := xyz.White.orDefault()
	to = to.orDefault()
	if from.Equal(to) {
		xyz.White = to
		return xyz
	}
	v := t.matrix(from, to).apply(xyz.vec())
	return XYZ{X: v[0], Y: v[1], Z: v[2], White: to}
}

// Matrix returns the combined XYZ to XYZ adaptation matrix for the given whites.
func (t *CAT) Matrix(from, to Illuminant) [3][3]float64 {
	return t.matrix(from.orDefault(), to.orDefault())
}

func (t *CAT) matrix(from, to Illuminant) mat3 {
	src := t.cone.apply(from.vec())
	dst := t.cone.apply(to.vec())
	scale := diag(dst[0]/src[0], dst[1]/src[1], dst[2]/src[2])
	return t.coneInv.mul(scale.mul(t.cone))
}

func (t *CAT) String() string { return t.Name }

package colour

// spectralLocus is the CIE 1931 2° chromaticity of monochromatic light, 380-700 nm in 5 nm steps.
var spectralLocus = [...]Chromaticity{
	{0.1741, 0.0050}, {0.1740, 0.0050}, {0.1738, 0.0049}, {0.1736, 0.0049},
	{0.1733, 0.0048}, {0.1730, 0.0048}, {0.1726, 0.0048}, {0.1721, 0.0048},
	{0.1714, 0.0051}, {0.1703, 0.0058}, {0.1689, 0.0069}, {0.1669, 0.0086},
	{0.1644, 0.0109}, {0.1611, 0.0138}, {0.1566, 0.0177}, {0.1510, 0.0227},
	{0.1440, 0.0297}, {0.1355, 0.0399}, {0.1241, 0.0578}, {0.1096, 0.0868},
	{0.0913, 0.1327}, {0.0687, 0.2007}, {0.0454, 0.2950}, {0.0235, 0.4127},
	{0.0082, 0.5384}, {0.0039, 0.6548}, {0.0139, 0.7502}, {0.0389, 0.8120},
	{0.0743, 0.8338}, {0.1142, 0.8262}, {0.1547, 0.8059}, {0.1929, 0.7816},
	{0.2296, 0.7543}, {0.2658, 0.7243}, {0.3016, 0.6923}, {0.3373, 0.6589},
	{0.3731, 0.6245}, {0.4087, 0.5896}, {0.4441, 0.5547}, {0.4788, 0.5202},
	{0.5125, 0.4866}, {0.5448, 0.4544}, {0.5752, 0.4242}, {0.6029, 0.3965},
	{0.6270, 0.3725}, {0.6482, 0.3514}, {0.6658, 0.3340}, {0.6801, 0.3197},
	{0.6915, 0.3083}, {0.7006, 0.2993}, {0.7079, 0.2920}, {0.7140, 0.2859},
	{0.7190, 0.2809}, {0.7230, 0.2770}, {0.7260, 0.2740}, {0.7283, 0.2717},
	{0.7300, 0.2700}, {0.7311, 0.2689}, {0.7320, 0.2680}, {0.7327, 0.2673},
	{0.7334, 0.2666}, {0.7340, 0.2660}, {0.7344, 0.2656}, {0.7346, 0.2654},
	{0.7347, 0.2653},
}

// blackThreshold is the X+Y+Z sum below which chromaticity is not meaningful.
const blackThreshold = 1e-12

// IsVisible reports whether c is a colour the standard observer can see: non-negative
// luminance and a chromaticity inside the spectral locus closed by the line of purples.
func IsVisible(c Colour) bool {
	xyz, err := c.ToXYZ(c.WhitePoint())
	if err != nil || xyz.Y < -negativeLuminanceTolerance {
		return false
	}
	sum := xyz.X + xyz.Y + xyz.Z
	if sum < blackThreshold {
		return sum > -blackThreshold && xyz.X > -blackThreshold && xyz.Z > -blackThreshold
	}
	return insideLocus(xyz.X/sum, xyz.Y/sum)
}

// ClosestVisible returns c unchanged if it is visible, otherwise the visible colour with the
// same lightness and hue and the largest chroma.
func ClosestVisible[T Space[T]](c T) (T, error) {
	return reduceChroma(c, func(t T) bool { return IsVisible(t) })
}

// insideLocus is an even-odd ray cast against the locus polygon.
func insideLocus(x, y float64) bool {
	inside := false
	n := len(spectralLocus)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := spectralLocus[i], spectralLocus[j]
		if (pi.Y > y) != (pj.Y > y) && x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}

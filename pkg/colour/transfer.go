package colour

import "math"

// Transfer converts between linear light and the companded values stored in RGB.
// Implementations are odd-symmetric so that negative (out-of-gamut) channels survive round trips.
type Transfer interface {
	Encode(linear float64) float64
	Decode(encoded float64) float64
}

// SRGBTransfer is the IEC 61966-2-1 piecewise curve.
type SRGBTransfer struct{}

const (
	srgbDecodeThreshold = 0.04045
	srgbEncodeThreshold = srgbDecodeThreshold / 12.92
)

func (SRGBTransfer) Encode(v float64) float64 {
	return symmetric(v, func(l float64) float64 {
		if l <= srgbEncodeThreshold {
			return 12.92 * l
		}
		return 1.055*math.Pow(l, 1/2.4) - 0.055
	})
}

func (SRGBTransfer) Decode(v float64) float64 {
	return symmetric(v, func(e float64) float64 {
		if e <= srgbDecodeThreshold {
			return e / 12.92
		}
		return math.Pow((e+0.055)/1.055, 2.4)
	})
}

// GammaTransfer is a pure power law.
type GammaTransfer struct {
	Gamma float64
}

func (g GammaTransfer) Encode(v float64) float64 {
	return symmetric(v, func(l float64) float64 { return math.Pow(l, 1/g.Gamma) })
}

func (g GammaTransfer) Decode(v float64) float64 {
	return symmetric(v, func(e float64) float64 { return math.Pow(e, g.Gamma) })
}

// ROMMTransfer is the ProPhoto (ROMM RGB) curve: gamma 1.8 with a linear toe below 1/512.
type ROMMTransfer struct{}

const rommToe = 1.0 / 512

func (ROMMTransfer) Encode(v float64) float64 {
	return symmetric(v, func(l float64) float64 {
		if l < rommToe {
			return 16 * l
		}
		return math.Pow(l, 1/1.8)
	})
}

func (ROMMTransfer) Decode(v float64) float64 {
	return symmetric(v, func(e float64) float64 {
		if e < 16*rommToe {
			return e / 16
		}
		return math.Pow(e, 1.8)
	})
}

// LinearTransfer leaves values untouched.
type LinearTransfer struct{}

func (LinearTransfer) Encode(v float64) float64 { return v }
func (LinearTransfer) Decode(v float64) float64 { return v }

func symmetric(v float64, f func(float64) float64) float64 {
	if v < 0 {
		return -f(-v)
	}
	return f(v)
}

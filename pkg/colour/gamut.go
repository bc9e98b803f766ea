package colour

import (
	"fmt"
	"math"
)

const (
	// gamutTolerance absorbs conversion rounding when testing perceptual values against a device.
	gamutTolerance = 1e-9
	// maxClipIterations bounds the chroma bisection.
	maxClipIterations = 64
	// clipChromaResolution stops the bisection once the bracket is this narrow.
	clipChromaResolution = 1e-9
)

// InGamut reports whether c lies inside its valid range. Device spaces (RGB, LinearRGB, HSV,
// HSL) check their own channel bounds; illuminant-relative spaces check realisability in sRGB.
func InGamut(c Colour) bool {
	switch v := c.(type) {
	case RGB:
		return inUnit(v.R) && inUnit(v.G) && inUnit(v.B)
	case LinearRGB:
		return inUnit(v.R) && inUnit(v.G) && inUnit(v.B)
	case HSV:
		return inHue(v.H) && inUnit(v.S) && inUnit(v.V)
	case HSL:
		return inHue(v.H) && inUnit(v.S) && inUnit(v.L)
	}
	return InGamutOf(c, SRGB)
}

// InGamutOf reports whether c is realisable on the given RGB device.
func InGamutOf(c Colour, space *RGBSpace) bool {
	lin, err := ConvertLike(c, LinearRGB{Space: space})
	if err != nil {
		return false
	}
	for _, v := range lin.Components() {
		if v < -gamutTolerance || v > 1+gamutTolerance {
			return false
		}
	}
	return true
}

// ClipToGamut returns c unchanged if InGamut(c). Otherwise device spaces are clamped
// channel-wise and relative spaces lose chroma at constant lightness and hue until they
// fit in sRGB.
func ClipToGamut[T Space[T]](c T) (T, error) {
	if InGamut(c) {
		return c, nil
	}
	switch v := any(c).(type) {
	case RGB:
		return any(RGB{R: clampUnit(v.R), G: clampUnit(v.G), B: clampUnit(v.B), Space: v.Space}).(T), nil
	case LinearRGB:
		return any(LinearRGB{R: clampUnit(v.R), G: clampUnit(v.G), B: clampUnit(v.B), Space: v.Space}).(T), nil
	case HSV:
		return any(HSV{H: clampHue(v.H), S: clampUnit(v.S), V: clampUnit(v.V), Space: v.Space}).(T), nil
	case HSL:
		return any(HSL{H: clampHue(v.H), S: clampUnit(v.S), L: clampUnit(v.L), Space: v.Space}).(T), nil
	}
	return ClipToGamutOf(c, SRGB)
}

// ClipToGamutOf reduces chroma at constant lightness and hue until c fits the RGB device.
func ClipToGamutOf[T Space[T]](c T, space *RGBSpace) (T, error) {
	return reduceChroma(c, func(t T) bool { return InGamutOf(t, space) })
}

// reduceChroma bisects chroma between the neutral axis and c, keeping lightness and hue,
// and returns the most chromatic candidate accepted.
func reduceChroma[T Space[T]](c T, accept func(T) bool) (T, error) {
	if accept(c) {
		return c, nil
	}
	chroma, at, err := chromaLine(c)
	if err != nil {
		return c, fmt.Errorf("%w: %w", ErrGamutUnrepresentable, err)
	}

	best, err := at(0)
	if err != nil || !accept(best) {
		return c, fmt.Errorf("%w: neutral axis at this lightness is out of range", ErrGamutUnrepresentable)
	}
	lo, hi := 0.0, chroma
	for i := 0; i < maxClipIterations && hi-lo > clipChromaResolution; i++ {
		mid := (lo + hi) / 2
		t, err := at(mid)
		if err == nil && accept(t) {
			lo, best = mid, t
		} else {
			hi = mid
		}
	}
	return best, nil
}

// chromaLine returns the chroma of c and a function producing c's type at the same lightness
// and hue with another chroma. CIE inputs take their polar form directly, so lightness outside
// [0, 100] never passes through XYZ.
func chromaLine[T Space[T]](c T) (float64, func(float64) (T, error), error) {
	switch v := any(c).(type) {
	case Lab:
		p := v.LCh()
		return p.C, func(ch float64) (T, error) {
			return any(LChab{L: p.L, C: ch, H: p.H, White: p.White}.Lab()).(T), nil
		}, nil
	case LChab:
		return v.C, func(ch float64) (T, error) {
			return any(LChab{L: v.L, C: ch, H: v.H, White: v.White}).(T), nil
		}, nil
	case Luv:
		p := v.LCh()
		return p.C, func(ch float64) (T, error) {
			return any(LChuv{L: p.L, C: ch, H: p.H, White: p.White}.Luv()).(T), nil
		}, nil
	case LChuv:
		return v.C, func(ch float64) (T, error) {
			return any(LChuv{L: v.L, C: ch, H: v.H, White: v.White}).(T), nil
		}, nil
	}

	white := c.WhitePoint()
	p, err := ConvertLike(c, LChab{White: white})
	if err != nil {
		return 0, nil, err
	}
	return p.C, func(ch float64) (T, error) {
		return ConvertLike(LChab{L: p.L, C: ch, H: p.H, White: white}, c)
	}, nil
}

func inUnit(v float64) bool { return v >= 0 && v <= 1 }

func inHue(h float64) bool { return h >= 0 && h < 360 }

func clampHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	return NormalizeHue(h)
}

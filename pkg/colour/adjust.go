package colour

import "math"

// Lightness returns CIE L* of c under its own white point.
func Lightness(c Colour) (float64, error) {
	p, err := lchOf(c)
	return p.L, err
}

// Chroma returns CIE C*ab of c under its own white point.
func Chroma(c Colour) (float64, error) {
	p, err := lchOf(c)
	return p.C, err
}

// Hue returns the CIE hab angle of c in degrees; neutral colours report 0.
func Hue(c Colour) (float64, error) {
	p, err := lchOf(c)
	return p.H, err
}

// Lighten raises L* by amount, clamped to [0, 100]. The result keeps the type of c.
func Lighten[T Space[T]](c T, amount float64) (T, error) {
	return adjustLCh(c, func(p *LChab) { p.L = math.Min(100, math.Max(0, p.L+amount)) })
}

// Darken lowers L* by amount.
func Darken[T Space[T]](c T, amount float64) (T, error) {
	return Lighten(c, -amount)
}

// Saturate raises chroma by amount; chroma never drops below zero.
func Saturate[T Space[T]](c T, amount float64) (T, error) {
	return adjustLCh(c, func(p *LChab) { p.C = math.Max(0, p.C+amount) })
}

// Desaturate lowers chroma by amount.
func Desaturate[T Space[T]](c T, amount float64) (T, error) {
	return Saturate(c, -amount)
}

// SetHue replaces the hue angle, keeping lightness and chroma.
func SetHue[T Space[T]](c T, hue float64) (T, error) {
	return adjustLCh(c, func(p *LChab) { p.H = NormalizeHue(hue) })
}

// Grayscale removes all chroma, keeping lightness.
func Grayscale[T Space[T]](c T) (T, error) {
	return adjustLCh(c, func(p *LChab) { p.C, p.H = 0, 0 })
}

func lchOf(c Colour) (LChab, error) {
	return ConvertLike(c, LChab{White: c.WhitePoint()})
}

func adjustLCh[T Space[T]](c T, f func(*LChab)) (T, error) {
	p, err := lchOf(c)
	if err != nil {
		return c, err
	}
	if math.IsNaN(p.L) {
		return c, domainError("adjust", p.L, "lightness is undefined")
	}
	f(&p)
	return ConvertLike(p, c)
}

package colour

import "math"

// Mix blends a towards b in CIELAB. weight 0 returns a and weight 1 returns b (converted to
// a's space if b is of another type). The result is in the space of a.
func Mix[T Space[T]](a T, b Colour, weight float64, opts ...Option) (T, error) {
	return MixIn(a, b, weight, Lab{}, opts...)
}

// MixIn blends in the space of like. Polar spaces interpolate hue along the shorter arc, and
// an achromatic endpoint takes the hue of the other one.
func MixIn[T Space[T], S Space[S]](a T, b Colour, weight float64, like S, opts ...Option) (T, error) {
	if math.IsNaN(weight) || weight < 0 || weight > 1 {
		return a, domainError("mix", weight, "weight must be within [0, 1]")
	}
	w, err := workingWhite("mix", a, b, collect(opts))
	if err != nil {
		return a, err
	}
	switch weight {
	case 0:
		return a, nil
	case 1:
		if bt, ok := b.(T); ok {
			return bt, nil
		}
		return ConvertLike(b, a)
	}

	like = like.withDefaultWhite(w)
	pa, err := ConvertLike(a, like)
	if err != nil {
		return a, err
	}
	pb, err := ConvertLike(b, like)
	if err != nil {
		return a, err
	}
	return ConvertLike(interpolate(pa, pb, weight), a)
}

func interpolate[S Space[S]](a, b S, t float64) S {
	ca, cb := a.Components(), b.Components()
	var out [3]float64
	for i := range out {
		out[i] = ca[i] + t*(cb[i]-ca[i])
	}
	hue, chroma, ok := a.polar()
	if !ok {
		return a.withComponents(out)
	}
	ha, hb := ca[hue], cb[hue]
	switch {
	case ca[chroma] < AchromaticThreshold && cb[chroma] >= AchromaticThreshold:
		ha = hb
	case cb[chroma] < AchromaticThreshold && ca[chroma] >= AchromaticThreshold:
		hb = ha
	}
	out[hue] = NormalizeHue(ha + t*hueDelta(ha, hb))
	return a.withComponents(out)
}

package colour

import "math"

// JustNoticeableDifference is the CIEDE2000 distance below which colours look identical.
const JustNoticeableDifference = 1.0

// EuclideanDistance is the straight-line distance between a and b in CIELAB.
func EuclideanDistance(a, b Colour, opts ...Option) (float64, error) {
	return EuclideanDistanceIn(a, b, Lab{}, opts...)
}

// EuclideanDistanceIn is the straight-line distance in the space of like. Polar spaces are
// measured between their Cartesian embeddings so that hue wraps around.
func EuclideanDistanceIn[S Space[S]](a, b Colour, like S, opts ...Option) (float64, error) {
	w, err := workingWhite("euclidean distance", a, b, collect(opts))
	if err != nil {
		return 0, err
	}
	like = like.withDefaultWhite(w)
	pa, err := ConvertLike(a, like)
	if err != nil {
		return 0, err
	}
	pb, err := ConvertLike(b, like)
	if err != nil {
		return 0, err
	}
	ea, eb := embed(pa), embed(pb)
	var sum float64
	for i := range ea {
		d := ea[i] - eb[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

// embed maps polar coordinates onto a plane; rectangular spaces are returned as is.
func embed[S Space[S]](c S) [3]float64 {
	v := c.Components()
	hue, chroma, ok := c.polar()
	if !ok {
		return v
	}
	x, y := fromPolar(v[chroma], v[hue])
	return [3]float64{v[3-hue-chroma], x, y}
}

// CIEDE2000 is the CIE 2000 colour difference between a and b, computed in CIELAB under
// the working white point.
func CIEDE2000(a, b Colour, opts ...Option) (float64, error) {
	w, err := workingWhite("ciede2000", a, b, collect(opts))
	if err != nil {
		return 0, err
	}
	la, err := ConvertLike(a, Lab{White: w})
	if err != nil {
		return 0, err
	}
	lb, err := ConvertLike(b, Lab{White: w})
	if err != nil {
		return 0, err
	}
	return DeltaE00(la, lb), nil
}

// VisuallyEqual reports whether a and b are closer than the just noticeable difference.
func VisuallyEqual(a, b Colour, opts ...Option) (bool, error) {
	d, err := CIEDE2000(a, b, opts...)
	if err != nil {
		return false, err
	}
	return d < JustNoticeableDifference, nil
}

const pow25To7 = 6103515625.0 // 25^7

// DeltaE00 applies the CIEDE2000 formula (Sharma, Wu, Dalal 2005) with kL = kC = kH = 1
// to two Lab values. White points are not checked. Angles are in degrees.
func DeltaE00(lab1, lab2 Lab) float64 {
	c1 := math.Hypot(lab1.A, lab1.B)
	c2 := math.Hypot(lab2.A, lab2.B)
	cBar7 := math.Pow((c1+c2)/2, 7)
	g := 0.5 * (1 - math.Sqrt(cBar7/(cBar7+pow25To7)))

	a1p := (1 + g) * lab1.A
	a2p := (1 + g) * lab2.A
	c1p := math.Hypot(a1p, lab1.B)
	c2p := math.Hypot(a2p, lab2.B)
	h1p := primeHue(a1p, lab1.B)
	h2p := primeHue(a2p, lab2.B)

	dLp := lab2.L - lab1.L
	dCp := c2p - c1p

	// Hue difference and mean hue are undefined when either colour is neutral.
	neutral := c1p*c2p == 0
	var dhp float64
	if !neutral {
		dhp = h2p - h1p
		if dhp > 180 {
			dhp -= 360
		} else if dhp < -180 {
			dhp += 360
		}
	}
	dHp := 2 * math.Sqrt(c1p*c2p) * sinDeg(dhp/2)

	lBarp := (lab1.L + lab2.L) / 2
	cBarp := (c1p + c2p) / 2
	hSum := h1p + h2p
	var hBarp float64
	switch {
	case neutral:
		hBarp = hSum
	case math.Abs(h1p-h2p) <= 180:
		hBarp = hSum / 2
	case hSum < 360:
		hBarp = (hSum + 360) / 2
	default:
		hBarp = (hSum - 360) / 2
	}

	t := 1 -
		0.17*cosDeg(hBarp-30) +
		0.24*cosDeg(2*hBarp) +
		0.32*cosDeg(3*hBarp+6) -
		0.20*cosDeg(4*hBarp-63)
	dTheta := 30 * math.Exp(-math.Pow((hBarp-275)/25, 2))
	cBarp7 := math.Pow(cBarp, 7)
	rc := 2 * math.Sqrt(cBarp7/(cBarp7+pow25To7))
	lm := (lBarp - 50) * (lBarp - 50)
	sl := 1 + 0.015*lm/math.Sqrt(20+lm)
	sc := 1 + 0.045*cBarp
	sh := 1 + 0.015*cBarp*t
	rt := -sinDeg(2*dTheta) * rc

	l := dLp / sl
	c := dCp / sc
	h := dHp / sh
	return math.Sqrt(l*l + c*c + h*h + rt*c*h)
}

func primeHue(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	return NormalizeHue(math.Atan2(b, a) * 180 / math.Pi)
}

func sinDeg(d float64) float64 { return math.Sin(d * math.Pi / 180) }
func cosDeg(d float64) float64 { return math.Cos(d * math.Pi / 180) }

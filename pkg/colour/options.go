package colour

// Option tunes distance, mixing and colormap operations.
type Option func(*options)

type options struct {
	adapt bool
	white Illuminant
}

// WithAdaptation allows operands relative to different white points; both are adapted to
// the working white point before the operation.
func WithAdaptation() Option {
	return func(o *options) { o.adapt = true }
}

// WithWhitePoint sets the working white point used when no operand fixes one.
func WithWhitePoint(w Illuminant) Option {
	return func(o *options) { o.white = w }
}

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WorkingWhite reports the white point a and b would be compared, mixed or interpolated under.
// It fails with ErrIlluminantMismatch when both are illuminant-relative with different whites
// and WithAdaptation is not given.
func WorkingWhite(a, b Colour, opts ...Option) (Illuminant, error) {
	return workingWhite("compare", a, b, collect(opts))
}

// workingWhite picks the white point two operands are compared under. It is symmetric in a and b.
func workingWhite(op string, a, b Colour, o options) (Illuminant, error) {
	ra, rb := isRelative(a), isRelative(b)
	switch {
	case ra && rb:
		wa, wb := a.WhitePoint(), b.WhitePoint()
		if wa.Equal(wb) {
			return wa, nil
		}
		if !o.adapt {
			return Illuminant{}, &IlluminantMismatchError{Op: op, A: wa, B: wb}
		}
	case ra:
		return a.WhitePoint(), nil
	case rb:
		return b.WhitePoint(), nil
	}
	return o.white.orDefault(), nil
}

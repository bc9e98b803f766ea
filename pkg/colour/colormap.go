package colour

import (
	"fmt"
	"math"
)

// Stop anchors a colour at a position along a colormap.
type Stop[T Space[T]] struct {
	Colour   T
	Position float64
}

// EvenStops spaces colours evenly over [0, 1].
func EvenStops[T Space[T]](colours ...T) []Stop[T] {
	stops := make([]Stop[T], len(colours))
	for i, c := range colours {
		if len(colours) > 1 {
			stops[i].Position = float64(i) / float64(len(colours)-1)
		}
		stops[i].Colour = c
	}
	return stops
}

// Colormap samples n colours from the first to the last stop, mixing adjacent stops in CIELAB.
func Colormap[T Space[T]](stops []Stop[T], n int, opts ...Option) ([]T, error) {
	return ColormapIn(stops, n, Lab{}, opts...)
}

// ColormapIn samples n evenly spaced positions between the first and last stop, mixing
// adjacent stops in the space of like. The first and last samples are the end stops exactly.
func ColormapIn[T Space[T], S Space[S]](stops []Stop[T], n int, like S, opts ...Option) ([]T, error) {
	if n < 1 {
		return nil, domainError("colormap", float64(n), "sample count must be at least 1")
	}
	if err := validateStops(stops, collect(opts)); err != nil {
		return nil, err
	}

	out := make([]T, n)
	last := len(stops) - 1
	out[0] = stops[0].Colour
	if n == 1 {
		return out, nil
	}
	out[n-1] = stops[last].Colour
	if last == 0 {
		for i := range out {
			out[i] = stops[0].Colour
		}
		return out, nil
	}

	start, end := stops[0].Position, stops[last].Position
	k := 0
	for i := 1; i < n-1; i++ {
		t := start + (end-start)*float64(i)/float64(n-1)
		for k < last-1 && stops[k+1].Position <= t {
			k++
		}
		lo, hi := stops[k], stops[k+1]
		w := 1.0
		if span := hi.Position - lo.Position; span > 0 {
			w = math.Min(1, math.Max(0, (t-lo.Position)/span))
		}
		c, err := MixIn(lo.Colour, hi.Colour, w, like, opts...)
		if err != nil {
			return nil, fmt.Errorf("colormap sample %d: %w", i, err)
		}
		out[i] = c
	}
	return out, nil
}

func validateStops[T Space[T]](stops []Stop[T], o options) error {
	if len(stops) == 0 {
		return fmt.Errorf("%w: no stops", ErrInvalidStops)
	}
	for i, s := range stops {
		if math.IsNaN(s.Position) || math.IsInf(s.Position, 0) {
			return fmt.Errorf("%w: stop %d has non-finite position", ErrInvalidStops, i)
		}
		if i == 0 {
			continue
		}
		if s.Position < stops[i-1].Position {
			return fmt.Errorf("%w: stop %d at %g precedes stop %d at %g",
				ErrInvalidStops, i, s.Position, i-1, stops[i-1].Position)
		}
		if _, err := workingWhite("colormap", stops[i-1].Colour, s.Colour, o); err != nil {
			return err
		}
	}
	if len(stops) > 1 && stops[0].Position == stops[len(stops)-1].Position {
		return fmt.Errorf("%w: stops span no distance", ErrInvalidStops)
	}
	return nil
}

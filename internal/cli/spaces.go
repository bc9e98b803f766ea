package cli

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/chromatic/internal/config"
	"github.com/jmylchreest/chromatic/pkg/colour"
)

// spaceNames lists the spaces accepted by --to and --space, in display order.
var spaceNames = []string{"rgb", "lrgb", "hsv", "hsl", "xyz", "lab", "luv", "lch", "lchuv"}

// spaceOps binds the generic colour operations to one concrete space chosen at run time.
type spaceOps struct {
	name     string
	convert  func(c colour.Colour) (colour.Colour, error)
	mix      func(a, b colour.Colour, weight float64, opts ...colour.Option) (colour.Colour, error)
	colormap func(cs []colour.Colour, positions []float64, n int, opts ...colour.Option) ([]colour.Colour, error)
	distance func(a, b colour.Colour, opts ...colour.Option) (float64, error)
	clip     func(c colour.Colour, space *colour.RGBSpace) (colour.Colour, error)
	visible  func(c colour.Colour) (colour.Colour, error)
	adjust   func(c colour.Colour, a adjustments) (colour.Colour, error)
}

func opsFor[T colour.Space[T]](name string, like T) spaceOps {
	conv := func(c colour.Colour) (T, error) { return colour.ConvertLike(c, like) }

	return spaceOps{
		name: name,
		convert: func(c colour.Colour) (colour.Colour, error) {
			return boxed(conv(c))
		},
		mix: func(a, b colour.Colour, weight float64, opts ...colour.Option) (colour.Colour, error) {
			ta, err := conv(a)
			if err != nil {
				return nil, err
			}
			return boxed(colour.MixIn(ta, b, weight, like, opts...))
		},
		colormap: func(cs []colour.Colour, positions []float64, n int, opts ...colour.Option) ([]colour.Colour, error) {
			stops := make([]colour.Stop[T], len(cs))
			for i, c := range cs {
				t, err := conv(c)
				if err != nil {
					return nil, fmt.Errorf("stop %d: %w", i+1, err)
				}
				stops[i].Colour = t
			}
			if positions == nil {
				ts := make([]T, len(stops))
				for i := range stops {
					ts[i] = stops[i].Colour
				}
				stops = colour.EvenStops(ts...)
			} else {
				for i := range stops {
					stops[i].Position = positions[i]
				}
			}
			out, err := colour.ColormapIn(stops, n, like, opts...)
			if err != nil {
				return nil, err
			}
			boxedOut := make([]colour.Colour, len(out))
			for i, c := range out {
				boxedOut[i] = c
			}
			return boxedOut, nil
		},
		distance: func(a, b colour.Colour, opts ...colour.Option) (float64, error) {
			return colour.EuclideanDistanceIn(a, b, like, opts...)
		},
		clip: func(c colour.Colour, space *colour.RGBSpace) (colour.Colour, error) {
			t, err := conv(c)
			if err != nil {
				return nil, err
			}
			return boxed(colour.ClipToGamutOf(t, space))
		},
		visible: func(c colour.Colour) (colour.Colour, error) {
			t, err := conv(c)
			if err != nil {
				return nil, err
			}
			return boxed(colour.ClosestVisible(t))
		},
		adjust: func(c colour.Colour, a adjustments) (colour.Colour, error) {
			t, err := conv(c)
			if err != nil {
				return nil, err
			}
			return boxed(applyAdjustments(t, a))
		},
	}
}

func boxed[T colour.Colour](t T, err error) (colour.Colour, error) {
	if err != nil {
		return nil, err
	}
	return t, nil
}

// spaceByName returns the operations for a named space, using the configured white point
// and RGB space as its flavour.
func spaceByName(name string, cfg config.Config) (spaceOps, error) {
	w, rgb := cfg.Illuminant, cfg.RGBSpace
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rgb", "srgb":
		return opsFor("rgb", colour.RGB{Space: rgb}), nil
	case "lrgb", "linear-rgb":
		return opsFor("lrgb", colour.LinearRGB{Space: rgb}), nil
	case "hsv":
		return opsFor("hsv", colour.HSV{Space: rgb}), nil
	case "hsl":
		return opsFor("hsl", colour.HSL{Space: rgb}), nil
	case "xyz":
		return opsFor("xyz", colour.XYZ{White: w}), nil
	case "lab":
		return opsFor("lab", colour.Lab{White: w}), nil
	case "luv":
		return opsFor("luv", colour.Luv{White: w}), nil
	case "lch", "lchab":
		return opsFor("lch", colour.LChab{White: w}), nil
	case "lchuv":
		return opsFor("lchuv", colour.LChuv{White: w}), nil
	}
	return spaceOps{}, fmt.Errorf("unknown colour space %q (valid: %s)", name, strings.Join(spaceNames, ", "))
}

// spaceOf returns the operations for the space c is already in, keeping its white point
// or RGB space.
func spaceOf(c colour.Colour) spaceOps {
	switch v := c.(type) {
	case colour.RGB:
		return opsFor("rgb", v)
	case colour.LinearRGB:
		return opsFor("lrgb", v)
	case colour.HSV:
		return opsFor("hsv", v)
	case colour.HSL:
		return opsFor("hsl", v)
	case colour.XYZ:
		return opsFor("xyz", v)
	case colour.Luv:
		return opsFor("luv", v)
	case colour.LChab:
		return opsFor("lch", v)
	case colour.LChuv:
		return opsFor("lchuv", v)
	}
	lab, _ := c.(colour.Lab)
	return opsFor("lab", lab)
}

// adjustments are applied in a fixed order: lightness, chroma, hue, then grayscale.
type adjustments struct {
	lighten   float64
	saturate  float64
	hue       *float64
	grayscale bool
}

func (a adjustments) empty() bool {
	return a.lighten == 0 && a.saturate == 0 && a.hue == nil && !a.grayscale
}

func applyAdjustments[T colour.Space[T]](c T, a adjustments) (T, error) {
	var err error
	if a.lighten != 0 {
		if c, err = colour.Lighten(c, a.lighten); err != nil {
			return c, err
		}
	}
	if a.saturate != 0 {
		if c, err = colour.Saturate(c, a.saturate); err != nil {
			return c, err
		}
	}
	if a.hue != nil {
		if c, err = colour.SetHue(c, *a.hue); err != nil {
			return c, err
		}
	}
	if a.grayscale {
		return colour.Grayscale(c)
	}
	return c, nil
}

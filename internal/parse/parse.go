// Package parse reads colours written on the command line: hex triplets, CSS colour names
// and functional notation such as lab(53.2, 80.1, 67.2).
//
// Functional notation takes three components separated by commas or spaces and an optional
// qualifier after a slash. The qualifier names the white point of an illuminant-relative
// value ("lab(50 20 -10 / D50)") or the RGB space of a device value ("rgb(255 0 0 / p3)").
package parse

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/jmylchreest/chromatic/pkg/colour"
)

// ErrSyntax is returned for input that is not a recognised colour.
var ErrSyntax = errors.New("invalid colour syntax")

// Parser holds the defaults applied when a value does not carry its own qualifier.
// The zero Parser uses D65 and sRGB.
type Parser struct {
	White    colour.Illuminant
	RGBSpace *colour.RGBSpace
}

// Colour parses s with the zero Parser.
func Colour(s string) (colour.Colour, error) {
	return Parser{}.Parse(s)
}

// Parse parses a single colour. Hex values and names are always sRGB.
func (p Parser) Parse(s string) (colour.Colour, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return nil, fmt.Errorf("%w: empty input", ErrSyntax)
	}
	if open := strings.IndexByte(in, '('); open > 0 {
		return p.parseFunc(strings.TrimSpace(in[:open]), in[open+1:], s)
	}
	if named, ok := colornames.Map[in]; ok {
		c, _ := colorful.MakeColor(named)
		return colour.NewRGB(c.R, c.G, c.B), nil
	}
	return parseHex(in, s)
}

// All parses every argument, stopping at the first error.
func (p Parser) All(args []string) ([]colour.Colour, error) {
	out := make([]colour.Colour, 0, len(args))
	for i, arg := range args {
		c, err := p.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func parseHex(in, orig string) (colour.Colour, error) {
	if !strings.HasPrefix(in, "#") {
		in = "#" + in
	}
	if len(in) != 4 && len(in) != 7 {
		return nil, fmt.Errorf("%w: %q is neither a colour name nor a hex triplet", ErrSyntax, orig)
	}
	c, err := colorful.Hex(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrSyntax, orig, err)
	}
	return colour.NewRGB(c.R, c.G, c.B), nil
}

func (p Parser) parseFunc(name, rest, orig string) (colour.Colour, error) {
	body, ok := strings.CutSuffix(strings.TrimSpace(rest), ")")
	if !ok {
		return nil, fmt.Errorf("%w: %q is missing a closing parenthesis", ErrSyntax, orig)
	}
	args, qualifier, _ := strings.Cut(body, "/")
	qualifier = strings.TrimSpace(qualifier)
	fields := strings.FieldsFunc(args, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: %s() takes 3 components, got %d", ErrSyntax, name, len(fields))
	}

	switch name {
	case "rgb", "lrgb", "linear-rgb", "hsv", "hsl":
		space, err := p.space(qualifier)
		if err != nil {
			return nil, err
		}
		return device(name, fields, space)
	case "xyz", "lab", "luv", "lch", "lchab", "lchuv":
		white, err := p.white(qualifier)
		if err != nil {
			return nil, err
		}
		return relative(name, fields, white)
	}
	return nil, fmt.Errorf("%w: unknown colour function %q", ErrSyntax, name)
}

func device(name string, fields []string, space *colour.RGBSpace) (colour.Colour, error) {
	switch name {
	case "rgb":
		v, err := numbers(fields, channel8, channel8, channel8)
		if err != nil {
			return nil, err
		}
		return colour.RGB{R: v[0], G: v[1], B: v[2], Space: space}, nil
	case "lrgb", "linear-rgb":
		v, err := numbers(fields, unit, unit, unit)
		if err != nil {
			return nil, err
		}
		return colour.LinearRGB{R: v[0], G: v[1], B: v[2], Space: space}, nil
	case "hsv":
		v, err := numbers(fields, hue, unit, unit)
		if err != nil {
			return nil, err
		}
		return colour.HSV{H: v[0], S: v[1], V: v[2], Space: space}, nil
	default:
		v, err := numbers(fields, hue, unit, unit)
		if err != nil {
			return nil, err
		}
		return colour.HSL{H: v[0], S: v[1], L: v[2], Space: space}, nil
	}
}

func relative(name string, fields []string, white colour.Illuminant) (colour.Colour, error) {
	switch name {
	case "xyz":
		v, err := numbers(fields, plain, plain, plain)
		if err != nil {
			return nil, err
		}
		return colour.XYZ{X: v[0], Y: v[1], Z: v[2], White: white}, nil
	case "lab", "luv":
		v, err := numbers(fields, lightness, plain, plain)
		if err != nil {
			return nil, err
		}
		if name == "luv" {
			return colour.Luv{L: v[0], U: v[1], V: v[2], White: white}, nil
		}
		return colour.Lab{L: v[0], A: v[1], B: v[2], White: white}, nil
	}
	v, err := numbers(fields, lightness, plain, hue)
	if err != nil {
		return nil, err
	}
	if name == "lchuv" {
		return colour.LChuv{L: v[0], C: v[1], H: v[2], White: white}, nil
	}
	return colour.LChab{L: v[0], C: v[1], H: v[2], White: white}, nil
}

// component describes how one written value maps onto a colour component: a plain number
// is divided by scale and a percentage is taken of full. A zero full rejects percentages.
type component struct {
	scale, full float64
}

var (
	channel8  = component{scale: 255, full: 1}
	unit      = component{scale: 1, full: 1}
	hue       = component{scale: 1, full: 360}
	lightness = component{scale: 1, full: 100}
	plain     = component{scale: 1}
)

// numbers parses three components.
func numbers(fields []string, comps ...component) ([3]float64, error) {
	var out [3]float64
	for i, f := range fields {
		c := comps[i]
		pct, isPct := strings.CutSuffix(f, "%")
		if isPct {
			if c.full == 0 {
				return out, fmt.Errorf("%w: %q cannot be a percentage", ErrSyntax, fields[i])
			}
			f = pct
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return out, fmt.Errorf("%w: %q is not a finite number", ErrSyntax, fields[i])
		}
		if isPct {
			out[i] = v / 100 * c.full
		} else {
			out[i] = v / c.scale
		}
	}
	return out, nil
}

func (p Parser) space(qualifier string) (*colour.RGBSpace, error) {
	if qualifier == "" {
		return p.RGBSpace, nil
	}
	return colour.LookupRGBSpace(qualifier)
}

func (p Parser) white(qualifier string) (colour.Illuminant, error) {
	if qualifier == "" {
		return p.White, nil
	}
	return colour.LookupIlluminant(qualifier)
}

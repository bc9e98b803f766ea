package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/chromatic/pkg/colour"
)

// Output formats shared by the colour-producing commands.
var formats = []string{"table", "hex", "json"}

// colourRow is one result line of convert, mix, colormap and adjust.
type colourRow struct {
	Label      string     `json:"label,omitempty"`
	Space      string     `json:"space"`
	Components [3]float64 `json:"components"`
	Reference  string     `json:"reference"`
	Notation   string     `json:"notation"`
	Hex        string     `json:"hex"`
	InGamut    bool       `json:"in_gamut"`

	swatch colorful.Color
}

func newColourRow(label string, c colour.Colour, gamut *colour.RGBSpace) (colourRow, error) {
	space, ref := describe(c)
	hex, swatch, err := hexOf(c)
	if err != nil {
		return colourRow{}, err
	}
	row := colourRow{
		Label:     label,
		Space:     space,
		Reference: ref,
		Notation:  notation(c),
		Hex:       hex,
		InGamut:   colour.InGamutOf(c, gamut),
		swatch:    swatch,
	}
	if v, ok := c.(interface{ Components() [3]float64 }); ok {
		row.Components = v.Components()
	}
	return row, nil
}

// describe returns the short space name of c and the white point or RGB space it is
// expressed against.
func describe(c colour.Colour) (space, reference string) {
	switch v := c.(type) {
	case colour.RGB:
		return "rgb", rgbSpaceID(v.Space)
	case colour.LinearRGB:
		return "lrgb", rgbSpaceID(v.Space)
	case colour.HSV:
		return "hsv", rgbSpaceID(v.Space)
	case colour.HSL:
		return "hsl", rgbSpaceID(v.Space)
	case colour.XYZ:
		return "xyz", v.WhitePoint().Name
	case colour.Lab:
		return "lab", v.WhitePoint().Name
	case colour.Luv:
		return "luv", v.WhitePoint().Name
	case colour.LChab:
		return "lch", v.WhitePoint().Name
	case colour.LChuv:
		return "lchuv", v.WhitePoint().Name
	}
	return fmt.Sprintf("%T", c), c.WhitePoint().Name
}

func rgbSpaceID(s *colour.RGBSpace) string {
	switch s {
	case nil, colour.SRGB:
		return "srgb"
	case colour.AdobeRGB:
		return "adobe-rgb"
	case colour.ProPhotoRGB:
		return "prophoto"
	case colour.DisplayP3:
		return "display-p3"
	}
	return s.Name
}

// notation formats c the way the parse package reads it back.
func notation(c colour.Colour) string {
	space, ref := describe(c)
	v, ok := c.(interface{ Components() [3]float64 })
	if !ok {
		return space
	}
	comp := v.Components()
	if space == "rgb" {
		for i := range comp {
			comp[i] *= 255
		}
	}
	return fmt.Sprintf("%s(%s %s %s / %s)", space, num(comp[0]), num(comp[1]), num(comp[2]), ref)
}

// num prints v with at most four decimals and no trailing zeros.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 4, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// hexOf returns the sRGB hex triplet of c, clamped into gamut.
func hexOf(c colour.Colour) (string, colorful.Color, error) {
	rgb, err := colour.ConvertLike(c, colour.RGB{Space: colour.SRGB})
	if err != nil {
		return "", colorful.Color{}, err
	}
	cf := colorful.Color{R: rgb.R, G: rgb.G, B: rgb.B}.Clamped()
	return cf.Hex(), cf, nil
}

// renderColours writes rows in the requested format.
func renderColours(w io.Writer, rows []colourRow, format string, o outputOptions) error {
	switch format {
	case "json":
		return writeJSON(w, rows)
	case "hex":
		for _, r := range rows {
			line := r.Hex
			if o.swatches {
				line = swatch(r.swatch, 4) + " " + line
			}
			fmt.Fprintln(w, line)
		}
		return nil
	}

	if o.quiet {
		for _, r := range rows {
			fmt.Fprintln(w, r.Notation)
		}
		return nil
	}

	headers := []string{"INPUT", "VALUE", "HEX", "GAMUT"}
	if o.swatches {
		headers = append(headers, "")
	}
	table := NewTable(headers)
	for _, r := range rows {
		row := []string{r.Label, r.Notation, r.Hex, yesNo(r.InGamut)}
		if o.swatches {
			row = append(row, labelledSwatch(r.swatch, r.Hex, 9))
		}
		table.AddRow(row)
	}
	_, err := io.WriteString(w, table.Render())
	return err
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to convert to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

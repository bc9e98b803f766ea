package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/jmylchreest/chromatic/pkg/colour"
)

// ANSI escape codes for 24-bit terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// outputOptions controls decoration of command output.
type outputOptions struct {
	swatches bool
	quiet    bool
}

// isTerminal reports whether w is a terminal. Anything that is not an *os.File is not.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func ansi(prefix string, c colorful.Color) string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("%s%d;%d;%d%s", prefix, r, g, b, ansiSuffix)
}

// swatch returns a solid block of width cells in colour c.
func swatch(c colorful.Color, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return ansi(ansiBgPrefix, c) + strings.Repeat(" ", width) + ansiReset
}

// textSwatch draws text in fg on a bg block, centring or truncating it to width.
func textSwatch(fg, bg colorful.Color, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}
	return ansi(ansiBgPrefix, bg) + ansi(ansiFgPrefix, fg) + displayText + ansiReset
}

// labelledSwatch draws text on bg in whichever of black or white contrasts more.
func labelledSwatch(bg colorful.Color, text string, width int) string {
	return textSwatch(readableOn(bg), bg, text, width)
}

func readableOn(bg colorful.Color) colorful.Color {
	c := colour.NewRGB(bg.R, bg.G, bg.B)
	black, errB := colour.ContrastRatio(c, colour.NewRGB(0, 0, 0))
	white, errW := colour.ContrastRatio(c, colour.NewRGB(1, 1, 1))
	if errB == nil && errW == nil && black > white {
		return colorful.Color{}
	}
	return colorful.Color{R: 1, G: 1, B: 1}
}

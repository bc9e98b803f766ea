package cli

import (
	"strings"
	"unicode/utf8"
)

// Table lays out rows in aligned columns. Cell widths ignore ANSI escape sequences, so
// swatches can sit in any column.
type Table struct {
	headers    []string
	rows       [][]string
	padding    int
	rightAlign map[int]bool
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:    headers,
		rows:       make([][]string, 0),
		padding:    2, // 2 spaces between columns
		rightAlign: make(map[int]bool),
	}
}

// AlignRight right-aligns a column; used for numbers.
func (t *Table) AlignRight(colIndex int) {
	t.rightAlign[colIndex] = true
}

// AddRow adds a row to the table, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	if len(row) == len(t.headers) {
		t.rows = append(t.rows, row)
		return
	}
	newRow := make([]string, len(t.headers))
	copy(newRow, row)
	t.rows = append(t.rows, newRow)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = visibleLen(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			colWidths[i] = max(colWidths[i], visibleLen(cell))
		}
	}

	var result strings.Builder
	t.writeLine(&result, t.headers, colWidths)

	sepParts := make([]string, len(t.headers))
	for i, w := range colWidths {
		sepParts[i] = strings.Repeat("-", w)
	}
	t.writeLine(&result, sepParts, colWidths)

	for _, row := range t.rows {
		t.writeLine(&result, row, colWidths)
	}
	return result.String()
}

func (t *Table) writeLine(b *strings.Builder, cells []string, widths []int) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		if t.rightAlign[i] {
			parts[i] = padLeft(cell, widths[i])
		} else {
			parts[i] = padRight(cell, widths[i])
		}
	}
	b.WriteString(strings.TrimRight(strings.Join(parts, strings.Repeat(" ", t.padding)), " "))
	b.WriteString("\n")
}

// padRight pads a string with spaces on the right to reach the desired visible width.
func padRight(s string, width int) string {
	if n := visibleLen(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// padLeft pads a string with spaces on the left to reach the desired visible width.
func padLeft(s string, width int) string {
	if n := visibleLen(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

// visibleLen counts the runes of s that a terminal draws, skipping CSI escape sequences.
func visibleLen(s string) int {
	n := 0
	for i := 0; i < len(s); {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			i++
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		n++
	}
	return n
}

package cli

import (
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestNewTable(t *testing.T) {
	table := NewTable([]string{"INPUT", "VALUE", "HEX"})

	if table == nil {
		t.Fatal("NewTable returned nil")
	}
	if len(table.headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.headers))
	}
	if table.padding != 2 {
		t.Errorf("Expected padding of 2, got %d", table.padding)
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"INPUT", "HEX"})

	table.AddRow([]string{"red", "#ff0000"})
	if len(table.rows) != 1 {
		t.Errorf("Expected 1 row, got %d", len(table.rows))
	}

	// Short rows are padded.
	table.AddRow([]string{"blue"})
	if len(table.rows[1]) != 2 || table.rows[1][1] != "" {
		t.Errorf("Expected row padded to 2 columns, got %q", table.rows[1])
	}

	// Long rows are truncated.
	table.AddRow([]string{"green", "#00ff00", "extra"})
	if len(table.rows[2]) != 2 {
		t.Errorf("Expected row truncated to 2 columns, got %d", len(table.rows[2]))
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"INPUT", "VALUE"})
	table.AddRow([]string{"red", "lab(53.2408 80.0925 67.2032 / D65)"})
	table.AddRow([]string{"white", "lab(100 0 0 / D65)"})

	output := table.Render()
	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d:\n%s", len(lines), output)
	}
	if !strings.HasPrefix(lines[1], "-----") {
		t.Errorf("Expected separator line with dashes, got: %q", lines[1])
	}

	// Every value starts in the same column.
	col := strings.Index(lines[0], "VALUE")
	for _, line := range lines[2:] {
		if strings.Index(line, "lab(") != col {
			t.Errorf("value not aligned at column %d: %q", col, line)
		}
	}
}

func TestTableRenderEmpty(t *testing.T) {
	table := NewTable(nil)
	if output := table.Render(); output != "" {
		t.Errorf("Expected empty string for empty table, got: %q", output)
	}
}

func TestTableRenderNoRows(t *testing.T) {
	output := NewTable([]string{"NAME", "X"}).Render()
	if !strings.Contains(output, "NAME") || !strings.Contains(output, "----") {
		t.Errorf("Output should contain headers and separator even without rows, got %q", output)
	}
}

func TestTableAlignRight(t *testing.T) {
	table := NewTable([]string{"NAME", "Y"})
	table.AlignRight(1)
	table.AddRow([]string{"D65", "1"})
	table.AddRow([]string{"A", "0.9999"})

	lines := strings.Split(table.Render(), "\n")
	if !strings.HasSuffix(lines[2], "     1") {
		t.Errorf("Expected right-aligned number, got %q", lines[2])
	}
	if !strings.HasSuffix(lines[3], "0.9999") {
		t.Errorf("Expected right-aligned number, got %q", lines[3])
	}
}

func TestTableIgnoresEscapeWidth(t *testing.T) {
	table := NewTable([]string{"SWATCH", "HEX"})
	table.AddRow([]string{swatch(colorful.Color{R: 1}, 6), "#ff0000"})

	lines := strings.Split(table.Render(), "\n")
	if got, want := strings.Index(lines[0], "HEX"), 8; got != want {
		t.Fatalf("HEX header at %d, want %d", got, want)
	}
	if !strings.HasSuffix(lines[2], ansiReset+"  #ff0000") {
		t.Errorf("swatch column should be padded by visible width, got %q", lines[2])
	}
}

func TestVisibleLen(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"#ff0000", 7},
		{"→ ★", 3},
		{"\033[48;2;255;0;0m      \033[0m", 6},
		{"\033[48;2;0;0;0m\033[38;2;255;255;255m ab \033[0m", 4},
	}

	for _, tt := range tests {
		if got := visibleLen(tt.input); got != tt.want {
			t.Errorf("visibleLen(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"test", 10, "test      "},
		{"hello", 5, "hello"},
		{"world", 3, "world"}, // Width less than string length
		{"", 5, "     "},
		{"→", 3, "→  "},
	}

	for _, tt := range tests {
		result := padRight(tt.input, tt.width)
		if result != tt.expected {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, result, tt.expected)
		}
	}
}

func TestPadLeft(t *testing.T) {
	if got := padLeft("21", 5); got != "   21" {
		t.Errorf("padLeft() = %q, want %q", got, "   21")
	}
	if got := padLeft("123456", 3); got != "123456" {
		t.Errorf("padLeft() = %q, want unchanged", got)
	}
}

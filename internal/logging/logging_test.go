package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger := New("chromatic", true, &buf)
	logger.Debug("converted", "from", "rgb", "to", "lab")

	out := buf.String()
	for _, want := range []string{"[DEBUG]", "chromatic", "converted", "from=rgb", "to=lab"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestNewQuiet(t *testing.T) {
	var buf bytes.Buffer
	logger := New("chromatic", false, &buf)
	logger.Error("should not appear")

	if buf.Len() != 0 {
		t.Errorf("quiet logger wrote %q", buf.String())
	}
	if logger.IsDebug() {
		t.Error("quiet logger should not be at debug level")
	}
}

// Package logging builds the hclog loggers used by the chromatic CLI.
package logging

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// New returns a logger that writes debug output to w when verbose is set and discards
// everything otherwise.
func New(name string, verbose bool, w io.Writer) hclog.Logger {
	if !verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   name,
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:        name,
		Output:      w,
		Level:       hclog.Debug,
		DisableTime: true,
	})
}

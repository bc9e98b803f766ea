package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/chromatic/pkg/colour"
)

func newColormapCmd(root *rootOptions) *cobra.Command {
	var (
		count  int
		space  string
		format string
	)

	cmd := &cobra.Command{
		Use:   "colormap <colour[@position]>...",
		Short: "Sample a gradient through colour stops",
		Long: `Sample evenly spaced colours along a gradient through the given stops.

Stops are spread evenly unless every stop carries a position, written as colour@position.
Positions must not decrease. The first and last samples are the end stops exactly.

Examples:
  chromatic colormap -n 9 navy white darkred
  chromatic colormap --space lch -n 5 'black@0' 'purple@0.3' 'yellow@1'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, positions, err := splitStops(args)
			if err != nil {
				return err
			}
			stops, err := root.parseArgs(inputs)
			if err != nil {
				return err
			}
			for i := 1; i < len(stops); i++ {
				if _, err := colour.WorkingWhite(stops[i-1], stops[i], root.colourOptions()...); err != nil {
					return fmt.Errorf("failed to build colormap: %w", err)
				}
			}

			ops, err := spaceByName(space, root.config)
			if err != nil {
				return err
			}
			out, err := ops.colormap(stops, positions, count, root.colourOptions()...)
			if err != nil {
				return fmt.Errorf("failed to build colormap: %w", err)
			}
			root.logger.Debug("sampled colormap", "space", ops.name, "stops", len(stops), "samples", len(out))

			rows := make([]colourRow, 0, len(out))
			for i, c := range out {
				row, err := newColourRow(strconv.Itoa(i), c, root.config.RGBSpace)
				if err != nil {
					return err
				}
				rows = append(rows, row)
			}
			w := cmd.OutOrStdout()
			return renderColours(w, rows, format, root.output(w))
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 8, "number of colours to sample")
	cmd.Flags().VarP(newChoiceValue(&space, "lab", spaceNames...), "space", "s", "space to interpolate in")
	cmd.Flags().VarP(newChoiceValue(&format, "table", formats...), "format", "f", "output format (table, hex, json)")

	return cmd
}

// splitStops separates optional @position suffixes. Positions are returned only when every
// stop has one.
func splitStops(args []string) ([]string, []float64, error) {
	inputs := make([]string, len(args))
	positions := make([]float64, 0, len(args))
	for i, arg := range args {
		at := strings.LastIndex(arg, "@")
		if at < 0 {
			inputs[i] = arg
			continue
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(arg[at+1:]), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid stop position in %q: %w", arg, err)
		}
		inputs[i] = arg[:at]
		positions = append(positions, p)
	}

	switch len(positions) {
	case 0:
		return inputs, nil, nil
	case len(args):
		return inputs, positions, nil
	}
	return nil, nil, fmt.Errorf("either every stop or none must have a position, got %d of %d", len(positions), len(args))
}

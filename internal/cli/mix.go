package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/chromatic/pkg/colour"
)

func newMixCmd(root *rootOptions) *cobra.Command {
	var (
		weight float64
		space  string
		format string
	)

	cmd := &cobra.Command{
		Use:   "mix <colour> <colour>",
		Short: "Blend two colours",
		Long: `Blend the first colour towards the second.

A weight of 0 returns the first colour and 1 the second. Mixing happens in --space
(CIELAB by default); polar spaces take the shorter way round the hue circle.

Examples:
  chromatic mix red blue
  chromatic mix --weight 0.25 --space lch '#ff8000' teal`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colours, err := root.parseArgs(args)
			if err != nil {
				return err
			}
			if _, err := colour.WorkingWhite(colours[0], colours[1], root.colourOptions()...); err != nil {
				return fmt.Errorf("failed to mix: %w", err)
			}

			ops, err := spaceByName(space, root.config)
			if err != nil {
				return err
			}
			out, err := ops.mix(colours[0], colours[1], weight, root.colourOptions()...)
			if err != nil {
				return fmt.Errorf("failed to mix: %w", err)
			}
			root.logger.Debug("mixed", "space", ops.name, "weight", weight, "value", notation(out))

			row, err := newColourRow(fmt.Sprintf("%s + %s", args[0], args[1]), out, root.config.RGBSpace)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			return renderColours(w, []colourRow{row}, format, root.output(w))
		},
	}

	cmd.Flags().Float64VarP(&weight, "weight", "w", 0.5, "weight of the second colour, between 0 and 1")
	cmd.Flags().VarP(newChoiceValue(&space, "lab", spaceNames...), "space", "s", "space to mix in")
	cmd.Flags().VarP(newChoiceValue(&format, "table", formats...), "format", "f", "output format (table, hex, json)")

	return cmd
}

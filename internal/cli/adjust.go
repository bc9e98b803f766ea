package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newAdjustCmd(root *rootOptions) *cobra.Command {
	var (
		lighten, darken      float64
		saturate, desaturate float64
		hue                  float64
		grayscale            bool
		format               string
	)

	cmd := &cobra.Command{
		Use:   "adjust <colour>...",
		Short: "Change lightness, chroma or hue of colours",
		Long: `Adjust colours in CIE LCh and report them in the space they were given in.

Lightness and chroma amounts are in CIELAB units; lightness is kept within 0-100 and
chroma never drops below 0. Adjustments apply in the order lightness, chroma, hue,
grayscale.

Examples:
  chromatic adjust --lighten 10 '#336699'
  chromatic adjust --desaturate 20 --hue 200 'lch(60 50 30)'
  chromatic adjust --grayscale red green blue`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := adjustments{
				lighten:   lighten - darken,
				saturate:  saturate - desaturate,
				grayscale: grayscale,
			}
			if cmd.Flags().Changed("hue") {
				a.hue = &hue
			}
			if a.empty() {
				return errors.New("no adjustment given (use --lighten, --darken, --saturate, --desaturate, --hue or --grayscale)")
			}

			colours, err := root.parseArgs(args)
			if err != nil {
				return err
			}
			rows := make([]colourRow, 0, len(colours))
			for i, c := range colours {
				ops := spaceOf(c)
				out, err := ops.adjust(c, a)
				if err != nil {
					return fmt.Errorf("failed to adjust %s: %w", args[i], err)
				}
				root.logger.Debug("adjusted", "input", args[i], "value", notation(out))

				row, err := newColourRow(args[i], out, root.config.RGBSpace)
				if err != nil {
					return err
				}
				rows = append(rows, row)
			}
			w := cmd.OutOrStdout()
			return renderColours(w, rows, format, root.output(w))
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&lighten, "lighten", 0, "raise L* by this amount")
	flags.Float64Var(&darken, "darken", 0, "lower L* by this amount")
	flags.Float64Var(&saturate, "saturate", 0, "raise chroma by this amount")
	flags.Float64Var(&desaturate, "desaturate", 0, "lower chroma by this amount")
	flags.Float64Var(&hue, "hue", 0, "set the hue angle in degrees")
	flags.BoolVar(&grayscale, "grayscale", false, "remove all chroma")
	flags.VarP(newChoiceValue(&format, "table", formats...), "format", "f", "output format (table, hex, json)")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConvertCmd(root *rootOptions) *cobra.Command {
	var (
		to     string
		format string
		clip   bool
	)

	cmd := &cobra.Command{
		Use:   "convert <colour>...",
		Short: "Convert colours between colour spaces",
		Long: `Convert one or more colours into another colour space.

Without --to every space is listed. Illuminant-relative results (xyz, lab, luv, lch,
lchuv) use the --illuminant white point; device results (rgb, lrgb, hsv, hsl) use
--rgb-space. Values outside the RGB gamut are reported and can be clipped with --clip,
which reduces chroma at constant lightness and hue.

Examples:
  # Show a colour in every space
  chromatic convert '#ff8000'

  # CIELAB relative to D50
  chromatic convert --to lab --illuminant D50 darkorange

  # Bring a wide-gamut colour into sRGB
  chromatic convert --to rgb --clip 'lch(70 120 140)'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, root, args, to, format, clip)
		},
	}

	cmd.Flags().VarP(newChoiceValue(&to, "all", append([]string{"all"}, spaceNames...)...), "to", "t", "target space (all, rgb, lrgb, hsv, hsl, xyz, lab, luv, lch, lchuv)")
	cmd.Flags().VarP(newChoiceValue(&format, "table", formats...), "format", "f", "output format (table, hex, json)")
	cmd.Flags().BoolVar(&clip, "clip", false, "clip results into the gamut of --rgb-space")

	return cmd
}

func runConvert(cmd *cobra.Command, root *rootOptions, args []string, to, format string, clip bool) error {
	colours, err := root.parseArgs(args)
	if err != nil {
		return err
	}

	targets := []string{to}
	if to == "all" {
		targets = spaceNames
	}

	var rows []colourRow
	for i, c := range colours {
		for _, name := range targets {
			ops, err := spaceByName(name, root.config)
			if err != nil {
				return err
			}
			out, err := ops.convert(c)
			if err != nil {
				return fmt.Errorf("failed to convert %s to %s: %w", args[i], name, err)
			}
			if clip {
				if out, err = ops.clip(out, root.config.RGBSpace); err != nil {
					return fmt.Errorf("failed to clip %s: %w", args[i], err)
				}
			}
			root.logger.Debug("converted", "input", args[i], "space", ops.name, "value", notation(out))

			row, err := newColourRow(args[i], out, root.config.RGBSpace)
			if err != nil {
				return err
			}
			rows = append(rows, row)
		}
	}

	w := cmd.OutOrStdout()
	return renderColours(w, rows, format, root.output(w))
}

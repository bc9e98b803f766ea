package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/chromatic/pkg/colour"
)

// WCAG 2.0 minimum contrast ratios for normal text.
const (
	wcagAA  = 4.5
	wcagAAA = 7.0
)

type contrastResult struct {
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	Ratio      float64 `json:"ratio"`
	AA         bool    `json:"aa"`
	AAA        bool    `json:"aaa"`
}

func newContrastCmd(root *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Compute the WCAG contrast ratio of two colours",
		Long: `Compute the WCAG 2.0 contrast ratio between a text colour and its background,
and whether it meets the AA (4.5:1) and AAA (7:1) levels for normal text.

Example:
  chromatic contrast '#767676' white`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colours, err := root.parseArgs(args)
			if err != nil {
				return err
			}
			ratio, err := colour.ContrastRatio(colours[0], colours[1])
			if err != nil {
				return fmt.Errorf("failed to compute contrast: %w", err)
			}
			res := contrastResult{
				Foreground: args[0],
				Background: args[1],
				Ratio:      ratio,
				AA:         ratio >= wcagAA,
				AAA:        ratio >= wcagAAA,
			}
			root.logger.Debug("contrast", "ratio", ratio)

			w := cmd.OutOrStdout()
			switch {
			case format == "json":
				return writeJSON(w, res)
			case root.quiet:
				fmt.Fprintln(w, num(ratio))
				return nil
			}

			out := root.output(w)
			headers := []string{"RATIO", "AA", "AAA"}
			if out.swatches {
				headers = append(headers, "")
			}
			table := NewTable(headers)
			table.AlignRight(0)
			row := []string{num(ratio) + ":1", yesNo(res.AA), yesNo(res.AAA)}
			if out.swatches {
				_, fg, err := hexOf(colours[0])
				if err != nil {
					return err
				}
				_, bg, err := hexOf(colours[1])
				if err != nil {
					return err
				}
				row = append(row, textSwatch(fg, bg, "Sample", 10))
			}
			table.AddRow(row)
			fmt.Fprint(w, table.Render())
			return nil
		},
	}

	cmd.Flags().VarP(newChoiceValue(&format, "table", "table", "json"), "format", "f", "output format (table, json)")
	return cmd
}

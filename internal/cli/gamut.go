package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/chromatic/pkg/colour"
)

type gamutResult struct {
	Input    string `json:"input"`
	RGBSpace string `json:"rgb_space"`
	InGamut  bool   `json:"in_gamut"`
	Visible  bool   `json:"visible"`
	Clipped  string `json:"clipped,omitempty"`
	Closest  string `json:"closest_visible,omitempty"`
	Hex      string `json:"hex,omitempty"`
}

func newGamutCmd(root *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "gamut <colour>...",
		Short: "Check colours against an RGB gamut and the visible spectrum",
		Long: `Report whether each colour can be shown in --rgb-space and whether it is a colour
humans can see at all. Out-of-gamut colours are clipped by reducing chroma at constant
lightness and hue; invisible colours are moved to the closest visible colour the same way.
Results stay in the space each colour was given in.

Examples:
  chromatic gamut 'lch(60 140 30)'
  chromatic gamut --rgb-space display-p3 'rgb(255 0 0 / prophoto)'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colours, err := root.parseArgs(args)
			if err != nil {
				return err
			}

			results := make([]gamutResult, 0, len(colours))
			for i, c := range colours {
				res, err := checkGamut(root, c)
				if err != nil {
					return fmt.Errorf("failed to check %s: %w", args[i], err)
				}
				res.Input = args[i]
				results = append(results, res)
			}
			return renderGamut(cmd, root, results, format)
		},
	}

	cmd.Flags().VarP(newChoiceValue(&format, "table", "table", "json"), "format", "f", "output format (table, json)")
	return cmd
}

func checkGamut(root *rootOptions, c colour.Colour) (gamutResult, error) {
	space := root.config.RGBSpace
	ops := spaceOf(c)
	res := gamutResult{
		RGBSpace: space.Name,
		InGamut:  colour.InGamutOf(c, space),
		Visible:  colour.IsVisible(c),
	}

	if !res.InGamut {
		clipped, err := ops.clip(c, space)
		switch {
		case errors.Is(err, colour.ErrGamutUnrepresentable):
			res.Clipped = "unrepresentable"
		case err != nil:
			return res, err
		default:
			res.Clipped = notation(clipped)
			if res.Hex, _, err = hexOf(clipped); err != nil {
				return res, err
			}
		}
	}
	if !res.Visible {
		closest, err := ops.visible(c)
		switch {
		case errors.Is(err, colour.ErrGamutUnrepresentable):
			res.Closest = "unrepresentable"
		case err != nil:
			return res, err
		default:
			res.Closest = notation(closest)
		}
	}

	root.logger.Debug("checked gamut", "value", notation(c), "in_gamut", res.InGamut, "visible", res.Visible)
	return res, nil
}

func renderGamut(cmd *cobra.Command, root *rootOptions, results []gamutResult, format string) error {
	w := cmd.OutOrStdout()
	if format == "json" {
		return writeJSON(w, results)
	}

	table := NewTable([]string{"INPUT", "IN GAMUT", "VISIBLE", "CLIPPED", "CLOSEST VISIBLE"})
	for _, r := range results {
		table.AddRow([]string{r.Input, yesNo(r.InGamut), yesNo(r.Visible), orDash(r.Clipped), orDash(r.Closest)})
	}
	if !root.quiet {
		fmt.Fprintf(w, "Gamut: %s\n\n", results[0].RGBSpace)
	}
	fmt.Fprint(w, table.Render())
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

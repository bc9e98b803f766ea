package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/chromatic/internal/config"
	"github.com/jmylchreest/chromatic/pkg/colour"
)

type distanceResult struct {
	A          string  `json:"a"`
	B          string  `json:"b"`
	Metric     string  `json:"metric"`
	Space      string  `json:"space,omitempty"`
	Distance   float64 `json:"distance"`
	Noticeable *bool   `json:"noticeable,omitempty"`
}

func newDistanceCmd(root *rootOptions) *cobra.Command {
	var (
		space  string
		format string
	)

	cmd := &cobra.Command{
		Use:   "distance <colour> <colour>",
		Short: "Measure the perceptual difference between two colours",
		Long: `Measure the difference between two colours.

The default metric is CIEDE2000, where differences below 1.0 are generally not
noticeable. The euclidean metric measures straight-line distance in --space; hue
angles wrap, so lch(50 30 359) and lch(50 30 1) are close.

Comparing two illuminant-relative colours with different white points fails unless
--adapt is given.

Examples:
  chromatic distance '#ff0000' '#fe0000'
  chromatic distance --metric euclidean --space luv red orange
  chromatic distance --adapt 'lab(50 10 10 / D50)' 'lab(50 10 10 / D65)'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colours, err := root.parseArgs(args)
			if err != nil {
				return err
			}
			res, err := measure(root, colours[0], colours[1], space)
			if err != nil {
				return err
			}
			res.A, res.B = args[0], args[1]
			return renderDistance(cmd, root, res, format)
		},
	}

	cmd.Flags().VarP(&metricValue{metric: &root.metric}, "metric", "m", "distance metric (ciede2000, euclidean)")
	cmd.Flags().VarP(newChoiceValue(&space, "lab", spaceNames...), "space", "s", "space for the euclidean metric")
	cmd.Flags().VarP(newChoiceValue(&format, "table", "table", "json"), "format", "f", "output format (table, json)")

	return cmd
}

func measure(root *rootOptions, a, b colour.Colour, space string) (distanceResult, error) {
	res := distanceResult{Metric: string(root.config.Metric)}
	opts := root.colourOptions()

	switch root.config.Metric {
	case config.MetricEuclidean:
		ops, err := spaceByName(space, root.config)
		if err != nil {
			return res, err
		}
		d, err := ops.distance(a, b, opts...)
		if err != nil {
			return res, fmt.Errorf("failed to measure distance: %w", err)
		}
		res.Space, res.Distance = ops.name, d
	default:
		d, err := colour.CIEDE2000(a, b, opts...)
		if err != nil {
			return res, fmt.Errorf("failed to measure distance: %w", err)
		}
		noticeable := d >= colour.JustNoticeableDifference
		res.Distance, res.Noticeable = d, &noticeable
	}

	root.logger.Debug("measured", "metric", res.Metric, "space", res.Space, "distance", res.Distance)
	return res, nil
}

func renderDistance(cmd *cobra.Command, root *rootOptions, res distanceResult, format string) error {
	w := cmd.OutOrStdout()
	if format == "json" {
		return writeJSON(w, res)
	}
	if root.quiet {
		fmt.Fprintln(w, num(res.Distance))
		return nil
	}

	table := NewTable([]string{"METRIC", "SPACE", "DISTANCE", "NOTICEABLE"})
	table.AlignRight(2)
	space, noticeable := res.Space, "-"
	if space == "" {
		space = "lab"
	}
	if res.Noticeable != nil {
		noticeable = "no"
		if *res.Noticeable {
			noticeable = "yes"
		}
	}
	table.AddRow([]string{res.Metric, space, num(res.Distance), noticeable})
	fmt.Fprint(w, table.Render())
	return nil
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/chromatic/pkg/colour"
)

type illuminantInfo struct {
	Name string  `json:"name"`
	X    float64 `json:"X"`
	Y    float64 `json:"Y"`
	Z    float64 `json:"Z"`
	CIEx float64 `json:"x"`
	CIEy float64 `json:"y"`
}

func newIlluminantsCmd(root *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "illuminants",
		Short: "List the known white points",
		Long: `List the registered CIE standard illuminants (2° observer) with their tristimulus
values normalised to Y = 1 and their xy chromaticity. Any of these names can be used
with --illuminant, CHROMATIC_ILLUMINANT or as a qualifier such as lab(50 0 0 / D50).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var infos []illuminantInfo
			for _, ill := range colour.Illuminants() {
				x, y := ill.Chromaticity()
				infos = append(infos, illuminantInfo{Name: ill.Name, X: ill.X, Y: ill.Y, Z: ill.Z, CIEx: x, CIEy: y})
			}

			w := cmd.OutOrStdout()
			if format == "json" {
				return writeJSON(w, infos)
			}

			table := NewTable([]string{"NAME", "X", "Y", "Z", "x", "y", ""})
			for col := 1; col <= 5; col++ {
				table.AlignRight(col)
			}
			for _, info := range infos {
				marker := ""
				if root.config.Illuminant.Equal(colour.MustIlluminant(info.Name)) {
					marker = "(default)"
				}
				table.AddRow([]string{
					info.Name,
					strconv.FormatFloat(info.X, 'f', 5, 64),
					strconv.FormatFloat(info.Y, 'f', 5, 64),
					strconv.FormatFloat(info.Z, 'f', 5, 64),
					strconv.FormatFloat(info.CIEx, 'f', 5, 64),
					strconv.FormatFloat(info.CIEy, 'f', 5, 64),
					marker,
				})
			}
			fmt.Fprint(w, table.Render())
			return nil
		},
	}

	cmd.Flags().VarP(newChoiceValue(&format, "table", "table", "json"), "format", "f", "output format (table, json)")
	return cmd
}

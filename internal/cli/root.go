// Package cli provides the command-line interface for chromatic.
package cli

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/chromatic/internal/config"
	"github.com/jmylchreest/chromatic/internal/logging"
	"github.com/jmylchreest/chromatic/internal/parse"
	"github.com/jmylchreest/chromatic/internal/version"
	"github.com/jmylchreest/chromatic/pkg/colour"
)

// rootOptions carries the global flags and the state resolved from them before any
// subcommand runs.
type rootOptions struct {
	verbose bool
	quiet   bool
	adapt   bool
	preview string

	// Flag values; applied over the environment only when set.
	illuminant colour.Illuminant
	rgbSpace   *colour.RGBSpace
	metric     config.Metric

	config config.Config
	parser parse.Parser
	logger hclog.Logger
}

// NewRootCmd builds the chromatic command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "chromatic",
		Short: "Convert, compare and mix colours",
		Long: `Chromatic converts colours between RGB, CIE XYZ, CIELAB, CIELUV, LCh, HSV and HSL,
measures perceptual differences with CIEDE2000, mixes colours and builds colormaps,
and checks colours against device gamuts and the limits of human vision.

Colours are given as hex triplets (#ff8000), CSS names (darkorange) or functional
notation such as lab(53.2 80.1 67.2 / D50) and rgb(255 128 0 / display-p3).

Defaults can be set with CHROMATIC_ILLUMINANT, CHROMATIC_RGB_SPACE and CHROMATIC_METRIC.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "print bare values without headers or swatches")
	flags.VarP(&illuminantValue{ill: &opts.illuminant}, "illuminant", "i", "white point for xyz, lab, luv and lch values (default D65)")
	flags.Var(&rgbSpaceValue{space: &opts.rgbSpace}, "rgb-space", "RGB space for rgb, hsv and hsl values (default sRGB)")
	flags.BoolVar(&opts.adapt, "adapt", false, "adapt colours with different white points instead of failing")
	flags.Var(newChoiceValue(&opts.preview, "auto", "auto", "always", "never"), "preview", "show colour swatches (auto, always, never)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConvertCmd(opts))
	rootCmd.AddCommand(newDistanceCmd(opts))
	rootCmd.AddCommand(newMixCmd(opts))
	rootCmd.AddCommand(newColormapCmd(opts))
	rootCmd.AddCommand(newGamutCmd(opts))
	rootCmd.AddCommand(newAdjustCmd(opts))
	rootCmd.AddCommand(newContrastCmd(opts))
	rootCmd.AddCommand(newIlluminantsCmd(opts))

	return rootCmd
}

// resolve layers flags over the environment configuration.
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	o.logger = logging.New("chromatic", o.verbose && !o.quiet, cmd.ErrOrStderr())

	cfg, err := config.NewBuilder().WithEnvConfig().Build()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("illuminant") {
		cfg.Illuminant = o.illuminant
	}
	if flags.Changed("rgb-space") {
		cfg.RGBSpace = o.rgbSpace
	}
	if f := flags.Lookup("metric"); f != nil && f.Changed {
		cfg.Metric = o.metric
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	o.config = cfg
	o.parser = parse.Parser{White: cfg.Illuminant, RGBSpace: cfg.RGBSpace}
	o.logger.Debug("configuration resolved",
		"illuminant", cfg.Illuminant.Name,
		"rgb_space", cfg.RGBSpace.Name,
		"metric", cfg.Metric)
	return nil
}

// colourOptions returns the library options implied by the global flags.
func (o *rootOptions) colourOptions() []colour.Option {
	opts := []colour.Option{colour.WithWhitePoint(o.config.Illuminant)}
	if o.adapt {
		opts = append(opts, colour.WithAdaptation())
	}
	return opts
}

// output decides how results written to w are decorated.
func (o *rootOptions) output(w io.Writer) outputOptions {
	out := outputOptions{quiet: o.quiet}
	switch o.preview {
	case "always":
		out.swatches = !o.quiet
	case "auto":
		out.swatches = !o.quiet && isTerminal(w)
	}
	return out
}

// parseArgs parses every colour argument with the configured defaults.
func (o *rootOptions) parseArgs(args []string) ([]colour.Colour, error) {
	colours, err := o.parser.All(args)
	if err != nil {
		return nil, fmt.Errorf("failed to parse colour: %w", err)
	}
	for i, c := range colours {
		o.logger.Debug("parsed colour", "input", args[i], "value", notation(c))
	}
	return colours, nil
}

func newVersionCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "json" {
				return writeJSON(cmd.OutOrStdout(), version.GetInfo())
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return nil
		},
	}
	cmd.Flags().VarP(newChoiceValue(&format, "text", "text", "json"), "format", "f", "output format (text, json)")
	return cmd
}

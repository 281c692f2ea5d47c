package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/soulscan/internal/export"
	"github.com/danielpatrickdp/soulscan/internal/palette"
	"github.com/danielpatrickdp/soulscan/internal/physics"
)

// #region palette

var (
	paletteSeed   int64
	paletteFormat string
)

var paletteCmd = &cobra.Command{
	Use:   "palette [archetype]",
	Short: "Generate a palette for an archetype",
	Long: `Generates a light and dark palette from the named archetype (default:
the configured archetype). The same archetype and seed always yield the same
palette.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := cfg.Archetype
		if len(args) == 1 {
			name = args[0]
		}
		seed := cfg.Seed
		if cmd.Flags().Changed("seed") {
			seed = paletteSeed
		}
		format, err := export.ParseFormat(paletteFormat)
		if err != nil {
			return err
		}
		p, err := palette.GenerateNamed(name, palette.Options{Seed: seed})
		if err != nil {
			return err
		}
		out, err := export.Palette(p, format)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

// #endregion palette

// #region spring

var (
	springStiffness float64
	springDamping   float64
	springMass      float64
	springFormat    string
)

var springCmd = &cobra.Command{
	Use:   "spring [preset]",
	Short: "Export a spring as CSS or framer config",
	Long: `Exports a spring from a preset (snappy, bouncy, gentle, wobbly) or from
explicit --stiffness/--damping/--mass. Flags override preset values.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var sc physics.SpringConfig
		if len(args) == 1 {
			p, err := physics.Preset(args[0])
			if err != nil {
				return fmt.Errorf("%w (have %v)", err, physics.PresetNames())
			}
			sc = p
		}
		if cmd.Flags().Changed("stiffness") || len(args) == 0 {
			sc.Stiffness = springStiffness
		}
		if cmd.Flags().Changed("damping") || len(args) == 0 {
			sc.Damping = springDamping
		}
		if cmd.Flags().Changed("mass") || len(args) == 0 {
			sc.Mass = springMass
		}
		format, err := export.ParseFormat(springFormat)
		if err != nil {
			return err
		}
		out, err := export.Spring(sc, format)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

// #endregion spring

// #region contrast

var contrastCmd = &cobra.Command{
	Use:   "contrast foreground background",
	Short: "Check the WCAG contrast of two colors",
	Long:  `Prints the contrast ratio and tier for normal text. Exits 1 below AA.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := palette.CheckContrast(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s on %s  %.2f:1  %s\n",
			res.Foreground.Hex(), res.Background.Hex(), res.Ratio,
			verdictStyle(tierVerdict(res.Tier)).Render(string(res.Tier)))
		if res.Tier == palette.TierFail {
			return errGate
		}
		return nil
	},
}

// tierVerdict maps a tier onto the verdict palette for coloring.
func tierVerdict(t palette.Tier) string {
	switch t {
	case palette.TierAAA:
		return "Elite"
	case palette.TierAA:
		return "Pass"
	}
	return "Fail"
}

// #endregion contrast

// #region archetypes

var archetypesCmd = &cobra.Command{
	Use:   "archetypes",
	Short: "List palette archetypes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		for _, a := range palette.Archetypes() {
			fmt.Fprintf(w, "%s %s\n", categoryStyle.Render(a.Name), mutedStyle.Render(a.Psychology))
		}
		return nil
	},
}

// #endregion archetypes

func init() {
	paletteCmd.Flags().Int64Var(&paletteSeed, "seed", 0, "Generation seed (default: configured seed)")
	paletteCmd.Flags().StringVarP(&paletteFormat, "format", "f", "css", "Output format: css or config")

	springCmd.Flags().Float64Var(&springStiffness, "stiffness", 170, "Spring stiffness")
	springCmd.Flags().Float64Var(&springDamping, "damping", 26, "Spring damping")
	springCmd.Flags().Float64Var(&springMass, "mass", 1, "Spring mass")
	springCmd.Flags().StringVarP(&springFormat, "format", "f", "css", "Output format: css or config")
}

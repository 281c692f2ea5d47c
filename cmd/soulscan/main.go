package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danielpatrickdp/soulscan/internal/config"
	"github.com/danielpatrickdp/soulscan/internal/logging"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

// errGate marks a run that completed but did not clear its gate: a Fail
// verdict, a replay divergence or a failing contrast pair. Exit status 1.
var errGate = errors.New("gate failed")

// #region root

var rootCmd = &cobra.Command{
	Use:   "soulscan",
	Short: "Score frontend artifacts for template tells",
	Long: `soulscan scans stylesheets and components for signs of
template-generated design: rigid spacing grids, framework-default colors,
clinical motion, stock copy. It also generates palettes and springs that
score well against the same heuristics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if verbose {
			cfg.LogLevel = "debug"
		}
		logger, err = logging.New(cfg.LogLevel, cfg.LogJSON)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(springCmd)
	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(archetypesCmd)
}

// #endregion root

func main() {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errGate) {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps a command result onto the process status: 0 clean, 1 for a
// failed gate, 2 for anything else.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errGate):
		return 1
	default:
		return 2
	}
}

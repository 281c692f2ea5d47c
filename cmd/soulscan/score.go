package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danielpatrickdp/soulscan/internal/engine"
	"github.com/danielpatrickdp/soulscan/internal/logging"
	"github.com/danielpatrickdp/soulscan/internal/replay"
	"github.com/danielpatrickdp/soulscan/internal/scan"
)

var (
	scoreJSON        bool
	scoreRecord      string
	scoreDescription string
)

var scoreCmd = &cobra.Command{
	Use:   "score [path]",
	Short: "Scan a directory or file and score it",
	Long: `Walks path (default: current directory), extracts design tokens and
scores them. Exits 1 on a Fail verdict.

--record writes the scanned tokens and the resulting scores as a replay
fixture, so later scoring changes can be caught with "soulscan replay".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the report as JSON")
	scoreCmd.Flags().StringVar(&scoreRecord, "record", "", "Write a replay fixture to this path")
	scoreCmd.Flags().StringVar(&scoreDescription, "description", "", "Fixture description (default: scanned path)")
}

func runScore(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	files, err := scan.Walk(ctx, root, scan.Options{
		MaxFileBytes: cfg.MaxFileBytes,
		Extensions:   cfg.Extensions,
		SkipDirs:     cfg.SkipDirs,
	})
	if err != nil {
		return err
	}
	logger.Debug("scan complete", zap.String("root", root), zap.Int("files", len(files)))

	eng := engine.New(engine.Config{Workers: cfg.Workers}, logger)
	r, err := eng.Analyze(ctx, files)
	if err != nil {
		return err
	}

	logging.LogRun(logger, logging.RunEntry{
		RunID:        r.RunID.String(),
		TriggerType:  "score",
		Source:       root,
		Files:        r.Files,
		OverallScore: r.OverallScore,
		Verdict:      string(r.Verdict),
		CreatedAt:    r.Timestamp,
	})

	if scoreRecord != "" {
		desc := scoreDescription
		if desc == "" {
			desc = filepath.ToSlash(root)
		}
		if err := replay.WriteFixture(scoreRecord, replay.Record(desc, files, r)); err != nil {
			return err
		}
		logger.Info("fixture recorded", zap.String("path", scoreRecord))
	}

	out := cmd.OutOrStdout()
	if scoreJSON {
		data, err := r.JSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	} else {
		fmt.Fprint(out, renderReport(r))
	}

	if !r.Passed() {
		return errGate
	}
	return nil
}

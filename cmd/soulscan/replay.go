package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/soulscan/internal/engine"
	"github.com/danielpatrickdp/soulscan/internal/logging"
	"github.com/danielpatrickdp/soulscan/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay fixture.json [fixture.json...]",
	Short: "Replay recorded fixtures and compare against their expected scores",
	Long: `Replays each fixture's tokens through the scoring engine in memory and
prints an expected-vs-replayed table. Exits 1 if any field diverges.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	eng := engine.New(engine.Config{Workers: cfg.Workers}, logger)

	results := make([]replay.Result, 0, len(args))
	for _, path := range args {
		f, err := replay.LoadFixture(path)
		if err != nil {
			return err
		}
		res, err := replay.Replay(context.Background(), eng, f)
		if err != nil {
			return err
		}
		reason := ""
		if !res.Match() {
			reason = fmt.Sprintf("%d divergences", len(res.Divergences))
		}
		logging.LogRun(logger, logging.RunEntry{
			RunID:        res.Report.RunID.String(),
			TriggerType:  "replay",
			Source:       path,
			Files:        res.Report.Files,
			OverallScore: res.Report.OverallScore,
			Verdict:      string(res.Report.Verdict),
			Reason:       reason,
			CreatedAt:    res.Report.Timestamp,
		})
		results = append(results, res)
	}

	if printComparison(cmd.OutOrStdout(), results) > 0 {
		return errGate
	}
	return nil
}

// #region output

// printComparison writes one row per compared field and returns the number
// of diverging fixtures.
func printComparison(w io.Writer, results []replay.Result) int {
	fmt.Fprintf(w, "%-28s| %-20s| %-10s| %-10s| %s\n", "Fixture", "Field", "Expected", "Replayed", "Match")
	fmt.Fprintf(w, "%-28s+%-20s+%-10s+%-10s+%s\n",
		"----------------------------", "---------------------", "-----------", "-----------", "------")

	diverge := 0
	for _, res := range results {
		name := truncate(res.Description, 27)
		if res.Match() {
			fmt.Fprintf(w, "%-28s| %-20s| %-10s| %-10s| %s\n",
				name, "verdict", res.Expected.Verdict, res.Report.Verdict, "OK")
			continue
		}
		diverge++
		for _, d := range res.Divergences {
			fmt.Fprintf(w, "%-28s| %-20s| %-10s| %-10s| %s\n", name, d.Field, d.Expected, d.Actual, "DIFF")
		}
	}

	fmt.Fprintf(w, "\nSummary: %d total, %d match, %d diverge\n", len(results), len(results)-diverge, diverge)
	return diverge
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// #endregion output

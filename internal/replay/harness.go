package replay

import (
	"context"
	"fmt"
	"strconv"

	"github.com/danielpatrickdp/soulscan/internal/engine"
	"github.com/danielpatrickdp/soulscan/internal/report"
	"github.com/danielpatrickdp/soulscan/internal/signals"
)

// #region types

// Divergence is one expected-vs-actual mismatch.
type Divergence struct {
	Field    string
	Expected string
	Actual   string
}

// Result captures the outcome of replaying one fixture through the engine.
type Result struct {
	Description string
	Expected    FixtureExpected
	Report      report.Report
	Divergences []Divergence
}

// Match reports whether the replay reproduced every recorded field.
func (r Result) Match() bool {
	return len(r.Divergences) == 0
}

// #endregion types

// #region replay

// Replay converts the fixture's tokens, scores them with eng and compares the
// report against the recorded expectation. Operates entirely in-memory.
func Replay(ctx context.Context, eng *engine.Engine, f *Fixture) (Result, error) {
	files, err := f.ToFiles()
	if err != nil {
		return Result{}, fmt.Errorf("convert fixture: %w", err)
	}
	r, err := eng.Analyze(ctx, files)
	if err != nil {
		return Result{}, fmt.Errorf("replay %q: %w", f.Description, err)
	}
	return Result{
		Description: f.Description,
		Expected:    f.Expected,
		Report:      r,
		Divergences: Compare(f.Expected, r),
	}, nil
}

// Compare lists every recorded field the report does not reproduce.
// Categories are compared in report order.
func Compare(exp FixtureExpected, r report.Report) []Divergence {
	var out []Divergence
	if exp.Verdict != string(r.Verdict) {
		out = append(out, Divergence{Field: "verdict", Expected: exp.Verdict, Actual: string(r.Verdict)})
	}
	if exp.OverallScore != nil && *exp.OverallScore != r.OverallScore {
		out = append(out, Divergence{
			Field:    "overall_score",
			Expected: strconv.Itoa(*exp.OverallScore),
			Actual:   strconv.Itoa(r.OverallScore),
		})
	}
	for _, c := range signals.Categories() {
		want, ok := exp.Categories[string(c)]
		if !ok {
			continue
		}
		if got := r.Categories[c].RawScore; got != want {
			out = append(out, Divergence{
				Field:    "categories." + string(c),
				Expected: strconv.Itoa(want),
				Actual:   strconv.Itoa(got),
			})
		}
	}
	return out
}

// #endregion replay

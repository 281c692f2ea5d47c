package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/danielpatrickdp/soulscan/internal/signals"
)

// #region verdict

// Verdict is the categorical outcome of a run.
type Verdict string

const (
	VerdictElite Verdict = "Elite"
	VerdictPass  Verdict = "Pass"
	VerdictFail  Verdict = "Fail"
)

// #endregion verdict

// #region report

// CategoryScore is one category's clamped score and the signals behind it.
type CategoryScore struct {
	Category signals.Category
	RawScore int
	Weight   float64
	Signals  []signals.Signal
}

// Report is the result of a single scoring run. It lives only as long as the
// invocation that produced it.
type Report struct {
	RunID        uuid.UUID
	OverallScore int
	Verdict      Verdict
	Categories   map[signals.Category]CategoryScore
	Timestamp    time.Time
	Files        int
}

// Passed reports whether the verdict is Pass or better.
func (r Report) Passed() bool {
	return r.Verdict == VerdictElite || r.Verdict == VerdictPass
}

// Ordered returns the category scores in fixed report order. Categories
// missing from the report are skipped.
func (r Report) Ordered() []CategoryScore {
	out := make([]CategoryScore, 0, len(r.Categories))
	for _, c := range signals.Categories() {
		if cs, ok := r.Categories[c]; ok {
			out = append(out, cs)
		}
	}
	return out
}

// #endregion report

package aggregate

import (
	"time"

	"github.com/google/uuid"

	"github.com/danielpatrickdp/soulscan/internal/report"
	"github.com/danielpatrickdp/soulscan/internal/signals"
)

// #region aggregate

// Aggregate reduces per-category signals into a report. Each category starts
// at 100, adds its signal deltas and is clamped to [0, 100]; the overall score
// is the weighted sum rounded half up, computed in integer percents so .5
// boundaries round exactly. Categories with no entry score 100. Deltas are
// integers, so the result does not depend on signal order.
func Aggregate(byCategory map[signals.Category][]signals.Signal) report.Report {
	cats := make(map[signals.Category]report.CategoryScore, len(signals.Categories()))
	var weighted int
	for _, c := range signals.Categories() {
		sigs := byCategory[c]
		cs := report.CategoryScore{
			Category: c,
			RawScore: RawScore(sigs),
			Weight:   signals.Weight(c),
			Signals:  append([]signals.Signal(nil), sigs...),
		}
		cats[c] = cs
		weighted += cs.RawScore * signals.WeightPct(c)
	}

	overall := (weighted + 50) / 100
	return report.Report{
		RunID:        uuid.New(),
		OverallScore: overall,
		Verdict:      VerdictFor(overall),
		Categories:   cats,
		Timestamp:    time.Now().UTC(),
	}
}

// RawScore is 100 plus the signal deltas, clamped to [0, 100].
func RawScore(sigs []signals.Signal) int {
	score := 100
	for _, s := range sigs {
		score += s.Delta
	}
	return min(100, max(0, score))
}

// VerdictFor maps a rounded overall score to its verdict.
func VerdictFor(score int) report.Verdict {
	switch {
	case score >= signals.EliteThreshold:
		return report.VerdictElite
	case score >= signals.PassThreshold:
		return report.VerdictPass
	default:
		return report.VerdictFail
	}
}

// #endregion aggregate

// #region group

// Group buckets a flat signal list by category, preserving relative order.
func Group(sigs []signals.Signal) map[signals.Category][]signals.Signal {
	out := make(map[signals.Category][]signals.Signal)
	for _, s := range sigs {
		out[s.Category] = append(out[s.Category], s)
	}
	return out
}

// #endregion group

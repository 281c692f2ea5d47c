package logging

import "time"

// #region run-entry
// RunEntry is the provenance record of a single scoring run: what was
// scored, what was decided and why.
type RunEntry struct {
	RunID        string
	TriggerType  string // "score" | "replay"
	Source       string // scanned root or fixture path
	Files        int
	OverallScore int
	Verdict      string // "Elite" | "Pass" | "Fail"
	Reason       string
	CreatedAt    time.Time
}
// #endregion run-entry

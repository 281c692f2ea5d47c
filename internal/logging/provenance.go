package logging

import (
	"time"

	"go.uber.org/zap"
)

// #region log-run
// LogRun writes a provenance entry for one run at info level.
func LogRun(logger *zap.Logger, entry RunEntry) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	logger.Info("run scored",
		zap.String("run_id", entry.RunID),
		zap.String("trigger_type", entry.TriggerType),
		zap.String("source", entry.Source),
		zap.Int("files", entry.Files),
		zap.Int("overall_score", entry.OverallScore),
		zap.String("verdict", entry.Verdict),
		zap.String("reason", nonEmpty(entry.Reason, "-")),
		zap.String("created_at", entry.CreatedAt.Format(time.RFC3339Nano)),
	)
}
// #endregion log-run

// #region helpers
func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
// #endregion helpers

package logging

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// #region logger-tests

func TestNew_Levels(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "WARN", "error"} {
		logger, err := New(lvl, false)
		if err != nil {
			t.Errorf("%s: unexpected error %v", lvl, err)
			continue
		}
		_ = logger.Sync()
	}
	if _, err := New("chatty", true); err == nil {
		t.Error("expected error for unknown level")
	}
}

// #endregion logger-tests

// #region log-run-tests

func TestLogRun(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	LogRun(zap.New(core), RunEntry{
		RunID:        "r-1",
		TriggerType:  "score",
		Source:       "./site",
		Files:        12,
		OverallScore: 67,
		Verdict:      "Fail",
		CreatedAt:    at,
	})

	entries := logs.FilterMessage("run scored").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["verdict"] != "Fail" || fields["overall_score"] != int64(67) {
		t.Errorf("unexpected fields %v", fields)
	}
	if fields["reason"] != "-" {
		t.Errorf("expected placeholder reason, got %v", fields["reason"])
	}
	if fields["created_at"] != at.Format(time.RFC3339Nano) {
		t.Errorf("unexpected created_at %v", fields["created_at"])
	}
}

func TestLogRun_StampsTime(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	LogRun(zap.New(core), RunEntry{RunID: "r-2"})
	if got := logs.All()[0].ContextMap()["created_at"]; got == "" || got == nil {
		t.Error("expected created_at to be stamped")
	}
}

// #endregion log-run-tests

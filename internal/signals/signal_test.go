package signals

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/danielpatrickdp/soulscan/internal/token"
)

// #region constructor-tests

func TestNew_ClampsDelta(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-100, MinDelta},
		{-20, -20},
		{-5, -5},
		{0, 0},
		{10, 10},
		{42, MaxDelta},
	}
	for _, tt := range tests {
		got := New(CategoryColor, SeverityMinor, tt.in, "x", nil)
		if got.Delta != tt.want {
			t.Errorf("New(delta=%d).Delta = %d, want %d", tt.in, got.Delta, tt.want)
		}
	}
}

func TestShorthands(t *testing.T) {
	src := token.Numeric{Value: 8, Unit: "px", Context: "gap"}

	major := Major(CategorySpacing, "grid", src)
	if major.Severity != SeverityMajor || major.Delta != MajorPenalty {
		t.Errorf("unexpected major signal: %+v", major)
	}
	if major.Source != src {
		t.Error("expected source token back-reference")
	}

	minor := Minor(CategoryMotion, "clinical", nil)
	if minor.Severity != SeverityMinor || minor.Delta != MinorPenalty {
		t.Errorf("unexpected minor signal: %+v", minor)
	}

	info := Info(CategoryFeatures, FeatureBonus, "oklch", nil)
	if info.Severity != SeverityInfo || info.Delta != FeatureBonus {
		t.Errorf("unexpected info signal: %+v", info)
	}
}

func TestUnanalyzable(t *testing.T) {
	s := Unanalyzable(CategoryCopy, "src/app.tsx", errors.New("read failed"))
	if s.Severity != SeverityMajor {
		t.Errorf("expected major severity, got %s", s.Severity)
	}
	if !strings.Contains(s.Message, "src/app.tsx") || !strings.Contains(s.Message, "read failed") {
		t.Errorf("message missing context: %q", s.Message)
	}
	if s.Source != nil {
		t.Error("expected nil source for file-level signal")
	}
}

// #endregion constructor-tests

// #region table-tests

func TestWeightPctSumsToHundred(t *testing.T) {
	var sum float64
	for _, c := range Categories() {
		w := Weight(c)
		if w <= 0 || w > 1 {
			t.Errorf("weight for %s out of range: %f", c, w)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("weights sum to %f, want 1.0", sum)
	}
	var pct int
	for _, c := range Categories() {
		pct += WeightPct(c)
	}
	if pct != 100 {
		t.Errorf("weight percents sum to %d, want 100", pct)
	}
	if WeightPct("layout") != 0 || Weight("layout") != 0 {
		t.Error("unknown category should weigh 0")
	}
}

func TestFixedDeltasWithinBounds(t *testing.T) {
	for _, d := range []int{MajorPenalty, MinorPenalty, PhysicalBonus, HumaneBonus, FeatureBonus, PersonalityBonus, NotEvaluable} {
		if d < MinDelta || d > MaxDelta {
			t.Errorf("delta %d outside [%d, %d]", d, MinDelta, MaxDelta)
		}
	}
}

func TestThresholdOrdering(t *testing.T) {
	if !(EliteThreshold > PassThreshold && PassThreshold > 0 && EliteThreshold <= 100) {
		t.Errorf("bad thresholds: elite=%d pass=%d", EliteThreshold, PassThreshold)
	}
}

// #endregion table-tests

package aggregate

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danielpatrickdp/soulscan/internal/report"
	"github.com/danielpatrickdp/soulscan/internal/signals"
)

func sampleSignals() []signals.Signal {
	return []signals.Signal{
		signals.Major(signals.CategorySpacing, "grid", nil),
		signals.Minor(signals.CategoryColor, "blue", nil),
		signals.Minor(signals.CategoryColor, "violet", nil),
		signals.Major(signals.CategoryColor, "generic file", nil),
		signals.Info(signals.CategoryMotion, signals.PhysicalBonus, "spring", nil),
		signals.Minor(signals.CategoryMotion, "300ms ease-in-out", nil),
		signals.Major(signals.CategoryCopy, "Close", nil),
		signals.Info(signals.CategoryCopy, signals.HumaneBonus, "long label", nil),
		signals.Info(signals.CategoryFeatures, signals.FeatureBonus, ":has()", nil),
	}
}

// #region aggregate-tests

func TestAggregate_NoSignalsIsElite(t *testing.T) {
	r := Aggregate(nil)
	if r.OverallScore != 100 || r.Verdict != report.VerdictElite {
		t.Errorf("expected 100/Elite, got %d/%s", r.OverallScore, r.Verdict)
	}
	if len(r.Categories) != len(signals.Categories()) {
		t.Errorf("expected every category present, got %d", len(r.Categories))
	}
	for c, cs := range r.Categories {
		if cs.RawScore != 100 {
			t.Errorf("%s: expected 100, got %d", c, cs.RawScore)
		}
	}
}

func TestAggregate_SpacingMajor(t *testing.T) {
	r := Aggregate(map[signals.Category][]signals.Signal{
		signals.CategorySpacing: {signals.Major(signals.CategorySpacing, "grid", nil)},
	})
	if got := r.Categories[signals.CategorySpacing].RawScore; got != 85 {
		t.Errorf("expected spacing raw score 85, got %d", got)
	}
	// 85·0.25 + 100·0.75 = 96.25
	if r.OverallScore != 96 || r.Verdict != report.VerdictElite {
		t.Errorf("expected 96/Elite, got %d/%s", r.OverallScore, r.Verdict)
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	sigs := sampleSignals()
	want := Aggregate(Group(sigs)).Export()

	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 25; i++ {
		shuffled := append([]signals.Signal(nil), sigs...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		got := Aggregate(Group(shuffled))
		if got.OverallScore != want.OverallScore || string(got.Verdict) != want.Verdict {
			t.Fatalf("shuffle %d: got %d/%s, want %d/%s", i, got.OverallScore, got.Verdict, want.OverallScore, want.Verdict)
		}
		for _, cs := range got.Categories {
			for _, wc := range want.Categories {
				if wc.Name == string(cs.Category) && wc.RawScore != cs.RawScore {
					t.Errorf("shuffle %d: %s raw %d, want %d", i, cs.Category, cs.RawScore, wc.RawScore)
				}
			}
		}
	}
}

func TestAggregate_ClampsRawScore(t *testing.T) {
	var many []signals.Signal
	for i := 0; i < 10; i++ {
		many = append(many, signals.Major(signals.CategoryColor, "generic", nil))
	}
	bonus := []signals.Signal{
		signals.Info(signals.CategoryFeatures, signals.FeatureBonus, "a", nil),
		signals.Info(signals.CategoryFeatures, signals.FeatureBonus, "b", nil),
	}
	r := Aggregate(map[signals.Category][]signals.Signal{
		signals.CategoryColor:    many,
		signals.CategoryFeatures: bonus,
	})
	if got := r.Categories[signals.CategoryColor].RawScore; got != 0 {
		t.Errorf("expected color clamped to 0, got %d", got)
	}
	if got := r.Categories[signals.CategoryFeatures].RawScore; got != 100 {
		t.Errorf("expected features clamped to 100, got %d", got)
	}
	if r.OverallScore != 75 || r.Verdict != report.VerdictPass {
		t.Errorf("expected 75/Pass, got %d/%s", r.OverallScore, r.Verdict)
	}
}

// penalize returns signals in cat that bring its raw score down to raw.
func penalize(cat signals.Category, raw int) []signals.Signal {
	var out []signals.Signal
	for left := 100 - raw; left > 0; left -= -signals.MinDelta {
		d := max(signals.MinDelta, -left)
		out = append(out, signals.New(cat, signals.SeverityMajor, d, "penalty", nil))
	}
	return out
}

func TestAggregate_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		name    string
		raws    [5]int // spacing, color, motion, copy, features
		overall int
		verdict report.Verdict
	}{
		// 63·25 + 100·25 + 99·20 + 99·15 + 94·15 = 8950
		{"elite-boundary", [5]int{63, 100, 99, 99, 94}, 90, report.VerdictElite},
		// 38·25 + 100·25 + 100·20 + 100·15 + 0·15 = 6950
		{"pass-boundary", [5]int{38, 100, 100, 100, 0}, 70, report.VerdictPass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			by := map[signals.Category][]signals.Signal{}
			for i, c := range signals.Categories() {
				by[c] = penalize(c, tt.raws[i])
			}
			r := Aggregate(by)
			for i, c := range signals.Categories() {
				if got := r.Categories[c].RawScore; got != tt.raws[i] {
					t.Fatalf("%s: raw score %d, want %d", c, got, tt.raws[i])
				}
			}
			if r.OverallScore != tt.overall || r.Verdict != tt.verdict {
				t.Errorf("expected %d/%s, got %d/%s", tt.overall, tt.verdict, r.OverallScore, r.Verdict)
			}
		})
	}
}

func TestVerdictFor_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  report.Verdict
	}{
		{100, report.VerdictElite},
		{90, report.VerdictElite},
		{89, report.VerdictPass},
		{70, report.VerdictPass},
		{69, report.VerdictFail},
		{0, report.VerdictFail},
	}
	for _, tt := range tests {
		if got := VerdictFor(tt.score); got != tt.want {
			t.Errorf("VerdictFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

// #endregion aggregate-tests

// #region export-tests

func TestExport_Shape(t *testing.T) {
	r := Aggregate(map[signals.Category][]signals.Signal{
		signals.CategorySpacing: {signals.Major(signals.CategorySpacing, "6 of 6 spacing values sit on a rigid 8px grid", nil)},
	})
	want := report.Export{
		OverallScore: 96,
		Verdict:      "Elite",
		Categories: []report.ExportCategory{
			{Name: "spacing", RawScore: 85, Weight: 0.25, Signals: []report.ExportSignal{
				{Severity: "major", Message: "6 of 6 spacing values sit on a rigid 8px grid", Delta: -15},
			}},
			{Name: "color", RawScore: 100, Weight: 0.25, Signals: []report.ExportSignal{}},
			{Name: "motion", RawScore: 100, Weight: 0.20, Signals: []report.ExportSignal{}},
			{Name: "copy", RawScore: 100, Weight: 0.15, Signals: []report.ExportSignal{}},
			{Name: "features", RawScore: 100, Weight: 0.15, Signals: []report.ExportSignal{}},
		},
	}
	if diff := cmp.Diff(want, r.Export()); diff != "" {
		t.Errorf("export mismatch (-want +got):\n%s", diff)
	}
}

func TestReport_JSONIncludesRunID(t *testing.T) {
	r := Aggregate(nil)
	data, err := r.JSON()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), r.RunID.String()) {
		t.Errorf("expected run id in JSON: %s", data)
	}
	if !strings.Contains(string(data), `"overallScore": 100`) {
		t.Errorf("expected overallScore key: %s", data)
	}
}

// #endregion export-tests

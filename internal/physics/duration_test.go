package physics

import (
	"errors"
	"math"
	"testing"
)

func mustSample(t *testing.T, easing string) []float64 {
	t.Helper()
	s, err := SampleEasing(easing, DefaultSamples)
	if err != nil {
		t.Fatalf("SampleEasing(%q): %v", easing, err)
	}
	return s
}

// #region classify-tests

func TestClassifyDuration(t *testing.T) {
	tests := []struct {
		name   string
		ms     float64
		easing string
		want   DurationVerdict
	}{
		{"stock-300-ease-in-out", 300, "ease-in-out", VerdictClinical},
		{"stock-200-linear", 200, "linear", VerdictClinical},
		{"round-300-default-ease", 300, "", VerdictNeutral},
		{"round-300-ease-out", 300, "ease-out", VerdictNeutral},
		{"round-300-asymmetric-ease", 300, "ease", VerdictNeutral},
		{"multiple-of-10-only", 240, "ease-in-out", VerdictNeutral},
		{"odd-duration", 437, "ease-in-out", VerdictPhysical},
		{"fractional-duration", 382.5, "linear", VerdictPhysical},
		{"overshooting-curve", 300, "cubic-bezier(0.34, 1.56, 0.64, 1)", VerdictPhysical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyDuration(tt.ms, mustSample(t, tt.easing))
			if got.Verdict != tt.want {
				t.Errorf("got %s (%s), want %s", got.Verdict, got.Reason, tt.want)
			}
			if got.LooksPhysical != (tt.want == VerdictPhysical) {
				t.Errorf("LooksPhysical=%v inconsistent with verdict %s", got.LooksPhysical, got.Verdict)
			}
			if got.Reason == "" {
				t.Error("expected a reason")
			}
		})
	}
}

func TestClassifyDuration_OscillatingCurve(t *testing.T) {
	// Rises, dips back, settles: non-monotonic but inside [0,1].
	curve := []float64{0, 0.6, 0.95, 0.85, 0.98, 1}
	got := ClassifyDuration(500, curve)
	if got.Verdict != VerdictPhysical {
		t.Errorf("expected physical for oscillating settle, got %s", got.Verdict)
	}
}

func TestClassifyDuration_NoCurve(t *testing.T) {
	if got := ClassifyDuration(300, nil); got.Verdict != VerdictNeutral {
		t.Errorf("round duration without curve: expected neutral, got %s", got.Verdict)
	}
	if got := ClassifyDuration(313, nil); got.Verdict != VerdictPhysical {
		t.Errorf("odd duration without curve: expected physical, got %s", got.Verdict)
	}
}

// #endregion classify-tests

// #region easing-tests

func TestSampleEasing_Endpoints(t *testing.T) {
	for _, e := range []string{"linear", "ease", "ease-in", "ease-out", "ease-in-out", "cubic-bezier(0.2, 0.8, 0.2, 1)"} {
		s := mustSample(t, e)
		if len(s) != DefaultSamples {
			t.Fatalf("%s: expected %d samples, got %d", e, DefaultSamples, len(s))
		}
		if s[0] != 0 || math.Abs(s[len(s)-1]-1) > 1e-9 {
			t.Errorf("%s: expected endpoints 0 and 1, got %f and %f", e, s[0], s[len(s)-1])
		}
	}
}

func TestSampleEasing_EaseInOutSymmetric(t *testing.T) {
	s := mustSample(t, "ease-in-out")
	if !symmetric(s) {
		t.Errorf("expected ease-in-out to be point-symmetric: %v", s)
	}
	if symmetric(mustSample(t, "ease-in")) {
		t.Error("expected ease-in to be asymmetric")
	}
}

func TestSampleEasing_LinearPoints(t *testing.T) {
	s, err := SampleEasing("linear(0, 0.4 20%, 1.08, 0.97, 1)", DefaultSamples)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 0.4, 1.08, 0.97, 1}
	if len(s) != len(want) {
		t.Fatalf("expected %d points, got %v", len(want), s)
	}
	for i := range want {
		if s[i] != want[i] {
			t.Errorf("point %d: got %f, want %f", i, s[i], want[i])
		}
	}
}

func TestSampleEasing_Errors(t *testing.T) {
	for _, e := range []string{"steps(4, end)", "bogus", "cubic-bezier(1, 2, 3)", "cubic-bezier(1.5, 0, 0.5, 1)", "linear(0)"} {
		if _, err := SampleEasing(e, DefaultSamples); !errors.Is(err, ErrUnknownEasing) {
			t.Errorf("%q: expected ErrUnknownEasing, got %v", e, err)
		}
	}
}

// #endregion easing-tests

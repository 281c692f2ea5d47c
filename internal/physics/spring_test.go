package physics

import (
	"errors"
	"math"
	"testing"
)

// #region compute-tests

func TestComputeSpring_Underdamped(t *testing.T) {
	res, err := ComputeSpring(SpringConfig{Stiffness: 240, Damping: 12, Mass: 0.6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Classification != Underdamped {
		t.Errorf("expected underdamped, got %s", res.Classification)
	}
	// ω₀ = 20, ζ = 0.5 → σ = 10 → settle = -ln(0.02)/10 s ≈ 391.2ms
	if math.IsInf(res.SettleTimeMs, 0) || math.IsNaN(res.SettleTimeMs) || res.SettleTimeMs <= 0 {
		t.Fatalf("expected positive finite settle time, got %f", res.SettleTimeMs)
	}
	if diff := math.Abs(res.SettleTimeMs - 391.202); diff > 0.01 {
		t.Errorf("expected settle ~391.202ms, got %f", res.SettleTimeMs)
	}
	// 100·exp(-0.5π/√0.75) ≈ 16.303
	if diff := math.Abs(res.OvershootPct - 16.303); diff > 0.01 {
		t.Errorf("expected overshoot ~16.303%%, got %f", res.OvershootPct)
	}
	if res.CanonicalDurationMs != 391 {
		t.Errorf("expected canonical duration 391, got %d", res.CanonicalDurationMs)
	}
}

func TestComputeSpring_CriticallyDamped(t *testing.T) {
	// ζ = 20 / (2·√100) = 1
	res, err := ComputeSpring(SpringConfig{Stiffness: 100, Damping: 20, Mass: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Classification != CriticallyDamped {
		t.Errorf("expected critically damped, got %s", res.Classification)
	}
	if res.OvershootPct != 0 {
		t.Errorf("expected zero overshoot, got %f", res.OvershootPct)
	}
}

func TestComputeSpring_NoOvershootAtOrAboveCritical(t *testing.T) {
	configs := []SpringConfig{
		{Stiffness: 100, Damping: 20, Mass: 1},
		{Stiffness: 100, Damping: 20.5, Mass: 1},
		{Stiffness: 80, Damping: 20, Mass: 1.2},
		{Stiffness: 10, Damping: 100, Mass: 3},
	}
	for _, cfg := range configs {
		res, err := ComputeSpring(cfg)
		if err != nil {
			t.Fatalf("%+v: unexpected error: %v", cfg, err)
		}
		if res.DampingRatio < 1-criticalTolerance {
			t.Fatalf("%+v: test config should have ζ>=1, got %f", cfg, res.DampingRatio)
		}
		if res.OvershootPct != 0 {
			t.Errorf("%+v: expected zero overshoot, got %f", cfg, res.OvershootPct)
		}
		if res.Classification == Underdamped {
			t.Errorf("%+v: classified underdamped with ζ=%f", cfg, res.DampingRatio)
		}
	}
}

func TestComputeSpring_OverdampedSettlesSlower(t *testing.T) {
	critical, err := ComputeSpring(SpringConfig{Stiffness: 100, Damping: 20, Mass: 1})
	if err != nil {
		t.Fatal(err)
	}
	over, err := ComputeSpring(SpringConfig{Stiffness: 100, Damping: 40, Mass: 1})
	if err != nil {
		t.Fatal(err)
	}
	if over.Classification != Overdamped {
		t.Fatalf("expected overdamped, got %s", over.Classification)
	}
	if over.SettleTimeMs <= critical.SettleTimeMs {
		t.Errorf("expected overdamped settle %f > critical settle %f", over.SettleTimeMs, critical.SettleTimeMs)
	}
}

func TestComputeSpring_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  SpringConfig
	}{
		{"zero-stiffness", SpringConfig{Stiffness: 0, Damping: 10, Mass: 1}},
		{"negative-stiffness", SpringConfig{Stiffness: -5, Damping: 10, Mass: 1}},
		{"zero-mass", SpringConfig{Stiffness: 100, Damping: 10, Mass: 0}},
		{"negative-damping", SpringConfig{Stiffness: 100, Damping: -1, Mass: 1}},
		{"undamped", SpringConfig{Stiffness: 100, Damping: 0, Mass: 1}},
		{"nan", SpringConfig{Stiffness: math.NaN(), Damping: 10, Mass: 1}},
		{"inf", SpringConfig{Stiffness: 100, Damping: math.Inf(1), Mass: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeSpring(tt.cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestCanonicalDuration_AvoidsRoundNumbers(t *testing.T) {
	tests := []struct {
		settle float64
		want   int
	}{
		{391.2, 391},
		{399.6, 401},
		{300.0, 301},
		{437.49, 437},
	}
	for _, tt := range tests {
		if got := canonicalDuration(tt.settle); got != tt.want {
			t.Errorf("canonicalDuration(%f) = %d, want %d", tt.settle, got, tt.want)
		}
	}
}

// #endregion compute-tests

// #region preset-tests

func TestPresets_DampingRatioBands(t *testing.T) {
	bands := map[string][2]float64{
		"snappy": {0.8, 1.0},
		"bouncy": {0.3, 0.6},
		"gentle": {1.0, 1.5},
		"wobbly": {0.1, 0.3},
	}
	for name, band := range bands {
		cfg, err := Preset(name)
		if err != nil {
			t.Fatalf("preset %s: %v", name, err)
		}
		zeta := cfg.DampingRatio()
		inBand := zeta >= band[0] && zeta < band[1]
		if name == "gentle" {
			inBand = zeta >= band[0] && zeta <= band[1]
		}
		if !inBand {
			t.Errorf("preset %s: ζ=%f outside band %v", name, zeta, band)
		}
	}
	if len(PresetNames()) != len(bands) {
		t.Errorf("expected %d presets, got %v", len(bands), PresetNames())
	}
}

func TestPreset_Unknown(t *testing.T) {
	if _, err := Preset("Snappy"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset for case mismatch, got %v", err)
	}
}

func TestPresets_GeneratedDurationsLookPhysical(t *testing.T) {
	for _, name := range PresetNames() {
		cfg, _ := Preset(name)
		res, err := ComputeSpring(cfg)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		curve, err := SpringCurve(cfg, DefaultSamples)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		j := ClassifyDuration(float64(res.CanonicalDurationMs), curve)
		if !j.LooksPhysical {
			t.Errorf("%s: generated %dms judged %s: %s", name, res.CanonicalDurationMs, j.Verdict, j.Reason)
		}
	}
}

// #endregion preset-tests

// #region curve-tests

func TestSpringCurve_UnderdampedOvershoots(t *testing.T) {
	curve, err := SpringCurve(SpringConfig{Stiffness: 240, Damping: 12, Mass: 0.6}, 41)
	if err != nil {
		t.Fatal(err)
	}
	if curve[0] != 0 {
		t.Errorf("expected curve to start at 0, got %f", curve[0])
	}
	if curve[len(curve)-1] != 1 {
		t.Errorf("expected curve to end at 1, got %f", curve[len(curve)-1])
	}
	var peak float64
	for _, v := range curve {
		peak = math.Max(peak, v)
	}
	if peak <= 1.05 {
		t.Errorf("expected visible overshoot, peak=%f", peak)
	}
}

func TestSpringCurve_OverdampedMonotonic(t *testing.T) {
	cfg, _ := Preset("gentle")
	curve, err := SpringCurve(cfg, 41)
	if err != nil {
		t.Fatal(err)
	}
	if !monotonic(curve) {
		t.Error("expected overdamped curve to rise monotonically")
	}
	if overshoots(curve) {
		t.Error("expected no overshoot on overdamped curve")
	}
}

func TestSpringCurve_InvalidConfig(t *testing.T) {
	if _, err := SpringCurve(SpringConfig{}, 10); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

// #endregion curve-tests

// #region simulate-tests

func TestSimulate_SettlesEarly(t *testing.T) {
	cfg, _ := Preset("bouncy")
	frames, err := Simulate(cfg, 100, 2.0, 60)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) >= 120 {
		t.Errorf("expected early stop before 120 frames, got %d", len(frames))
	}
	last := frames[len(frames)-1]
	if math.Abs(last.X) >= 0.01 || math.Abs(last.V) >= 0.01 {
		t.Errorf("expected rest at final frame, got x=%f v=%f", last.X, last.V)
	}
	if frames[0].X != 100 || frames[0].T != 0 {
		t.Errorf("unexpected first frame: %+v", frames[0])
	}
}

func TestSimulate_Errors(t *testing.T) {
	if _, err := Simulate(SpringConfig{Stiffness: 1, Damping: 0, Mass: 1}, 1, 1, 60); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
	cfg, _ := Preset("snappy")
	if _, err := Simulate(cfg, 1, 1, 0); err == nil {
		t.Error("expected error for zero fps")
	}
}

// #endregion simulate-tests

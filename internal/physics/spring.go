package physics

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// settleBand is the tolerance band around the final value for settle time.
const settleBand = 0.02

// ErrUnknownPreset is returned for preset names outside the fixed table.
var ErrUnknownPreset = errors.New("unknown spring preset")

// #region presets

// presets are fixed generation configs, each in its own damping-ratio band:
// snappy [0.8,1.0), bouncy [0.3,0.6), gentle [1.0,1.5], wobbly [0.1,0.3).
var presets = map[string]SpringConfig{
	"snappy": {Stiffness: 280, Damping: 24, Mass: 0.7},
	"bouncy": {Stiffness: 240, Damping: 12, Mass: 0.6},
	"gentle": {Stiffness: 80, Damping: 20, Mass: 1.2},
	"wobbly": {Stiffness: 180, Damping: 5, Mass: 0.5},
}

// Preset returns the named preset. Lookup is exact.
func Preset(name string) (SpringConfig, error) {
	cfg, ok := presets[name]
	if !ok {
		return SpringConfig{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return cfg, nil
}

// PresetNames lists preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// #endregion presets

// #region validate

// Validate rejects parameters that do not describe a settling spring.
func (c SpringConfig) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{{"stiffness", c.Stiffness}, {"damping", c.Damping}, {"mass", c.Mass}}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidConfig, f.name, f.v)
		}
	}
	if c.Stiffness <= 0 {
		return fmt.Errorf("%w: stiffness %v must be > 0", ErrInvalidConfig, c.Stiffness)
	}
	if c.Mass <= 0 {
		return fmt.Errorf("%w: mass %v must be > 0", ErrInvalidConfig, c.Mass)
	}
	if c.Damping < 0 {
		return fmt.Errorf("%w: damping %v must be >= 0", ErrInvalidConfig, c.Damping)
	}
	if c.Damping == 0 {
		return fmt.Errorf("%w: zero damping never settles", ErrInvalidConfig)
	}
	return nil
}

// #endregion validate

// #region compute

// ComputeSpring derives settle time, overshoot, damping regime and a canonical
// duration from cfg.
func ComputeSpring(cfg SpringConfig) (SpringResult, error) {
	if err := cfg.Validate(); err != nil {
		return SpringResult{}, err
	}

	zeta := cfg.DampingRatio()
	class := classify(zeta)
	settle := settleTimeMs(zeta, cfg.NaturalFrequency(), class)

	var overshoot float64
	if class == Underdamped {
		overshoot = 100 * math.Exp(-zeta*math.Pi/math.Sqrt(1-zeta*zeta))
	}

	return SpringResult{
		Config:              cfg,
		DampingRatio:        zeta,
		SettleTimeMs:        settle,
		OvershootPct:        overshoot,
		Classification:      class,
		CanonicalDurationMs: canonicalDuration(settle),
	}, nil
}

// settleTimeMs uses the exponential envelope: the response stays inside the
// 2% band once e^(-σt) < 0.02. Overdamped springs decay at their slow pole.
func settleTimeMs(zeta, omega0 float64, class Classification) float64 {
	sigma := zeta * omega0
	if class == Overdamped {
		sigma = omega0 * (zeta - math.Sqrt(zeta*zeta-1))
	}
	return -math.Log(settleBand) / sigma * 1000
}

// canonicalDuration rounds the settle time to whole ms and steps off
// multiples of 10 so generated durations never read as round numbers.
func canonicalDuration(settleMs float64) int {
	d := int(math.Round(settleMs))
	if d%10 == 0 {
		d++
	}
	return d
}

// #endregion compute

// #region curve

// SpringCurve samples the normalised step response (0 → 1) over the canonical
// duration at n evenly spaced points. The final sample is pinned to 1.
func SpringCurve(cfg SpringConfig, n int) ([]float64, error) {
	res, err := ComputeSpring(cfg)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		n = 2
	}
	omega0 := cfg.NaturalFrequency()
	zeta := res.DampingRatio
	total := float64(res.CanonicalDurationMs) / 1000

	out := make([]float64, n)
	for i := 0; i < n-1; i++ {
		t := total * float64(i) / float64(n-1)
		out[i] = 1 - displacement(zeta, omega0, res.Classification, t)
	}
	out[n-1] = 1
	return out, nil
}

// displacement is the free response x(t) for x(0)=1, v(0)=0.
func displacement(zeta, omega0 float64, class Classification, t float64) float64 {
	switch class {
	case Underdamped:
		wd := omega0 * math.Sqrt(1-zeta*zeta)
		return math.Exp(-zeta*omega0*t) * (math.Cos(wd*t) + (zeta*omega0/wd)*math.Sin(wd*t))
	case CriticallyDamped:
		return math.Exp(-omega0*t) * (1 + omega0*t)
	default:
		root := math.Sqrt(zeta*zeta - 1)
		r1 := -omega0 * (zeta - root)
		r2 := -omega0 * (zeta + root)
		return (r2*math.Exp(r1*t) - r1*math.Exp(r2*t)) / (r2 - r1)
	}
}

// #endregion curve

// #region simulate

// Frame is one step of a numeric spring simulation.
type Frame struct {
	T float64 // seconds
	X float64 // displacement
	V float64 // velocity
}

// Simulate integrates the spring with semi-implicit Euler at fps frames per
// second for up to duration seconds, stopping early once both |x| and |v|
// fall below 0.01.
func Simulate(cfg SpringConfig, initialDisplacement, duration, fps float64) ([]Frame, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if fps <= 0 || duration <= 0 {
		return nil, fmt.Errorf("simulate: duration %v and fps %v must be > 0", duration, fps)
	}
	dt := 1 / fps
	frames := int(duration * fps)
	x, v := initialDisplacement, 0.0
	out := []Frame{{T: 0, X: x, V: v}}
	for i := 1; i < frames; i++ {
		a := (-cfg.Stiffness*x - cfg.Damping*v) / cfg.Mass
		v += a * dt
		x += v * dt
		out = append(out, Frame{T: float64(i) * dt, X: x, V: v})
		if math.Abs(x) < 0.01 && math.Abs(v) < 0.01 {
			break
		}
	}
	return out, nil
}

// #endregion simulate

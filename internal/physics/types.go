package physics

import (
	"errors"
	"math"
)

// ErrInvalidConfig is returned for spring parameters that cannot describe a
// settling oscillator. Parameters are never clamped into range.
var ErrInvalidConfig = errors.New("invalid physics config")

// #region spring-config

// SpringConfig is a damped harmonic oscillator: stiffness k, damping c, mass m.
type SpringConfig struct {
	Stiffness float64 `json:"stiffness"`
	Damping   float64 `json:"damping"`
	Mass      float64 `json:"mass"`
}

// DampingRatio returns ζ = c / (2·√(k·m)).
func (c SpringConfig) DampingRatio() float64 {
	return c.Damping / (2 * math.Sqrt(c.Stiffness*c.Mass))
}

// NaturalFrequency returns ω₀ = √(k/m) in rad/s.
func (c SpringConfig) NaturalFrequency() float64 {
	return math.Sqrt(c.Stiffness / c.Mass)
}

// Classification derives the damping regime from ζ.
func (c SpringConfig) Classification() Classification {
	return classify(c.DampingRatio())
}

// IsOverdamped reports ζ > 1.
func (c SpringConfig) IsOverdamped() bool {
	return c.Classification() == Overdamped
}

// #endregion spring-config

// #region classification

// Classification names the damping regime.
type Classification string

const (
	Underdamped      Classification = "underdamped"
	CriticallyDamped Classification = "critically damped"
	Overdamped       Classification = "overdamped"
)

// criticalTolerance absorbs float noise around ζ == 1.
const criticalTolerance = 1e-9

func classify(zeta float64) Classification {
	switch {
	case math.Abs(zeta-1) <= criticalTolerance:
		return CriticallyDamped
	case zeta < 1:
		return Underdamped
	default:
		return Overdamped
	}
}

// #endregion classification

// #region spring-result

// SpringResult holds the derived motion values for a SpringConfig.
type SpringResult struct {
	Config              SpringConfig
	DampingRatio        float64
	SettleTimeMs        float64
	OvershootPct        float64 // 0 unless underdamped
	Classification      Classification
	CanonicalDurationMs int
}

// #endregion spring-result

// #region duration-judgement

// DurationVerdict is the outcome of ClassifyDuration.
type DurationVerdict string

const (
	VerdictClinical DurationVerdict = "clinical"
	VerdictNeutral  DurationVerdict = "neutral"
	VerdictPhysical DurationVerdict = "physical"
)

// DurationJudgement explains whether a duration/easing pair looks physical.
type DurationJudgement struct {
	LooksPhysical bool
	Verdict       DurationVerdict
	Reason        string
}

// #endregion duration-judgement

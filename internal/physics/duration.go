package physics

import (
	"fmt"
	"math"
)

const (
	overshootTolerance = 1e-3
	symmetryTolerance  = 1e-3
)

// #region classify-duration

// ClassifyDuration judges whether a duration paired with a sampled easing
// curve looks physically derived or like a stock preset.
//
// Physical: the duration is not a multiple of 10 ms, or the curve overshoots
// its end points or settles non-monotonically. Clinical: the duration is a
// multiple of 50 ms and the curve is strictly monotonic and point-symmetric.
// Anything else is neutral. An empty curve can only be judged on the duration.
func ClassifyDuration(durationMs float64, samples []float64) DurationJudgement {
	if !isMultiple(durationMs, 10) {
		return DurationJudgement{
			LooksPhysical: true,
			Verdict:       VerdictPhysical,
			Reason:        fmt.Sprintf("%gms is not a round duration", durationMs),
		}
	}

	if len(samples) >= 2 {
		if overshoots(samples) {
			return DurationJudgement{
				LooksPhysical: true,
				Verdict:       VerdictPhysical,
				Reason:        fmt.Sprintf("%gms curve overshoots its target", durationMs),
			}
		}
		if !monotonic(samples) {
			return DurationJudgement{
				LooksPhysical: true,
				Verdict:       VerdictPhysical,
				Reason:        fmt.Sprintf("%gms curve oscillates before settling", durationMs),
			}
		}
		if isMultiple(durationMs, 50) && strictlyMonotonic(samples) && symmetric(samples) {
			return DurationJudgement{
				LooksPhysical: false,
				Verdict:       VerdictClinical,
				Reason:        fmt.Sprintf("%gms with a symmetric monotonic ease is a stock preset", durationMs),
			}
		}
	}

	return DurationJudgement{
		LooksPhysical: false,
		Verdict:       VerdictNeutral,
		Reason:        fmt.Sprintf("%gms is round but the curve is not a stock ease", durationMs),
	}
}

// #endregion classify-duration

// #region helpers

func isMultiple(v, m float64) bool {
	return math.Mod(v, m) == 0
}

func overshoots(s []float64) bool {
	for _, v := range s {
		if v > 1+overshootTolerance || v < -overshootTolerance {
			return true
		}
	}
	return false
}

func monotonic(s []float64) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1]-1e-9 {
			return false
		}
	}
	return true
}

func strictlyMonotonic(s []float64) bool {
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return false
		}
	}
	return true
}

// symmetric reports point symmetry about the curve's midpoint.
func symmetric(s []float64) bool {
	n := len(s)
	for i := 0; i < n/2; i++ {
		if math.Abs(s[i]+s[n-1-i]-1) > symmetryTolerance {
			return false
		}
	}
	return true
}

// #endregion helpers

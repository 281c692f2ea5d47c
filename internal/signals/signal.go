package signals

import "github.com/danielpatrickdp/soulscan/internal/token"

// #region constructor

// New creates a Signal, clamping delta into [MinDelta, MaxDelta] so no single
// detector finding can dominate a category.
func New(cat Category, sev Severity, delta int, message string, src token.Token) Signal {
	return Signal{
		Category: cat,
		Severity: sev,
		Delta:    clampDelta(delta),
		Message:  message,
		Source:   src,
	}
}

// Major is shorthand for a major signal at the fixed major penalty.
func Major(cat Category, message string, src token.Token) Signal {
	return New(cat, SeverityMajor, MajorPenalty, message, src)
}

// Minor is shorthand for a minor signal at the fixed minor penalty.
func Minor(cat Category, message string, src token.Token) Signal {
	return New(cat, SeverityMinor, MinorPenalty, message, src)
}

// Info creates an info signal with the given (usually non-negative) delta.
func Info(cat Category, delta int, message string, src token.Token) Signal {
	return New(cat, SeverityInfo, delta, message, src)
}

// Unanalyzable records that a file could not be evaluated for cat.
func Unanalyzable(cat Category, path string, err error) Signal {
	return Major(cat, "unanalyzable "+path+": "+err.Error(), nil)
}

// #endregion constructor

// #region helpers

func clampDelta(d int) int {
	if d < MinDelta {
		return MinDelta
	}
	if d > MaxDelta {
		return MaxDelta
	}
	return d
}

// #endregion helpers

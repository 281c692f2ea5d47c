package signals

// #region deltas

// Per-signal score contributions. Every delta lands in [MinDelta, MaxDelta].
const (
	MinDelta = -20
	MaxDelta = 10

	MajorPenalty     = -15
	MinorPenalty     = -5
	PhysicalBonus    = 2 // motion backed by a physical curve or non-round timing
	HumaneBonus      = 3 // control copy that goes beyond a stock label
	FeatureBonus     = 5 // distinct modern feature per file
	PersonalityBonus = 3 // subtle rotation, organic clip-path or custom cursor
	NotEvaluable     = 0
)

// #endregion deltas

// #region weights

// weightPct is each category's share of the overall score in whole percent.
// Sums to 100. Integer so the overall score rounds exactly.
var weightPct = map[Category]int{
	CategorySpacing:  25,
	CategoryColor:    25,
	CategoryMotion:   20,
	CategoryCopy:     15,
	CategoryFeatures: 15,
}

// WeightPct returns the fixed weight for c in whole percent, 0 for unknown
// categories.
func WeightPct(c Category) int {
	return weightPct[c]
}

// Weight returns the fixed weight for c as a fraction, for display.
func Weight(c Category) float64 {
	return float64(weightPct[c]) / 100
}

// #endregion weights

// #region thresholds

// Verdict boundaries on the rounded overall score. Fixed so reports stay
// comparable across runs.
const (
	EliteThreshold = 90
	PassThreshold  = 70
)

// Detector rule parameters.
const (
	SpacingMinSample   = 5
	SpacingGridRatio   = 0.70
	SpacingGridUnit    = 8
	ColorMinSample     = 3
	ColorGenericRatio  = 0.5
	CopyExtensionWords = 3
)

// #endregion thresholds

package palette

import (
	"fmt"
	"math"
)

// Tier is a WCAG contrast conformance level for normal text.
type Tier string

const (
	TierFail Tier = "Fail"
	TierAA   Tier = "AA"
	TierAAA  Tier = "AAA"
)

const (
	minAA  = 4.5
	minAAA = 7.0
)

// #region luminance

// RelativeLuminance is the WCAG 2 relative luminance of an sRGB color.
func RelativeLuminance(c RGB8) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

func linearize(v uint8) float64 {
	s := float64(v) / 255
	if s <= 0.03928 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// ContrastRatio is (L1+0.05)/(L2+0.05) with L1 the lighter color, in [1, 21].
func ContrastRatio(a, b RGB8) float64 {
	la, lb := RelativeLuminance(a), RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// ContrastTier maps a ratio to its tier. Ratios below 4.5 fail for body text.
func ContrastTier(ratio float64) Tier {
	switch {
	case ratio >= minAAA:
		return TierAAA
	case ratio >= minAA:
		return TierAA
	default:
		return TierFail
	}
}

// #endregion luminance

// #region check

// ContrastResult is a checked foreground/background pair.
type ContrastResult struct {
	Foreground RGB8
	Background RGB8
	Ratio      float64
	Tier       Tier
}

// CheckContrast parses two colors and reports their ratio and tier.
func CheckContrast(fg, bg string) (ContrastResult, error) {
	f, err := ParseRGB(fg)
	if err != nil {
		return ContrastResult{}, fmt.Errorf("foreground: %w", err)
	}
	b, err := ParseRGB(bg)
	if err != nil {
		return ContrastResult{}, fmt.Errorf("background: %w", err)
	}
	ratio := ContrastRatio(f, b)
	return ContrastResult{Foreground: f, Background: b, Ratio: ratio, Tier: ContrastTier(ratio)}, nil
}

// #endregion check

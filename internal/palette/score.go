package palette

import (
	"fmt"
	"math"
)

// denylist holds framework-default hexes, uppercase.
var denylist = map[string]bool{
	"#3B82F6": true, // tailwind blue-500
	"#2563EB": true,
	"#60A5FA": true,
	"#1D4ED8": true,
	"#8B5CF6": true, // violet-500
	"#6366F1": true, // indigo-500
	"#007BFF": true, // bootstrap primary
	"#000000": true,
	"#FFFFFF": true,
}

// ScoreColor judges one color value. Perceptual color spaces are never
// generic. Otherwise a color is generic when its hex is a known framework
// default or its saturation or lightness is an exact multiple of 10.
func ScoreColor(raw string) (ColorScore, error) {
	p, err := parseColor(raw)
	if err != nil {
		return ColorScore{}, err
	}
	if p.space == SpacePerceptual {
		return ColorScore{Raw: raw, Score: 100, Reason: "perceptual color space"}, nil
	}

	if hex := p.rgb.Hex(); denylist[hex] {
		return ColorScore{
			Raw:       raw,
			IsGeneric: true,
			Score:     0,
			Reason:    fmt.Sprintf("%s is a framework default", hex),
		}, nil
	}
	if p.hasSL {
		if roundTen(p.s) {
			return ColorScore{
				Raw:       raw,
				IsGeneric: true,
				Score:     40,
				Reason:    fmt.Sprintf("saturation %g%% is a round value", round2(p.s)),
			}, nil
		}
		if roundTen(p.l) {
			return ColorScore{
				Raw:       raw,
				IsGeneric: true,
				Score:     40,
				Reason:    fmt.Sprintf("lightness %g%% is a round value", round2(p.l)),
			}, nil
		}
	}
	return ColorScore{Raw: raw, Score: 100, Reason: "hand-tuned values"}, nil
}

// roundTen reports whether v is an exact multiple of 10, allowing float noise
// from rgb-to-hsl conversion.
func roundTen(v float64) bool {
	r := math.Round(v)
	if math.Abs(v-r) > 1e-6 {
		return false
	}
	return int(r)%10 == 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

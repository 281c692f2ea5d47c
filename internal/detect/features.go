package detect

import (
	"github.com/danielpatrickdp/soulscan/internal/signals"
	"github.com/danielpatrickdp/soulscan/internal/token"
)

// Modern feature names recognised by the features detector.
const (
	FeatureAnchorPositioning = "anchor-positioning"
	FeatureHas               = ":has()"
	FeatureViewTransition    = "view-transition"
	FeatureOklch             = "oklch"
	FeatureLch               = "lch"
	FeatureContainerQueries  = "container-queries"
	FeatureContentVisibility = "content-visibility"
	FeatureSpeculationRules  = "speculation-rules"
	FeatureNesting           = "nesting"
)

// Personality markers: small deliberate touches no template ships with.
const (
	MarkerSubtleRotation = "subtle-rotation"
	MarkerOrganicShape   = "organic-shape"
	MarkerCustomCursor   = "custom-cursor"
)

var modernFeatures = map[string]bool{
	FeatureAnchorPositioning: true,
	FeatureHas:               true,
	FeatureViewTransition:    true,
	FeatureOklch:             true,
	FeatureLch:               true,
	FeatureContainerQueries:  true,
	FeatureContentVisibility: true,
	FeatureSpeculationRules:  true,
	FeatureNesting:           true,
}

var personalityMarkers = map[string]string{
	MarkerSubtleRotation: "subtle rotation",
	MarkerOrganicShape:   "organic clip-path shape",
	MarkerCustomCursor:   "custom cursor",
}

// Features rewards use of recent platform features.
type Features struct{}

// NewFeatures creates the modern-feature detector.
func NewFeatures() *Features { return &Features{} }

func (*Features) Category() signals.Category { return signals.CategoryFeatures }

// Analyze emits one bonus per distinct allowlisted feature or personality
// marker; repeats and unknown names are ignored.
func (d *Features) Analyze(tokens []token.Token) ([]signals.Signal, error) {
	var out []signals.Signal
	seen := map[string]bool{}
	for _, t := range tokens {
		f, ok := t.(token.Feature)
		if !ok || seen[f.Name] {
			continue
		}
		if modernFeatures[f.Name] {
			seen[f.Name] = true
			out = append(out, signals.Info(d.Category(), signals.FeatureBonus, "uses "+f.Name, f))
		} else if label, ok := personalityMarkers[f.Name]; ok {
			seen[f.Name] = true
			out = append(out, signals.Info(d.Category(), signals.PersonalityBonus, "personality: "+label, f))
		}
	}
	return out, nil
}

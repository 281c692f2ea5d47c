package detect

import (
	"fmt"
	"math"

	"github.com/danielpatrickdp/soulscan/internal/physics"
	"github.com/danielpatrickdp/soulscan/internal/signals"
	"github.com/danielpatrickdp/soulscan/internal/token"
)

// Motion judges transition and animation timing.
type Motion struct{}

// NewMotion creates the motion-timing detector.
func NewMotion() *Motion { return &Motion{} }

func (*Motion) Category() signals.Category { return signals.CategoryMotion }

// Analyze classifies every non-zero duration with its easing. Stock presets
// are minor signals, physically derived timing earns a small bonus, and
// everything in between is silent. An easing that cannot be sampled is judged
// on its duration alone.
func (d *Motion) Analyze(tokens []token.Token) ([]signals.Signal, error) {
	var out []signals.Signal
	for _, t := range tokens {
		dur, ok := t.(token.Duration)
		if !ok {
			continue
		}
		if math.IsNaN(dur.Ms) || math.IsInf(dur.Ms, 0) || dur.Ms < 0 {
			return nil, fmt.Errorf("%w: %s: duration %vms", ErrMalformedToken, dur.At, dur.Ms)
		}
		if dur.Ms == 0 {
			continue
		}

		// nil curve on unknown easing
		curve, _ := physics.SampleEasing(dur.Easing, physics.DefaultSamples)
		j := physics.ClassifyDuration(dur.Ms, curve)
		switch j.Verdict {
		case physics.VerdictClinical:
			out = append(out, signals.Minor(d.Category(), j.Reason, dur))
		case physics.VerdictPhysical:
			out = append(out, signals.Info(d.Category(), signals.PhysicalBonus, j.Reason, dur))
		}
	}
	return out, nil
}

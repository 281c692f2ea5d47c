package detect

import (
	"fmt"
	"math"
	"strings"

	"github.com/danielpatrickdp/soulscan/internal/signals"
	"github.com/danielpatrickdp/soulscan/internal/token"
)

const remPx = 16

var spacingProps = []string{"padding", "margin", "gap", "row-gap", "column-gap", "inset"}

// Spacing flags files whose spacing values snap to a single rigid grid.
type Spacing struct{}

// NewSpacing creates the grid-regularity detector.
func NewSpacing() *Spacing { return &Spacing{} }

func (*Spacing) Category() signals.Category { return signals.CategorySpacing }

// Analyze collects pixel spacing values (rem converted at 16px, zeros
// dropped) and reports a major signal when most of them are multiples of the
// grid unit. Small samples are reported as not evaluable.
func (d *Spacing) Analyze(tokens []token.Token) ([]signals.Signal, error) {
	var values []float64
	for _, t := range tokens {
		n, ok := t.(token.Numeric)
		if !ok || !isSpacingProperty(n.Context) {
			continue
		}
		if math.IsNaN(n.Value) || math.IsInf(n.Value, 0) {
			return nil, fmt.Errorf("%w: %s: spacing value %v", ErrMalformedToken, n.At, n.Value)
		}
		var px float64
		switch strings.ToLower(n.Unit) {
		case "px", "":
			px = n.Value
		case "rem":
			px = n.Value * remPx
		default:
			continue
		}
		if px == 0 {
			continue
		}
		values = append(values, math.Abs(px))
	}

	if len(values) < signals.SpacingMinSample {
		return []signals.Signal{signals.Info(d.Category(), signals.NotEvaluable,
			fmt.Sprintf("insufficient sample: %d spacing values", len(values)), nil)}, nil
	}

	onGrid := 0
	for _, v := range values {
		if math.Mod(v, signals.SpacingGridUnit) == 0 {
			onGrid++
		}
	}
	ratio := float64(onGrid) / float64(len(values))
	if ratio >= signals.SpacingGridRatio {
		return []signals.Signal{signals.Major(d.Category(),
			fmt.Sprintf("%d of %d spacing values sit on a rigid %dpx grid", onGrid, len(values), signals.SpacingGridUnit), nil)}, nil
	}
	return nil, nil
}

func isSpacingProperty(ctx string) bool {
	ctx = strings.ToLower(ctx)
	for _, p := range spacingProps {
		if ctx == p || strings.HasPrefix(ctx, p+"-") {
			return true
		}
	}
	return false
}

package detect

import (
	"fmt"

	"github.com/danielpatrickdp/soulscan/internal/palette"
	"github.com/danielpatrickdp/soulscan/internal/signals"
	"github.com/danielpatrickdp/soulscan/internal/token"
)

// Color flags framework-default and round-valued color literals.
type Color struct{}

// NewColor creates the color-genericness detector.
func NewColor() *Color { return &Color{} }

func (*Color) Category() signals.Category { return signals.CategoryColor }

// Analyze scores each color literal. Every generic literal is a minor signal;
// when enough literals are present and at least half are generic the file as
// a whole also gets a major signal. Too few literals for the file-level rule
// is noted with a zero-delta info signal.
func (d *Color) Analyze(tokens []token.Token) ([]signals.Signal, error) {
	var out []signals.Signal
	total, generic := 0, 0
	for _, t := range tokens {
		c, ok := t.(token.Color)
		if !ok {
			continue
		}
		score, err := palette.ScoreColor(c.Raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMalformedToken, c.At, err)
		}
		total++
		if score.IsGeneric {
			generic++
			out = append(out, signals.Minor(d.Category(),
				fmt.Sprintf("generic color %s: %s", c.Raw, score.Reason), c))
		}
	}

	if total < signals.ColorMinSample {
		out = append(out, signals.Info(d.Category(), signals.NotEvaluable,
			fmt.Sprintf("insufficient sample: %d colors", total), nil))
		return out, nil
	}
	if ratio := float64(generic) / float64(total); ratio >= signals.ColorGenericRatio {
		out = append(out, signals.Major(d.Category(),
			fmt.Sprintf("%d of %d colors are generic", generic, total), nil))
	}
	return out, nil
}

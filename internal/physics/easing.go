package physics

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultSamples is the curve resolution used when judging easings.
const DefaultSamples = 21

// ErrUnknownEasing is returned for timing functions that cannot be sampled.
var ErrUnknownEasing = errors.New("unknown easing")

// #region keywords

// bezier is a CSS cubic-bezier(x1, y1, x2, y2) timing function.
type bezier struct {
	x1, y1, x2, y2 float64
}

var keywordCurves = map[string]bezier{
	"ease":        {0.25, 0.1, 0.25, 1},
	"ease-in":     {0.42, 0, 1, 1},
	"ease-out":    {0, 0, 0.58, 1},
	"ease-in-out": {0.42, 0, 0.58, 1},
}

// #endregion keywords

// #region sample

// SampleEasing samples a CSS timing function at n evenly spaced progress
// points. Empty text means the CSS default "ease". Supports keywords,
// cubic-bezier(...) and linear(...) point lists.
func SampleEasing(text string, n int) ([]float64, error) {
	if n < 2 {
		n = 2
	}
	e := strings.ToLower(strings.TrimSpace(text))
	if e == "" {
		e = "ease"
	}

	switch {
	case e == "linear":
		out := make([]float64, n)
		for i := range out {
			out[i] = float64(i) / float64(n-1)
		}
		return out, nil
	case strings.HasPrefix(e, "linear("):
		return parseLinearPoints(e)
	case strings.HasPrefix(e, "cubic-bezier("):
		b, err := parseBezier(e)
		if err != nil {
			return nil, err
		}
		return b.sample(n), nil
	}

	if b, ok := keywordCurves[e]; ok {
		return b.sample(n), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, text)
}

func (b bezier) sample(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = b.at(float64(i) / float64(n-1))
	}
	return out
}

// at returns the curve's output for input progress x by solving x(t) = x.
func (b bezier) at(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	t := x
	for i := 0; i < 8; i++ {
		dx := bezierCoord(t, b.x1, b.x2) - x
		if math.Abs(dx) < 1e-7 {
			return bezierCoord(t, b.y1, b.y2)
		}
		d := bezierSlope(t, b.x1, b.x2)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= dx / d
	}
	// Newton stalled; bisect.
	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < 50; i++ {
		v := bezierCoord(t, b.x1, b.x2)
		if math.Abs(v-x) < 1e-7 {
			break
		}
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return bezierCoord(t, b.y1, b.y2)
}

// bezierCoord evaluates one axis of a cubic bezier anchored at 0 and 1.
func bezierCoord(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

func bezierSlope(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
}

// #endregion sample

// #region parse

func parseBezier(e string) (bezier, error) {
	args, err := functionArgs(e, "cubic-bezier")
	if err != nil {
		return bezier{}, err
	}
	if len(args) != 4 {
		return bezier{}, fmt.Errorf("%w: cubic-bezier needs 4 values, got %d", ErrUnknownEasing, len(args))
	}
	var v [4]float64
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return bezier{}, fmt.Errorf("%w: %q", ErrUnknownEasing, a)
		}
		v[i] = f
	}
	if v[0] < 0 || v[0] > 1 || v[2] < 0 || v[2] > 1 {
		return bezier{}, fmt.Errorf("%w: cubic-bezier x values must be in [0,1]", ErrUnknownEasing)
	}
	return bezier{v[0], v[1], v[2], v[3]}, nil
}

// parseLinearPoints reads linear(...) outputs, ignoring percentage stops.
func parseLinearPoints(e string) ([]float64, error) {
	args, err := functionArgs(e, "linear")
	if err != nil {
		return nil, err
	}
	if len(args) < 2 {
		return nil, fmt.Errorf("%w: linear() needs at least 2 points", ErrUnknownEasing)
	}
	out := make([]float64, 0, len(args))
	for _, a := range args {
		fields := strings.Fields(a)
		if len(fields) == 0 {
			return nil, fmt.Errorf("%w: empty linear() point", ErrUnknownEasing)
		}
		f, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, fields[0])
		}
		out = append(out, f)
	}
	return out, nil
}

func functionArgs(e, name string) ([]string, error) {
	if !strings.HasPrefix(e, name+"(") || !strings.HasSuffix(e, ")") {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, e)
	}
	inner := e[len(name)+1 : len(e)-1]
	parts := strings.Split(inner, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

// #endregion parse

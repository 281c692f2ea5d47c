package export

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/danielpatrickdp/soulscan/internal/physics"
)

// CurvePoints is the number of samples in an exported linear() easing.
const CurvePoints = 32

// #region spring

// Spring renders cfg in the requested format.
func Spring(cfg physics.SpringConfig, f Format) (string, error) {
	switch f {
	case FormatCSS:
		return SpringCSS(cfg)
	case FormatConfig:
		return SpringConfig(cfg)
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// SpringCSS emits the canonical duration and a linear() easing that traces
// the spring's step response.
func SpringCSS(cfg physics.SpringConfig) (string, error) {
	res, err := physics.ComputeSpring(cfg)
	if err != nil {
		return "", err
	}
	curve, err := physics.SpringCurve(cfg, CurvePoints)
	if err != nil {
		return "", err
	}
	points := make([]string, len(curve))
	for i, v := range curve {
		// +0 folds negative zero
		points[i] = strconv.FormatFloat(math.Round(v*1e4)/1e4+0, 'f', -1, 64)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "/* %s spring, zeta %.3f */\n", res.Classification, res.DampingRatio)
	b.WriteString(":root {\n")
	fmt.Fprintf(&b, "  --spring-duration: %dms;\n", res.CanonicalDurationMs)
	fmt.Fprintf(&b, "  --spring-easing: linear(%s);\n", strings.Join(points, ", "))
	b.WriteString("}\n")
	return b.String(), nil
}

// SpringConfig emits framer-style spring parameters with the derived values.
func SpringConfig(cfg physics.SpringConfig) (string, error) {
	res, err := physics.ComputeSpring(cfg)
	if err != nil {
		return "", err
	}
	return render(map[string]any{
		"framer": map[string]any{
			"stiffness": cfg.Stiffness,
			"damping":   cfg.Damping,
			"mass":      cfg.Mass,
		},
		"durationMs":     res.CanonicalDurationMs,
		"dampingRatio":   res.DampingRatio,
		"overshootPct":   res.OvershootPct,
		"classification": string(res.Classification),
	})
}

// #endregion spring

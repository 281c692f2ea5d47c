package palette

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrMalformedColor is returned for color text that cannot be parsed.
var ErrMalformedColor = errors.New("malformed color")

// Color spaces recognised in source text.
const (
	SpaceHex        = "hex"
	SpaceRGB        = "rgb"
	SpaceHSL        = "hsl"
	SpacePerceptual = "perceptual"
)

var perceptualFuncs = []string{"oklch(", "oklab(", "lch(", "lab(", "color("}

// parsed is a color as written plus its sRGB value. hsl holds the authored
// saturation and lightness when the source used hsl().
type parsed struct {
	space string
	rgb   RGB8
	s, l  float64
	hasSL bool
}

// SpaceOf classifies raw color text without fully parsing it.
func SpaceOf(raw string) string {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.HasPrefix(v, "#"):
		return SpaceHex
	case strings.HasPrefix(v, "rgb"):
		return SpaceRGB
	case strings.HasPrefix(v, "hsl"):
		return SpaceHSL
	}
	for _, p := range perceptualFuncs {
		if strings.HasPrefix(v, p) {
			return SpacePerceptual
		}
	}
	return ""
}

// ParseRGB parses hex, rgb() or hsl() text to 8-bit sRGB.
func ParseRGB(raw string) (RGB8, error) {
	p, err := parseColor(raw)
	if err != nil {
		return RGB8{}, err
	}
	if p.space == SpacePerceptual {
		return RGB8{}, fmt.Errorf("%w: %q: perceptual spaces are not converted", ErrMalformedColor, raw)
	}
	return p.rgb, nil
}

func parseColor(raw string) (parsed, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch SpaceOf(v) {
	case SpaceHex:
		return parseHex(raw, v)
	case SpaceRGB:
		return parseRGBFunc(raw, v)
	case SpaceHSL:
		return parseHSLFunc(raw, v)
	case SpacePerceptual:
		return parsed{space: SpacePerceptual}, nil
	}
	return parsed{}, fmt.Errorf("%w: %q", ErrMalformedColor, raw)
}

func parseHex(raw, v string) (parsed, error) {
	// Drop the alpha channel of #rgba / #rrggbbaa.
	switch len(v) {
	case 5:
		v = v[:4]
	case 9:
		v = v[:7]
	case 4, 7:
	default:
		return parsed{}, fmt.Errorf("%w: %q", ErrMalformedColor, raw)
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return parsed{}, fmt.Errorf("%w: %q: %v", ErrMalformedColor, raw, err)
	}
	r, g, b := c.RGB255()
	_, s, l := c.Hsl()
	return parsed{space: SpaceHex, rgb: RGB8{r, g, b}, s: s * 100, l: l * 100, hasSL: true}, nil
}

func parseRGBFunc(raw, v string) (parsed, error) {
	args, err := colorArgs(raw, v)
	if err != nil {
		return parsed{}, err
	}
	var ch [3]float64
	for i := 0; i < 3; i++ {
		a := args[i]
		pct := strings.HasSuffix(a, "%")
		f, err := strconv.ParseFloat(strings.TrimSuffix(a, "%"), 64)
		if err != nil {
			return parsed{}, fmt.Errorf("%w: %q", ErrMalformedColor, raw)
		}
		if pct {
			f = f * 255 / 100
		}
		if f < 0 || f > 255 {
			return parsed{}, fmt.Errorf("%w: %q: channel out of range", ErrMalformedColor, raw)
		}
		ch[i] = f / 255
	}
	c := colorful.Color{R: ch[0], G: ch[1], B: ch[2]}
	r, g, b := c.RGB255()
	_, s, l := c.Hsl()
	return parsed{space: SpaceRGB, rgb: RGB8{r, g, b}, s: s * 100, l: l * 100, hasSL: true}, nil
}

func parseHSLFunc(raw, v string) (parsed, error) {
	args, err := colorArgs(raw, v)
	if err != nil {
		return parsed{}, err
	}
	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return parsed{}, fmt.Errorf("%w: %q", ErrMalformedColor, raw)
	}
	var sl [2]float64
	for i := 0; i < 2; i++ {
		f, err := strconv.ParseFloat(strings.TrimSuffix(args[i+1], "%"), 64)
		if err != nil || f < 0 || f > 100 {
			return parsed{}, fmt.Errorf("%w: %q", ErrMalformedColor, raw)
		}
		sl[i] = f
	}
	c := colorful.Hsl(h, sl[0]/100, sl[1]/100).Clamped()
	r, g, b := c.RGB255()
	return parsed{space: SpaceHSL, rgb: RGB8{r, g, b}, s: sl[0], l: sl[1], hasSL: true}, nil
}

// colorArgs splits the arguments of rgb()/hsl() in either the comma or the
// space-separated syntax, dropping any alpha component.
func colorArgs(raw, v string) ([]string, error) {
	open := strings.IndexByte(v, '(')
	if open < 0 || !strings.HasSuffix(v, ")") {
		return nil, fmt.Errorf("%w: %q", ErrMalformedColor, raw)
	}
	inner := v[open+1 : len(v)-1]
	if i := strings.IndexByte(inner, '/'); i >= 0 {
		inner = inner[:i]
	}
	inner = strings.ReplaceAll(inner, ",", " ")
	args := strings.Fields(inner)
	if len(args) < 3 || len(args) > 4 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedColor, raw)
	}
	return args[:3], nil
}

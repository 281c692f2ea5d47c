package scan

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/danielpatrickdp/soulscan/internal/detect"
	"github.com/danielpatrickdp/soulscan/internal/palette"
	"github.com/danielpatrickdp/soulscan/internal/token"
)

// #region patterns

var (
	spacingDecl = regexp.MustCompile(`(?:^|[\s;{,"'])((?:padding|margin|inset)(?:-[a-z]+|[A-Z][a-z]+)*|gap|row-gap|column-gap|rowGap|columnGap)\s*:\s*([^;{}]+)`)
	number      = regexp.MustCompile(`(?:^|[\s(,'"])(-?\d*\.?\d+)([a-z%]*)`)
	cssVar      = regexp.MustCompile(`var\([^)]*\)`)

	twSpacing  = regexp.MustCompile(`^(p|px|py|pt|pr|pb|pl|ps|pe|m|mx|my|mt|mr|mb|ml|gap|gap-x|gap-y|space-x|space-y)-(\d+(?:\.5)?|\[\d*\.?\d+(?:px|rem)\])$`)
	twDuration = regexp.MustCompile(`^duration-(\d+|\[\d+ms\])$`)
	twEase     = regexp.MustCompile(`^ease-(linear|in-out|in|out)$`)

	hexColor  = regexp.MustCompile(`(?:^|[^&\w])(#[0-9a-fA-F]{8}|#[0-9a-fA-F]{6}|#[0-9a-fA-F]{3,4})\b`)
	funcColor = regexp.MustCompile(`(?i)\b((?:rgba?|hsla?|oklch|oklab|lch|lab)\([^)]*\))`)

	motionDecl = regexp.MustCompile(`(?i)(?:^|[\s;{,"'])(transition|animation|transition-duration|animation-duration)\s*:\s*([^;{}]+)`)
	timeValue  = regexp.MustCompile(`(?i)(?:^|[\s'"])(\d*\.?\d+)(ms|s)\b`)
	easingText = regexp.MustCompile(`(?i)cubic-bezier\([^)]*\)|linear\([^)]*\)|steps\([^)]*\)|\b(?:ease-in-out|ease-in|ease-out|ease|linear|step-start|step-end)\b`)

	ariaLabel  = regexp.MustCompile(`aria-label\s*=\s*(?:"([^"]*)"|'([^']*)'|\{\s*["'` + "`" + `]([^"'` + "`" + `]*)["'` + "`" + `]\s*\})`)
	buttonText = regexp.MustCompile(`<button[^>]*>\s*([^<{]+?)\s*</button>`)
)

// featureMarkers maps canonical feature and personality names to their
// source markers. cssOnly markers are only meaningful in plain .css, where
// nesting is native rather than preprocessor syntax.
var featureMarkers = []struct {
	name    string
	pattern *regexp.Regexp
	cssOnly bool
}{
	{detect.FeatureAnchorPositioning, regexp.MustCompile(`anchor\(|position-anchor|anchor-name`), false},
	{detect.FeatureHas, regexp.MustCompile(`:has\(`), false},
	{detect.FeatureViewTransition, regexp.MustCompile(`::view-transition|view-transition-name|startViewTransition`), false},
	{detect.FeatureOklch, regexp.MustCompile(`oklch\(`), false},
	{detect.FeatureLch, regexp.MustCompile(`\blch\(`), false},
	{detect.FeatureContainerQueries, regexp.MustCompile(`@container|container-type`), false},
	{detect.FeatureContentVisibility, regexp.MustCompile(`content-visibility\s*:\s*auto`), false},
	{detect.FeatureSpeculationRules, regexp.MustCompile(`type=["']speculationrules["']`), false},
	{detect.FeatureNesting, regexp.MustCompile(`^\s*&\s*[{:.#>+~\[a-z]`), true},
	{detect.MarkerSubtleRotation, regexp.MustCompile(`rotate\(\s*-?(?:0\.[1-9]|1\.[0-5])deg\s*\)`), false},
	{detect.MarkerOrganicShape, regexp.MustCompile(`clip-?[pP]ath\s*:\s*['"]?(?:polygon|path|circle)\(`), false},
	{detect.MarkerCustomCursor, regexp.MustCompile(`cursor\s*:\s*['"]?(?:url\(|crosshair)`), false},
}

// tailwind maps utility prefixes to the property they set.
var tailwind = map[string]string{
	"p": "padding", "px": "padding-inline", "py": "padding-block",
	"pt": "padding-top", "pr": "padding-right", "pb": "padding-bottom", "pl": "padding-left",
	"ps": "padding-inline-start", "pe": "padding-inline-end",
	"m": "margin", "mx": "margin-inline", "my": "margin-block",
	"mt": "margin-top", "mr": "margin-right", "mb": "margin-bottom", "ml": "margin-left",
	"gap": "gap", "gap-x": "column-gap", "gap-y": "row-gap",
	"space-x": "column-gap", "space-y": "row-gap",
}

var tailwindEasing = map[string]string{
	"linear": "linear",
	"in":     "cubic-bezier(0.4, 0, 1, 1)",
	"out":    "cubic-bezier(0, 0, 0.2, 1)",
	"in-out": "cubic-bezier(0.4, 0, 0.2, 1)",
}

// tailwindDefaultEasing is the timing function tailwind applies with a bare duration-*.
const tailwindDefaultEasing = "cubic-bezier(0.4, 0, 0.2, 1)"

// #endregion patterns

// #region tokenize

// Tokenize extracts tokens from one file's text, line by line.
func Tokenize(path string, content string) []token.Token {
	plainCSS := strings.EqualFold(filepath.Ext(path), ".css")
	var out []token.Token
	for i, line := range strings.Split(content, "\n") {
		at := token.Position{File: path, Line: i + 1}
		out = appendSpacing(out, line, at)
		out = appendColors(out, line, at)
		out = appendMotion(out, line, at)
		out = appendAria(out, line, at)
		for _, fm := range featureMarkers {
			if fm.cssOnly && !plainCSS {
				continue
			}
			if fm.pattern.MatchString(line) {
				out = append(out, token.Feature{Name: fm.name, At: at})
			}
		}
	}
	return out
}

func appendSpacing(out []token.Token, line string, at token.Position) []token.Token {
	for _, m := range spacingDecl.FindAllStringSubmatch(line, -1) {
		prop := kebab(m[1])
		value := cssVar.ReplaceAllString(m[2], "")
		for _, n := range number.FindAllStringSubmatch(value, -1) {
			unit := n[2]
			if unit != "" && unit != "px" && unit != "rem" {
				continue
			}
			v, err := strconv.ParseFloat(n[1], 64)
			if err != nil {
				continue
			}
			out = append(out, token.Numeric{Value: v, Unit: unitOrPx(unit), Context: prop, At: at})
		}
	}

	for _, word := range classWords(line) {
		m := twSpacing.FindStringSubmatch(word)
		if m == nil {
			continue
		}
		prop := tailwind[m[1]]
		raw := m[2]
		if strings.HasPrefix(raw, "[") {
			// arbitrary value, e.g. p-[13px]
			inner := strings.Trim(raw, "[]")
			unit := "px"
			if strings.HasSuffix(inner, "rem") {
				unit = "rem"
			}
			v, err := strconv.ParseFloat(strings.TrimSuffix(inner, unit), 64)
			if err == nil {
				out = append(out, token.Numeric{Value: v, Unit: unit, Context: prop, At: at})
			}
			continue
		}
		steps, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		out = append(out, token.Numeric{Value: steps * 4, Unit: "px", Context: prop, At: at})
	}
	return out
}

func appendColors(out []token.Token, line string, at token.Position) []token.Token {
	for _, m := range hexColor.FindAllStringSubmatch(line, -1) {
		out = appendColor(out, m[1], at)
	}
	for _, m := range funcColor.FindAllStringSubmatch(line, -1) {
		if strings.Contains(m[1], "var(") || strings.Contains(m[1], "calc(") {
			continue
		}
		out = appendColor(out, m[1], at)
	}
	return out
}

// appendColor keeps only literals the palette package can judge.
func appendColor(out []token.Token, raw string, at token.Position) []token.Token {
	space := palette.SpaceOf(raw)
	if space == "" {
		return out
	}
	if space == palette.SpacePerceptual {
		fn := strings.ToLower(raw[:strings.IndexByte(raw, '(')])
		return append(out, token.Color{Raw: raw, Space: fn, At: at})
	}
	if _, err := palette.ParseRGB(raw); err != nil {
		return out
	}
	return append(out, token.Color{Raw: raw, Space: space, At: at})
}

func appendMotion(out []token.Token, line string, at token.Position) []token.Token {
	for _, m := range motionDecl.FindAllStringSubmatch(line, -1) {
		for _, part := range splitTopLevel(m[2]) {
			tv := timeValue.FindStringSubmatch(part)
			if tv == nil {
				continue
			}
			ms, err := strconv.ParseFloat(tv[1], 64)
			if err != nil {
				continue
			}
			if strings.EqualFold(tv[2], "s") {
				ms *= 1000
			}
			out = append(out, token.Duration{Ms: ms, Easing: easingText.FindString(part), At: at})
		}
	}

	words := classWords(line)
	easing := tailwindDefaultEasing
	for _, word := range words {
		if e := twEase.FindStringSubmatch(word); e != nil {
			easing = tailwindEasing[e[1]]
		}
	}
	for _, word := range words {
		m := twDuration.FindStringSubmatch(word)
		if m == nil {
			continue
		}
		ms, err := strconv.ParseFloat(strings.TrimSuffix(strings.Trim(m[1], "[]"), "ms"), 64)
		if err != nil {
			continue
		}
		out = append(out, token.Duration{Ms: ms, Easing: easing, At: at})
	}
	return out
}

func appendAria(out []token.Token, line string, at token.Position) []token.Token {
	for _, m := range ariaLabel.FindAllStringSubmatch(line, -1) {
		for _, g := range m[1:] {
			if g != "" {
				out = append(out, token.Aria{Text: g, At: at})
				break
			}
		}
	}
	for _, m := range buttonText.FindAllStringSubmatch(line, -1) {
		out = append(out, token.Aria{Text: m[1], At: at})
	}
	return out
}

// #endregion tokenize

// #region helpers

// classWords returns the whitespace- and quote-separated words of a line that
// carries a class attribute, or nil.
func classWords(line string) []string {
	if !strings.Contains(line, "class") {
		return nil
	}
	return strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == '"' || r == '\'' || r == '`' || r == '{' || r == '}'
	})
}

// splitTopLevel splits on commas outside parentheses.
func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// kebab converts camelCase style-object keys to CSS property names.
func kebab(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func unitOrPx(u string) string {
	if u == "" {
		return "px"
	}
	return u
}

// #endregion helpers

package export

import (
	"fmt"
	"strings"

	"github.com/danielpatrickdp/soulscan/internal/palette"
)

// #region palette

// Palette renders p in the requested format.
func Palette(p palette.Palette, f Format) (string, error) {
	switch f {
	case FormatCSS:
		return PaletteCSS(p), nil
	case FormatConfig:
		return PaletteConfig(p)
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// PaletteCSS emits :root custom properties for the light scheme and a
// prefers-color-scheme override for the dark one.
func PaletteCSS(p palette.Palette) string {
	var b strings.Builder
	fmt.Fprintf(&b, "/* %s: %s (seed %d) */\n", p.Archetype, p.Psychology, p.Seed)
	b.WriteString(":root {\n")
	writeScheme(&b, p.Scheme, "  ")
	b.WriteString("}\n\n")
	b.WriteString("@media (prefers-color-scheme: dark) {\n  :root {\n")
	writeScheme(&b, p.Dark, "    ")
	b.WriteString("  }\n}\n")
	return b.String()
}

func writeScheme(b *strings.Builder, s palette.Scheme, indent string) {
	for _, r := range roles(s) {
		fmt.Fprintf(b, "%s--color-%s: %s;\n", indent, r.name, r.color)
	}
}

type role struct {
	name  string
	color palette.HSL
}

func roles(s palette.Scheme) []role {
	return []role{
		{"primary", s.Primary},
		{"accent", s.Accent},
		{"surface", s.Surface},
		{"text", s.Text},
		{"muted", s.Muted},
	}
}

// PaletteConfig emits the palette as a structured JSON object.
func PaletteConfig(p palette.Palette) (string, error) {
	contrast := make(map[string]any, len(p.Contrast))
	for k, v := range p.Contrast {
		contrast[k] = v
	}
	return render(map[string]any{
		"archetype":  p.Archetype,
		"psychology": p.Psychology,
		"seed":       p.Seed,
		"light":      schemeMap(p.Scheme),
		"dark":       schemeMap(p.Dark),
		"contrast":   contrast,
	})
}

func schemeMap(s palette.Scheme) map[string]any {
	out := make(map[string]any, 5)
	for _, r := range roles(s) {
		out[r.name] = map[string]any{
			"hsl": r.color.String(),
			"hex": r.color.Hex(),
		}
	}
	return out
}

// #endregion palette

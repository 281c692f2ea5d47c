package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// #region hsl

// HSL is an integer hue/saturation/lightness triple. S and L are percents.
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// RGB converts to 8-bit sRGB.
func (c HSL) RGB() RGB8 {
	col := colorful.Hsl(float64(c.H), float64(c.S)/100, float64(c.L)/100).Clamped()
	r, g, b := col.RGB255()
	return RGB8{R: r, G: g, B: b}
}

// Hex returns the #RRGGBB form.
func (c HSL) Hex() string {
	return c.RGB().Hex()
}

// #endregion hsl

// #region rgb

// RGB8 is an 8-bit-per-channel sRGB color.
type RGB8 struct {
	R, G, B uint8
}

// Hex returns the uppercase #RRGGBB form.
func (c RGB8) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// #endregion rgb

// #region palette

// Scheme is one set of role colors.
type Scheme struct {
	Primary HSL `json:"primary"`
	Accent  HSL `json:"accent"`
	Surface HSL `json:"surface"`
	Text    HSL `json:"text"`
	Muted   HSL `json:"muted"`
}

// Palette is a generated light scheme plus its dark variant.
type Palette struct {
	Archetype  string `json:"archetype"`
	Psychology string `json:"psychology"`
	Seed       int64  `json:"seed"`
	Scheme
	Dark     Scheme             `json:"dark"`
	Contrast map[string]float64 `json:"contrast"`
}

// Options controls palette generation.
type Options struct {
	Seed int64
}

// ColorScore is the judgement of a single color value.
type ColorScore struct {
	Raw       string
	IsGeneric bool
	Score     int
	Reason    string
}

// #endregion palette

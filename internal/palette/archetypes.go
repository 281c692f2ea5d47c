package palette

import (
	"errors"
	"fmt"
)

// ErrUnknownArchetype is returned when a name is not one of the fixed twelve.
var ErrUnknownArchetype = errors.New("unknown archetype")

// #region band

// Band bounds hue (degrees) and saturation/lightness (percent), inclusive.
type Band struct {
	Hue        [2]int
	Saturation [2]int
	Lightness  [2]int
}

// Archetype is a color personality: one band per palette role.
type Archetype struct {
	Name       string
	Psychology string
	Primary    Band
	Accent     Band
	Neutral    Band
}

// #endregion band

// #region table

// archetypes is the process-wide archetype table, read-only after init.
var archetypes = []Archetype{
	{
		Name:       "rustic",
		Psychology: "Evokes warmth, authenticity, handcrafted quality. Users feel grounded and comfortable.",
		Primary:    Band{Hue: [2]int{12, 24}, Saturation: [2]int{65, 85}, Lightness: [2]int{38, 52}},
		Accent:     Band{Hue: [2]int{36, 48}, Saturation: [2]int{70, 95}, Lightness: [2]int{58, 72}},
		Neutral:    Band{Hue: [2]int{30, 40}, Saturation: [2]int{15, 30}, Lightness: [2]int{85, 95}},
	},
	{
		Name:       "edgy",
		Psychology: "Creates tension and excitement. Breaks conventions. Users feel energized and intrigued.",
		Primary:    Band{Hue: [2]int{332, 348}, Saturation: [2]int{75, 95}, Lightness: [2]int{35, 48}},
		Accent:     Band{Hue: [2]int{172, 188}, Saturation: [2]int{60, 80}, Lightness: [2]int{40, 55}},
		Neutral:    Band{Hue: [2]int{0, 12}, Saturation: [2]int{1, 5}, Lightness: [2]int{10, 18}},
	},
	{
		Name:       "minimal",
		Psychology: "Communicates sophistication and restraint. Users feel calm and focused.",
		Primary:    Band{Hue: [2]int{212, 228}, Saturation: [2]int{8, 20}, Lightness: [2]int{45, 58}},
		Accent:     Band{Hue: [2]int{28, 42}, Saturation: [2]int{85, 98}, Lightness: [2]int{55, 68}},
		Neutral:    Band{Hue: [2]int{212, 228}, Saturation: [2]int{5, 12}, Lightness: [2]int{95, 98}},
	},
	{
		Name:       "playful",
		Psychology: "Sparks joy and curiosity. Unexpected combinations. Users feel delighted.",
		Primary:    Band{Hue: [2]int{158, 172}, Saturation: [2]int{62, 78}, Lightness: [2]int{38, 52}},
		Accent:     Band{Hue: [2]int{22, 34}, Saturation: [2]int{85, 95}, Lightness: [2]int{52, 65}},
		Neutral:    Band{Hue: [2]int{42, 54}, Saturation: [2]int{20, 35}, Lightness: [2]int{92, 97}},
	},
	{
		Name:       "brutalist",
		Psychology: "Raw honesty, no decoration. Users feel clarity and directness.",
		Primary:    Band{Hue: [2]int{0, 12}, Saturation: [2]int{1, 4}, Lightness: [2]int{12, 20}},
		Accent:     Band{Hue: [2]int{0, 12}, Saturation: [2]int{1, 4}, Lightness: [2]int{95, 99}},
		Neutral:    Band{Hue: [2]int{0, 12}, Saturation: [2]int{1, 4}, Lightness: [2]int{75, 82}},
	},
	{
		Name:       "luxe",
		Psychology: "Premium positioning, refined taste. Users feel exclusive and valued.",
		Primary:    Band{Hue: [2]int{272, 288}, Saturation: [2]int{35, 50}, Lightness: [2]int{20, 30}},
		Accent:     Band{Hue: [2]int{38, 52}, Saturation: [2]int{75, 90}, Lightness: [2]int{48, 62}},
		Neutral:    Band{Hue: [2]int{24, 36}, Saturation: [2]int{10, 18}, Lightness: [2]int{96, 99}},
	},
	{
		Name:       "technical",
		Psychology: "Precision and modernity. Users feel efficiency and trust.",
		Primary:    Band{Hue: [2]int{192, 208}, Saturation: [2]int{45, 60}, Lightness: [2]int{35, 48}},
		Accent:     Band{Hue: [2]int{152, 168}, Saturation: [2]int{70, 85}, Lightness: [2]int{45, 58}},
		Neutral:    Band{Hue: [2]int{192, 208}, Saturation: [2]int{8, 15}, Lightness: [2]int{18, 25}},
	},
	{
		Name:       "organic",
		Psychology: "Natural harmony, living systems. Users feel connected and at ease.",
		Primary:    Band{Hue: [2]int{138, 152}, Saturation: [2]int{28, 42}, Lightness: [2]int{38, 52}},
		Accent:     Band{Hue: [2]int{18, 32}, Saturation: [2]int{65, 80}, Lightness: [2]int{52, 65}},
		Neutral:    Band{Hue: [2]int{84, 96}, Saturation: [2]int{12, 22}, Lightness: [2]int{92, 97}},
	},
	{
		Name:       "midnight",
		Psychology: "Intimate and mysterious. Users feel intrigue and depth.",
		Primary:    Band{Hue: [2]int{222, 238}, Saturation: [2]int{30, 45}, Lightness: [2]int{18, 28}},
		Accent:     Band{Hue: [2]int{44, 56}, Saturation: [2]int{80, 95}, Lightness: [2]int{52, 65}},
		Neutral:    Band{Hue: [2]int{222, 238}, Saturation: [2]int{10, 18}, Lightness: [2]int{95, 98}},
	},
	{
		Name:       "sunset",
		Psychology: "Nostalgic warmth, transitional beauty. Users feel emotional connection.",
		Primary:    Band{Hue: [2]int{8, 22}, Saturation: [2]int{75, 90}, Lightness: [2]int{45, 58}},
		Accent:     Band{Hue: [2]int{322, 338}, Saturation: [2]int{65, 80}, Lightness: [2]int{48, 62}},
		Neutral:    Band{Hue: [2]int{34, 46}, Saturation: [2]int{25, 38}, Lightness: [2]int{88, 95}},
	},
	{
		Name:       "ocean",
		Psychology: "Calming depth, vast possibility. Users feel serene and expansive.",
		Primary:    Band{Hue: [2]int{188, 202}, Saturation: [2]int{58, 72}, Lightness: [2]int{38, 52}},
		Accent:     Band{Hue: [2]int{172, 188}, Saturation: [2]int{45, 62}, Lightness: [2]int{65, 78}},
		Neutral:    Band{Hue: [2]int{192, 208}, Saturation: [2]int{18, 28}, Lightness: [2]int{92, 97}},
	},
	{
		Name:       "forest",
		Psychology: "Grounded vitality, fresh growth. Users feel renewal and stability.",
		Primary:    Band{Hue: [2]int{142, 158}, Saturation: [2]int{35, 52}, Lightness: [2]int{28, 40}},
		Accent:     Band{Hue: [2]int{78, 92}, Saturation: [2]int{40, 58}, Lightness: [2]int{55, 68}},
		Neutral:    Band{Hue: [2]int{114, 126}, Saturation: [2]int{8, 15}, Lightness: [2]int{94, 98}},
	},
}

var archetypeIndex = func() map[string]int {
	idx := make(map[string]int, len(archetypes))
	for i, a := range archetypes {
		idx[a.Name] = i
	}
	return idx
}()

// #endregion table

// #region lookup

// LookupArchetype returns the archetype with exactly this name. Near matches
// are not corrected.
func LookupArchetype(name string) (Archetype, error) {
	i, ok := archetypeIndex[name]
	if !ok {
		return Archetype{}, fmt.Errorf("%w: %q", ErrUnknownArchetype, name)
	}
	return archetypes[i], nil
}

// Archetypes returns the archetype table in its fixed order.
func Archetypes() []Archetype {
	out := make([]Archetype, len(archetypes))
	copy(out, archetypes)
	return out
}

// #endregion lookup

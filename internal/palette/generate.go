package palette

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"strconv"
)

// Contrast pair keys recorded on every palette.
const (
	PairTextOnSurface     = "text_on_surface"
	PairMutedOnSurface    = "muted_on_surface"
	PairPrimaryOnSurface  = "primary_on_surface"
	PairAccentOnSurface   = "accent_on_surface"
	PairDarkTextOnSurface = "dark_text_on_surface"
)

var (
	tintSaturation = [2]int{3, 9}

	lightText  = [2]int{10, 18}
	lightMuted = [2]int{42, 52}
	darkText   = [2]int{92, 98}
	darkMuted  = [2]int{62, 72}

	darkSurfaceSaturation = [2]int{6, 12}
	darkSurfaceLightness  = [2]int{8, 14}
)

// #region generate

// GeneratePalette draws one value per role from the archetype's bands. The
// same archetype and seed always produce the same palette, and no generated
// saturation or lightness is a multiple of 5.
func GeneratePalette(arch Archetype, opts Options) Palette {
	rng := rand.New(seedSource(arch.Name, opts.Seed))

	light := Scheme{
		Primary: draw(rng, arch.Primary),
		Accent:  draw(rng, arch.Accent),
		Surface: draw(rng, arch.Neutral),
	}
	textBand, mutedBand := lightText, lightMuted
	if light.Surface.L < 50 {
		textBand, mutedBand = darkText, darkMuted
	}
	light.Text = HSL{H: light.Surface.H, S: pick(rng, tintSaturation), L: pick(rng, textBand)}
	light.Muted = HSL{H: light.Surface.H, S: pick(rng, tintSaturation), L: pick(rng, mutedBand)}

	dark := Scheme{
		Primary: shift(rng, light.Primary, -12, -5),
		Accent:  shift(rng, light.Accent, -10, -8),
		Surface: HSL{H: light.Surface.H, S: pick(rng, darkSurfaceSaturation), L: pick(rng, darkSurfaceLightness)},
		Text:    HSL{H: light.Surface.H, S: pick(rng, tintSaturation), L: pick(rng, darkText)},
		Muted:   HSL{H: light.Surface.H, S: pick(rng, tintSaturation), L: pick(rng, darkMuted)},
	}

	return Palette{
		Archetype:  arch.Name,
		Psychology: arch.Psychology,
		Seed:       opts.Seed,
		Scheme:     light,
		Dark:       dark,
		Contrast: map[string]float64{
			PairTextOnSurface:     ContrastRatio(light.Text.RGB(), light.Surface.RGB()),
			PairMutedOnSurface:    ContrastRatio(light.Muted.RGB(), light.Surface.RGB()),
			PairPrimaryOnSurface:  ContrastRatio(light.Primary.RGB(), light.Surface.RGB()),
			PairAccentOnSurface:   ContrastRatio(light.Accent.RGB(), light.Surface.RGB()),
			PairDarkTextOnSurface: ContrastRatio(dark.Text.RGB(), dark.Surface.RGB()),
		},
	}
}

// GenerateNamed looks up an archetype by name and generates its palette.
func GenerateNamed(name string, opts Options) (Palette, error) {
	arch, err := LookupArchetype(name)
	if err != nil {
		return Palette{}, err
	}
	return GeneratePalette(arch, opts), nil
}

// #endregion generate

// #region draw

func seedSource(name string, seed int64) *rand.PCG {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name + ":" + strconv.FormatInt(seed, 10)))
	s := h.Sum64()
	return rand.NewPCG(s, s^0x9e3779b97f4a7c15)
}

func draw(rng *rand.Rand, b Band) HSL {
	return HSL{
		H: (b.Hue[0] + rng.IntN(b.Hue[1]-b.Hue[0]+1)) % 360,
		S: pick(rng, b.Saturation),
		L: pick(rng, b.Lightness),
	}
}

// pick draws from an inclusive band and nudges off multiples of 5.
func pick(rng *rand.Rand, band [2]int) int {
	v := band[0] + rng.IntN(band[1]-band[0]+1)
	return nudge(rng, v, band)
}

// nudge moves v by 1-4 when it is a multiple of 5, preferring to stay inside
// band and always staying inside [1, 99].
func nudge(rng *rand.Rand, v int, band [2]int) int {
	if v%5 != 0 {
		return v
	}
	k := 1 + rng.IntN(4)
	dirs := [2]int{1, -1}
	if rng.IntN(2) == 0 {
		dirs = [2]int{-1, 1}
	}
	for _, d := range dirs {
		if c := v + d*k; c >= band[0] && c <= band[1] {
			return c
		}
	}
	for off := 1; off <= 4; off++ {
		for _, d := range dirs {
			if c := v + d*off; c >= band[0] && c <= band[1] {
				return c
			}
		}
	}
	for _, d := range dirs {
		if c := v + d*k; c >= 1 && c <= 99 {
			return c
		}
	}
	panic(fmt.Sprintf("palette: cannot nudge %d", v))
}

// shift darkens a light-scheme color for the dark scheme.
func shift(rng *rand.Rand, c HSL, ds, dl int) HSL {
	s := clampPct(c.S + ds)
	l := clampPct(c.L + dl)
	return HSL{
		H: c.H,
		S: nudge(rng, s, [2]int{max(1, s-4), min(99, s+4)}),
		L: nudge(rng, l, [2]int{max(1, l-4), min(99, l+4)}),
	}
}

func clampPct(v int) int {
	return min(99, max(1, v))
}

// #endregion draw

package decay

import (
	"math/rand"

	"github.com/vovakirdan/entropy/internal/core"
)

// Layer counts and parallax factors, back to front.
const Layers = 3

var (
	parallax  = [Layers]float64{0.3, 0.6, 0.85}
	baseGrays = [Layers]int{60, 80, 100}
)

// BuildingType is the silhouette family of a building.
type BuildingType int

const (
	BuildingTall BuildingType = iota
	BuildingWide
	BuildingSquare
)

// Building is a background structure. X is in world units before parallax.
type Building struct {
	core.Rect
	Layer int
	Type  BuildingType
}

// Parallax returns how fast the layer scrolls relative to the camera.
func Parallax(layer int) float64 {
	return parallax[core.Clamp(layer, 0, Layers-1)]
}

// Gray returns the wall shade of a layer, fading by up to half with decay.
func Gray(layer int, decay float64) int {
	return int(float64(baseGrays[core.Clamp(layer, 0, Layers-1)]) * (1 - decay*0.5))
}

// GenerateSkyline lays out 8, 12 and 16 buildings on the three layers
// spanning the level plus a screen of margin, ordered back to front.
func GenerateSkyline(rng *rand.Rand, distance, worldH float64) []Building {
	var out []Building
	for layer := 0; layer < Layers; layer++ {
		n := 8 + layer*4
		for i := 0; i < n; i++ {
			x := randSpan(rng, 100, int(distance)+500)
			y := randSpan(rng, 150, 400)
			w := randSpan(rng, 80, 200)
			h := randSpan(rng, int(worldH)-y-50, int(worldH)-y+100)
			out = append(out, Building{
				Rect:  core.NewRect(float64(x), float64(y), float64(w), float64(h)),
				Layer: layer,
				Type:  BuildingType(rng.Intn(3)),
			})
		}
	}
	return out
}

// Section is one horizontal slice of a building as it should be drawn this
// frame, in the building's own world coordinates.
type Section struct {
	core.Rect
	Missing bool        // Collapsed; draw Rubble instead
	Windows []core.Rect // Lit windows
	Dark    []core.Rect // Broken windows
	Rubble  []core.Rect
}

const (
	windowSize    = 8
	windowPitchX  = 24
	windowPitchY  = 32
	windowInsetX  = 8
	windowMarginY = 20
)

// BuildingSections resolves the decay policy for b at the given decay:
//   - up to Crumbling the building is whole, and its windows go dark with
//     probability decay/2 (shown as broken once past WindowsFailing),
//   - past Crumbling it splits into int(3 + 4d) sections whose upper ones
//     sag, with windows until WindowsGone,
//   - past Cracking sections jitter ±2 units,
//   - past Rubble sections go missing with probability 2(d − 0.85).
func BuildingSections(rng *rand.Rand, b Building, decay float64) []Section {
	if decay <= Crumbling {
		return []Section{intactSection(rng, b, decay)}
	}

	n := int(3 + decay*4)
	sectionH := float64(int(b.H) / n)
	out := make([]Section, 0, n)

	for i := 0; i < n; i++ {
		fall := 0.0
		if i < n-2 {
			fall = float64(int((decay - Crumbling) * float64(i) * 8))
		}
		crack := 0.0
		if decay > Cracking {
			crack = float64(randSpan(rng, -2, 2))
		}
		missing := decay > Rubble && rng.Float64() < (decay-Rubble)*2

		y := b.Y + float64(i)*sectionH + fall
		s := Section{Rect: core.NewRect(b.X+crack, y, b.W, sectionH), Missing: missing}

		if missing {
			if rng.Float64() < 0.6 {
				pieces := randSpan(rng, 3, 6)
				for p := 0; p < pieces; p++ {
					rx := b.X + float64(randSpan(rng, 0, int(b.W)-8))
					ry := y + float64(randSpan(rng, 0, int(sectionH)-8))
					size := float64(randSpan(rng, 4, 12))
					s.Rubble = append(s.Rubble, core.NewRect(rx, ry, size, size))
				}
			}
		} else if decay < WindowsGone {
			for wx := 0.0; wx < b.W; wx += windowPitchX {
				if rng.Float64() > (decay-Crumbling)*1.5 {
					s.Windows = append(s.Windows, core.NewRect(s.X+wx+windowInsetX, y+4, windowSize, windowSize))
				}
			}
		}
		out = append(out, s)
	}
	return out
}

func intactSection(rng *rand.Rand, b Building, decay float64) Section {
	s := Section{Rect: b.Rect}
	for wy := b.Y + windowMarginY; wy < b.Bottom()-windowMarginY; wy += windowPitchY {
		for wx := 0.0; wx < b.W; wx += windowPitchX {
			win := core.NewRect(b.X+wx+windowInsetX, wy, windowSize, windowSize)
			switch {
			case rng.Float64() > decay*0.5:
				s.Windows = append(s.Windows, win)
			case decay > WindowsFailing:
				s.Dark = append(s.Dark, win)
			}
		}
	}
	return s
}

package decay

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/entropy/internal/core"
)

// Grays is the palette of the static overlay and death debris.
var Grays = [...]uint8{0, 64, 128, 192, 255}

// Speck is one monochrome block of static or debris.
type Speck struct {
	core.Rect
	Gray uint8
}

func snap(v float64) float64 {
	return math.Floor(v/Grid) * Grid
}

// randSpan returns an integer in [lo, hi].
func randSpan(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// PlatformFragments returns the pieces to draw in place of r. Below the
// platform glitch threshold that is r itself. Above it the platform is cut
// into int(3 + 12g) pieces, each jittered vertically by up to g²·20 units,
// snapped to the grid, and dropped with probability 0.4g.
// The result is for drawing only; collision keeps using r.
func PlatformFragments(rng *rand.Rand, r core.Rect, glitch float64) []core.Rect {
	if glitch <= PlatformGlitchOn {
		return []core.Rect{r}
	}

	pieces := int(3 + glitch*12)
	pieceW := math.Max(8, math.Floor(r.W/float64(pieces)))
	maxOffset := int(glitch * glitch * 20)

	out := make([]core.Rect, 0, pieces)
	for i := 0; i < pieces; i++ {
		x := r.X + float64(i)*pieceW
		y := r.Y + float64(randSpan(rng, -maxOffset, maxOffset/2))
		if rng.Float64() > glitch*0.4 {
			out = append(out, core.NewRect(snap(x), snap(y), pieceW, r.H))
		}
	}
	return out
}

// ObstacleFragments returns the pieces to draw in place of an obstacle.
// Above the obstacle glitch threshold it scatters int(2 + 4g) grid-aligned
// squares up to g²·25 units from the origin.
func ObstacleFragments(rng *rand.Rand, r core.Rect, glitch float64) []core.Rect {
	if glitch <= ObstacleGlitchOn {
		return []core.Rect{r}
	}

	n := int(2 + glitch*4)
	maxOffset := int(glitch * glitch * 25)
	size := math.Max(8, math.Floor(r.W/float64(n)))

	out := make([]core.Rect, 0, n)
	for i := 0; i < n; i++ {
		dx := float64(randSpan(rng, -maxOffset, maxOffset))
		dy := float64(randSpan(rng, -maxOffset, maxOffset))
		out = append(out, core.NewRect(snap(r.X+dx), snap(r.Y+dy), size, size))
	}
	return out
}

// StaticBlocks covers a w×h area with block-sized cells, each painted with
// probability 0.6·intensity in a random gray.
func StaticBlocks(rng *rand.Rand, w, h, block int, intensity float64) []Speck {
	if intensity <= 0 || block <= 0 {
		return nil
	}

	var out []Speck
	for x := 0; x < w; x += block {
		for y := 0; y < h; y += block {
			if rng.Float64() < intensity*0.6 {
				out = append(out, Speck{
					Rect: core.NewRect(float64(x), float64(y), float64(block), float64(block)),
					Gray: Grays[rng.Intn(len(Grays))],
				})
			}
		}
	}
	return out
}

// Debris is a screen-space block of corrupted pixels left by a death.
type Debris struct {
	core.Rect
}

// NewDebris scatters 2-3 chunks across a screenW×screenH view.
func NewDebris(rng *rand.Rand, screenW, screenH int) []Debris {
	n := randSpan(rng, 2, 3)
	out := make([]Debris, 0, n)
	for i := 0; i < n; i++ {
		w := randSpan(rng, 100, 180)
		h := randSpan(rng, 80, 140)
		x := randSpan(rng, 0, screenW-w)
		y := randSpan(rng, 0, screenH-h)
		out = append(out, Debris{Rect: core.NewRect(float64(x), float64(y), float64(w), float64(h))})
	}
	return out
}

// Specks returns the flickering cells of a debris chunk for one frame:
// each block-sized cell is painted with probability 0.7.
func (d Debris) Specks(rng *rand.Rand, block int) []Speck {
	if block <= 0 {
		return nil
	}
	var out []Speck
	for x := 0; x < int(d.W); x += block {
		for y := 0; y < int(d.H); y += block {
			if rng.Float64() < 0.7 {
				out = append(out, Speck{
					Rect: core.NewRect(d.X+float64(x), d.Y+float64(y), float64(block), float64(block)),
					Gray: Grays[rng.Intn(len(Grays))],
				})
			}
		}
	}
	return out
}

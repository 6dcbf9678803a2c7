// Package render draws progression snapshots into a core.Screen.
//
// The world is 1280x720 units; it is scaled to whatever cell grid the
// screen has. All randomness (glitch fragments, static, rubble, debris)
// comes from the renderer's own seeded generator, so a frame can be
// replayed exactly and the simulation never sees it.
package render

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/entropy/internal/core"
	"github.com/vovakirdan/entropy/internal/progression"
)

// Renderer turns snapshots into screen cells.
type Renderer struct {
	rng    *rand.Rand
	worldW float64
	worldH float64
}

// New creates a renderer for a world of the given size.
func New(seed int64, worldW, worldH float64) *Renderer {
	return &Renderer{
		rng:    rand.New(rand.NewSource(seed)),
		worldW: worldW,
		worldH: worldH,
	}
}

// Draw renders one frame.
func (r *Renderer) Draw(scr *core.Screen, snap progression.Snapshot) {
	scr.Clear()
	if scr.Width() == 0 || scr.Height() == 0 {
		return
	}

	switch snap.State {
	case progression.StateTitle:
		r.drawTitle(scr, snap)
	case progression.StateLevelSelect:
		r.drawLevelSelect(scr, snap)
	case progression.StateLoading:
		r.drawLoading(scr, snap)
	case progression.StatePlaying:
		if snap.Play != nil {
			r.drawScene(scr, snap.Play)
		}
	case progression.StateGameOver:
		if snap.Play != nil {
			r.drawScene(scr, snap.Play)
			r.drawResult(scr, snap)
		}
	}
}

// viewport maps world units to screen cells.
type viewport struct {
	sx, sy float64 // Cells per world unit
	camera float64
	w, h   int
}

func (r *Renderer) viewport(scr *core.Screen, camera float64) viewport {
	return viewport{
		sx:     float64(scr.Width()) / r.worldW,
		sy:     float64(scr.Height()) / r.worldH,
		camera: camera,
		w:      scr.Width(),
		h:      scr.Height(),
	}
}

// cells converts a screen-space rectangle (world units, no camera) to a
// cell span. Every rectangle covers at least one cell.
func (v viewport) cells(rc core.Rect) (x, y, w, h int) {
	x0 := int(math.Floor(rc.X * v.sx))
	y0 := int(math.Floor(rc.Y * v.sy))
	x1 := int(math.Ceil(rc.Right() * v.sx))
	y1 := int(math.Ceil(rc.Bottom() * v.sy))
	return x0, y0, max(1, x1-x0), max(1, y1-y0)
}

// fill paints a screen-space rectangle.
func (v viewport) fill(scr *core.Screen, rc core.Rect, ch rune, c core.Color) {
	x, y, w, h := v.cells(rc)
	scr.FillRect(x, y, w, h, ch, c)
}

// fillWorld paints a world rectangle shifted by the camera times parallax.
func (v viewport) fillWorld(scr *core.Screen, rc core.Rect, parallax float64, ch rune, c core.Color) {
	v.fill(scr, rc.Translate(-v.camera*parallax, 0), ch, c)
}

// visible reports whether a world rectangle can touch the screen.
func (v viewport) visible(rc core.Rect, parallax float64) bool {
	x := rc.X - v.camera*parallax
	return x+rc.W >= 0 && x*v.sx <= float64(v.w)
}

// grayRune picks a block glyph for a static or debris gray.
func grayRune(gray uint8) (rune, core.Color) {
	switch {
	case gray < 32:
		return ' ', core.ColorBlack
	case gray < 96:
		return '░', core.ColorGray2
	case gray < 160:
		return '▒', core.ColorGray3
	case gray < 224:
		return '▓', core.ColorGray4
	default:
		return '█', core.ColorWhite
	}
}

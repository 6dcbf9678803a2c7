package render

import (
	"fmt"
	"math"

	"github.com/vovakirdan/entropy/internal/core"
	"github.com/vovakirdan/entropy/internal/decay"
	"github.com/vovakirdan/entropy/internal/progression"
	"github.com/vovakirdan/entropy/internal/world"
)

var layerRunes = [decay.Layers]rune{'░', '▒', '▓'}

// drawScene renders the playfield back to front: skyline, platforms,
// obstacles, goal, player, debris, static, HUD.
func (r *Renderer) drawScene(scr *core.Screen, p *progression.PlayView) {
	v := r.viewport(scr, p.Camera)
	sig := p.Signals

	r.drawSkyline(scr, v, p.Skyline, sig.Decay)

	for _, plat := range p.Platforms {
		r.drawPlatform(scr, v, plat, sig)
	}
	for _, o := range p.Obstacles {
		if !v.visible(o.Rect, 1) {
			continue
		}
		for _, f := range decay.ObstacleFragments(r.rng, o.Rect, sig.Glitch) {
			v.fillWorld(scr, f, 1, '▲', core.ColorRed)
		}
	}
	r.drawGoal(scr, v, p.Goal, p.Pulse)
	r.drawPlayer(scr, v, p)

	r.drawDebris(scr, v, p.Debris)
	r.drawStatic(scr, sig.Static)
	drawHUD(scr, p)
}

func (r *Renderer) drawSkyline(scr *core.Screen, v viewport, sky []decay.Building, d float64) {
	for _, b := range sky {
		par := decay.Parallax(b.Layer)
		if !v.visible(b.Rect, par) {
			continue
		}
		wall := core.Shade(float64(decay.Gray(b.Layer, d)) / 140)
		lit := core.Shade(float64(decay.Gray(b.Layer, d)) * 1.3 / 140)
		dark := core.Shade(float64(decay.Gray(b.Layer, d)) * 0.5 / 140)

		for _, s := range decay.BuildingSections(r.rng, b, d) {
			if s.Missing {
				for _, rb := range s.Rubble {
					v.fillWorld(scr, rb, par, '▖', dark)
				}
				continue
			}
			v.fillWorld(scr, s.Rect, par, layerRunes[b.Layer], wall)
			for _, w := range s.Windows {
				v.fillWorld(scr, w, par, '▪', lit)
			}
			for _, w := range s.Dark {
				v.fillWorld(scr, w, par, '▫', dark)
			}
		}
	}
}

// platformColor fades grass toward gray as the world decays.
func platformColor(plat world.Platform, d float64) core.Color {
	switch {
	case d < 0.35:
		return core.ColorGreen
	case d < 0.7:
		return core.ColorDarkGreen
	case plat.Kind == world.KindGround:
		return core.ColorBrown
	default:
		return core.ColorDarkGray
	}
}

func (r *Renderer) drawPlatform(scr *core.Screen, v viewport, plat world.Platform, sig decay.Signals) {
	if !v.visible(plat.Rect, 1) {
		return
	}
	c := platformColor(plat, sig.Decay)
	ch := '█'
	if plat.Kind == world.KindGround {
		ch = '▀'
	}
	for _, f := range decay.PlatformFragments(r.rng, plat.Rect, sig.Glitch) {
		v.fillWorld(scr, f, 1, ch, c)
	}
}

func (r *Renderer) drawGoal(scr *core.Screen, v viewport, g world.Goal, pulse float64) {
	if !v.visible(g.Rect, 1) {
		return
	}
	grow := float64(int(4 * math.Sin(pulse)))
	rc := core.NewRect(g.X-grow, g.Y-grow, g.W+2*grow, g.H+2*grow)
	ch := '◆'
	if grow < 0 {
		ch = '◇'
	}
	v.fillWorld(scr, rc, 1, ch, core.ColorGold)
	x, y, _, _ := v.cells(rc.Translate(-v.camera, 0))
	scr.SetCell(x, y, '★', core.ColorYellow)
}

func (r *Renderer) drawPlayer(scr *core.Screen, v viewport, p *progression.PlayView) {
	a := p.Actor
	body := a.Bounds()
	c := core.ColorGreen
	if p.Signals.Decay > 0.5 {
		c = core.ColorDarkGreen
	}

	x, y, _, h := v.cells(body.Translate(-v.camera, 0))
	sprite := SpriteFor(PoseOf(a, p.AnimFrame))
	for row, line := range sprite {
		if row >= h {
			break
		}
		for col, ch := range []rune(line) {
			if ch != ' ' {
				scr.SetCell(x+col, y+row, ch, c)
			}
		}
	}
}

// drawDebris paints the death chunks, which live in screen space.
func (r *Renderer) drawDebris(scr *core.Screen, v viewport, debris []decay.Debris) {
	for _, d := range debris {
		x, y, w, h := v.cells(d.Rect)
		cell := decay.Debris{Rect: core.NewRect(float64(x), float64(y), float64(w), float64(h))}
		for _, s := range cell.Specks(r.rng, 1) {
			ch, c := grayRune(s.Gray)
			scr.SetCell(int(s.X), int(s.Y), ch, c)
		}
	}
}

// drawStatic covers the screen cell by cell; the overlay is drawn at cell
// resolution because a terminal cell is coarser than the 8-unit block.
func (r *Renderer) drawStatic(scr *core.Screen, intensity float64) {
	for _, s := range decay.StaticBlocks(r.rng, scr.Width(), scr.Height(), 1, intensity) {
		ch, c := grayRune(s.Gray)
		scr.SetCell(int(s.X), int(s.Y), ch, c)
	}
}

func drawHUD(scr *core.Screen, p *progression.PlayView) {
	scr.DrawText(1, 0, fmt.Sprintf("LIVES: %d", p.Actor.Lives), core.ColorWhite)

	level := fmt.Sprintf("LEVEL %d", p.Config.Number)
	if p.Config.NoDeath {
		level += " · NO DEATHS"
	}
	scr.DrawTextCentered(0, level, core.ColorGray)

	timeText := fmt.Sprintf("TIME: %d", int(math.Ceil(p.Remaining)))
	c := core.ColorWhite
	if p.Signals.Static > 0 {
		c = core.ColorRed
	}
	scr.DrawText(scr.Width()-len(timeText)-1, 0, timeText, c)
}

package render

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/entropy/internal/core"
	"github.com/vovakirdan/entropy/internal/decay"
	"github.com/vovakirdan/entropy/internal/progression"
)

var titleArt = []string{
	"█▀▀ █▄ █ ▀█▀ █▀█ █▀█ █▀█ █▄█",
	"██▄ █ ▀█  █  █▀▄ █▄█ █▀▀  █ ",
}

func drawButton(scr *core.Screen, b box, label string, selected bool) {
	c := core.ColorGray
	text := core.ColorGray4
	if selected {
		c = core.ColorGreen
		text = core.ColorWhite
	}
	scr.DrawBox(b.x, b.y, b.w, b.h, c)
	scr.DrawText(b.x+(b.w-len([]rune(label)))/2, b.y+b.h/2, label, text)
}

func (r *Renderer) drawTitle(scr *core.Screen, snap progression.Snapshot) {
	w, h := scr.Width(), scr.Height()
	top := max(1, h/4-1)
	for i, line := range titleArt {
		scr.DrawTextCentered(top+i, line, core.ColorWhite)
	}
	scr.DrawTextCentered(top+len(titleArt)+1, "Nothing Lasts Forever", core.ColorGray)

	drawButton(scr, startButton(w, h), "START GAME", snap.TitleCursor == progression.TitleStart)
	drawButton(scr, quitButton(w, h), "QUIT", snap.TitleCursor == progression.TitleQuit)

	// Crumbling ground strip along the bottom.
	strip := max(1, h/8)
	for _, s := range decay.StaticBlocks(r.rng, w, strip, 1, 0.5) {
		ch, c := grayRune(s.Gray)
		scr.SetCell(int(s.X), h-strip+int(s.Y), ch, c)
	}
}

func (r *Renderer) drawLevelSelect(scr *core.Screen, snap progression.Snapshot) {
	w, h := scr.Width(), scr.Height()
	scr.DrawTextCentered(1, "LEVEL SELECT", core.ColorWhite)

	for i, lv := range snap.Levels {
		b := levelBox(w, i)
		selected := i == snap.Cursor
		border := core.ColorBrown
		if selected {
			border = core.ColorGold
		}
		scr.DrawBox(b.x, b.y, b.w, b.h, border)

		if lv.Locked {
			scr.DrawText(b.x+b.w/2-1, b.y+1, "[#]", core.ColorDarkGray)
			continue
		}
		label := fmt.Sprintf("%d", lv.Number)
		scr.DrawText(b.x+(b.w-len(label))/2, b.y+1, label, core.ColorWhite)
		if lv.Stars > 0 {
			stars := strings.Repeat("★", lv.Stars)
			scr.DrawText(b.x+(b.w-lv.Stars)/2, b.y+2, stars, core.ColorYellow)
		}
	}

	back := backButton(h)
	scr.DrawText(back.x, back.y+1, "◀ BACK", core.ColorBrown)

	hint := "←→↑↓ move · enter play · esc back · tab scores · q quit"
	if snap.Notice != "" {
		scr.DrawTextCentered(h-2, snap.Notice, core.ColorRed)
	}
	scr.DrawTextCentered(h-1, hint, core.ColorDarkGray)
}

func (r *Renderer) drawLoading(scr *core.Screen, snap progression.Snapshot) {
	w, h := scr.Width(), scr.Height()
	dots := strings.Repeat(".", (snap.Tick/30)%4)
	scr.DrawText((w-len("LOADING"))/2, h/2-2, "LOADING"+dots, core.ColorWhite)
	scr.DrawTextCentered(h/2, snap.Quote, core.ColorGray)

	barW := min(40, w-4)
	barX := (w - barW) / 2
	fill := int(snap.LoadingProgress * float64(barW))
	scr.DrawHLine(barX, h/2+2, barW, '░', core.ColorDarkGray)
	scr.DrawHLine(barX, h/2+2, fill, '█', core.ColorGreen)
}

// drawResult overlays the game-over panel on the frozen scene.
func (r *Renderer) drawResult(scr *core.Screen, snap progression.Snapshot) {
	w, h := scr.Width(), scr.Height()
	p := snap.Play

	panelW := min(w-2, 40)
	panel := centered(w, panelW, h/2-6, 15)
	scr.FillRect(panel.x, panel.y, panel.w, panel.h, ' ', core.ColorDefault)
	scr.DrawBox(panel.x, panel.y, panel.w, panel.h, core.ColorGray)

	y := panel.y + 1
	switch p.Outcome {
	case progression.OutcomeComplete:
		scr.DrawTextCentered(y, "COMPLETE!", core.ColorGreen)
		scr.DrawTextCentered(y+2, starRow(p.Stars), core.ColorYellow)
		scr.DrawTextCentered(y+4, fmt.Sprintf("Time: %ds", p.FinalTime), core.ColorWhite)
		scr.DrawTextCentered(y+5, fmt.Sprintf("Deaths: %d", p.Actor.Deaths), core.ColorWhite)
	case progression.OutcomeDissolved:
		scr.DrawTextCentered(y, "DISSOLVED", core.ColorRed)
		scr.DrawTextCentered(y+2, "Nothing lasts forever.", core.ColorGray)
	default:
		scr.DrawTextCentered(y, "TIME ENDED", core.ColorRed)
		scr.DrawTextCentered(y+2, "The static took everything.", core.ColorGray)
	}
	if snap.Notice != "" {
		scr.DrawTextCentered(y+6, snap.Notice, core.ColorRed)
	}

	drawButton(scr, replayButton(w, h), "[R] REPLAY LEVEL", true)
	drawButton(scr, levelsButton(w, h), "[B] BACK TO LEVELS", false)
}

// starRow shows earned stars filled and the rest hollow.
func starRow(stars int) string {
	stars = core.Clamp(stars, 0, progression.MaxStars)
	return strings.Repeat("★ ", stars) + strings.Repeat("☆ ", progression.MaxStars-stars)
}

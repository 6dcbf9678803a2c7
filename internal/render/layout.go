package render

import (
	"github.com/vovakirdan/entropy/internal/core"
	"github.com/vovakirdan/entropy/internal/progression"
	"github.com/vovakirdan/entropy/internal/world"
)

// Target is a clickable element of a menu screen.
type Target int

const (
	TargetNone Target = iota
	TargetStart
	TargetQuit
	TargetLevel
	TargetBack
	TargetReplay
	TargetLevels
)

// Hit is the result of hit-testing a click.
type Hit struct {
	Target Target
	Level  int // Set for TargetLevel
}

// Button sizes in cells.
const (
	buttonW    = 22
	buttonH    = 3
	levelBoxW  = 9
	levelBoxH  = 4
	levelGapX  = 2
	levelGapY  = 1
	backW      = 8
	backH      = 3
	gridTop    = 4
	resultBtnW = 24
)

// box is a cell-space rectangle; Contains is inclusive of its last cell.
type box struct {
	x, y, w, h int
}

func (b box) contains(p core.Point) bool {
	return core.NewRect(float64(b.x), float64(b.y), float64(b.w-1), float64(b.h-1)).
		Contains(float64(p.X), float64(p.Y))
}

func centered(w, width, y, height int) box {
	return box{x: (w - width) / 2, y: y, w: width, h: height}
}

func startButton(w, h int) box { return centered(w, buttonW, h/2, buttonH) }
func quitButton(w, h int) box  { return centered(w, buttonW, h/2+buttonH+1, buttonH) }

func levelBox(w, i int) box {
	gridW := progression.GridCols*levelBoxW + (progression.GridCols-1)*levelGapX
	col := i % progression.GridCols
	row := i / progression.GridCols
	return box{
		x: (w-gridW)/2 + col*(levelBoxW+levelGapX),
		y: gridTop + row*(levelBoxH+levelGapY),
		w: levelBoxW,
		h: levelBoxH,
	}
}

func backButton(h int) box { return box{x: 1, y: h/2 - 1, w: backW, h: backH} }

func replayButton(w, h int) box { return centered(w, resultBtnW, h/2+3, buttonH) }
func levelsButton(w, h int) box { return centered(w, resultBtnW, h/2+3+buttonH, buttonH) }

// HitTest resolves a click on a w×h screen showing the given state.
func HitTest(state progression.State, w, h int, p core.Point) Hit {
	switch state {
	case progression.StateTitle:
		switch {
		case startButton(w, h).contains(p):
			return Hit{Target: TargetStart}
		case quitButton(w, h).contains(p):
			return Hit{Target: TargetQuit}
		}
	case progression.StateLevelSelect:
		if backButton(h).contains(p) {
			return Hit{Target: TargetBack}
		}
		for i := 0; i < world.LevelCount(); i++ {
			if levelBox(w, i).contains(p) {
				return Hit{Target: TargetLevel, Level: i + 1}
			}
		}
	case progression.StateGameOver:
		switch {
		case replayButton(w, h).contains(p):
			return Hit{Target: TargetReplay}
		case levelsButton(w, h).contains(p):
			return Hit{Target: TargetLevels}
		}
	}
	return Hit{}
}

package physics

import (
	"github.com/vovakirdan/entropy/internal/config"
	"github.com/vovakirdan/entropy/internal/core"
	"github.com/vovakirdan/entropy/internal/world"
)

// Params are the movement constants, expressed per tick at ReferenceRate.
type Params struct {
	Gravity          float64
	JumpStrength     float64
	MoveSpeed        float64
	LandingTolerance float64 // Depth of the band below a platform top that counts as a landing
	FloorY           float64 // World floor plane that always catches the actor
	ReferenceRate    float64
}

// ParamsFrom extracts physics parameters from the game config.
func ParamsFrom(cfg config.Config) Params {
	return Params{
		Gravity:          cfg.Physics.Gravity,
		JumpStrength:     cfg.Physics.JumpStrength,
		MoveSpeed:        cfg.Physics.MoveSpeed,
		LandingTolerance: cfg.Physics.LandingTolerance,
		FloorY:           cfg.World.FloorY(),
		ReferenceRate:    float64(cfg.Physics.ReferenceRate),
	}
}

// scale converts a tick duration into reference ticks.
// A non-positive dt or rate counts as exactly one reference tick.
func (p Params) scale(dt float64) float64 {
	if dt <= 0 || p.ReferenceRate <= 0 {
		return 1
	}
	return dt * p.ReferenceRate
}

// Step advances the actor by one tick of dt seconds.
// move is the horizontal input: negative walks left, positive right, zero stands.
//
// Movement is binary per tick (no acceleration). Gravity accumulates without
// a terminal velocity. A landing happens on any platform whose x-range the
// actor overlaps while falling with its bottom edge inside the platform's
// landing band; when several match, the last one in slice order wins.
func Step(a *Actor, platforms []world.Platform, move int, dt float64, p Params) {
	k := p.scale(dt)

	a.Moving = move != 0
	switch core.Sign(move) {
	case -1:
		a.X -= p.MoveSpeed * k
		a.Facing = FacingLeft
	case 1:
		a.X += p.MoveSpeed * k
		a.Facing = FacingRight
	}

	if a.X > a.FurthestX {
		a.FurthestX = a.X
	}

	a.VelY += p.Gravity * k
	a.Y += a.VelY * k

	a.OnGround = false
	body := a.Bounds()
	for _, plat := range platforms {
		bottom := a.Y + a.H
		if body.OverlapsX(plat.Rect) &&
			bottom > plat.Y &&
			bottom < plat.Y+p.LandingTolerance &&
			a.VelY > 0 {
			a.Y = plat.Y - a.H
			a.VelY = 0
			a.OnGround = true
		}
	}

	if a.Y+a.H > p.FloorY {
		a.Y = p.FloorY - a.H
		a.VelY = 0
		a.OnGround = true
	}
}

// Jump launches the actor upward if it is standing on something.
// OnGround stays set until the next Step.
func Jump(a *Actor, p Params) bool {
	if !a.OnGround {
		return false
	}
	a.VelY = -p.JumpStrength
	return true
}

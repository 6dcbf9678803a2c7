// Package physics advances the player body against static level geometry and
// tests it against hazards. Everything here is deterministic; no randomness
// is consumed.
package physics

import (
	"github.com/vovakirdan/entropy/internal/config"
	"github.com/vovakirdan/entropy/internal/core"
)

// Facing is the horizontal direction the actor last moved in.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// String returns a human-readable name for the facing.
func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Actor is the player body. X, Y is the top-left corner in world units.
type Actor struct {
	X, Y      float64
	W, H      float64
	VelY      float64 // Units per reference tick; positive is downward
	OnGround  bool
	Lives     int
	Deaths    int
	FurthestX float64 // Never decreases, even across respawns
	SpawnX    float64
	SpawnY    float64
	Facing    Facing
	Moving    bool
}

// NewActor creates an actor of the given square size standing at spawn.
func NewActor(spawnX, spawnY, size float64, lives int) *Actor {
	return &Actor{
		X:         spawnX,
		Y:         spawnY,
		W:         size,
		H:         size,
		Lives:     lives,
		FurthestX: spawnX,
		SpawnX:    spawnX,
		SpawnY:    spawnY,
	}
}

// NewActorFrom creates an actor using the player section of cfg.
func NewActorFrom(cfg config.Config) *Actor {
	return NewActor(cfg.Player.SpawnX, cfg.Player.SpawnY, cfg.Player.Size, cfg.Player.Lives)
}

// Bounds returns the actor's collision rectangle.
func (a *Actor) Bounds() core.Rect {
	return core.NewRect(a.X, a.Y, a.W, a.H)
}

// Respawn moves the actor back to spawn with zero vertical velocity.
// FurthestX is kept.
func (a *Actor) Respawn() {
	a.X = a.SpawnX
	a.Y = a.SpawnY
	a.VelY = 0
}

// Die costs one life, records the death and respawns the actor.
// It reports whether the actor is out of lives.
func (a *Actor) Die() bool {
	a.Lives--
	a.Deaths++
	a.Respawn()
	return a.Lives <= 0
}

// Alive reports whether the actor has lives left.
func (a *Actor) Alive() bool {
	return a.Lives > 0
}

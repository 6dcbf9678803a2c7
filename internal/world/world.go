// Package world holds the static level geometry: platforms, obstacles and the
// goal, the fixed level table, and the repair pass that keeps every layout
// traversable.
package world

import "github.com/vovakirdan/entropy/internal/core"

func rect(x, y, w, h float64) core.Rect {
	return core.NewRect(x, y, w, h)
}

// Kind tags a platform as the ground slab or an elevated ledge.
type Kind int

const (
	KindElevated Kind = iota
	KindGround
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindElevated:
		return "elevated"
	default:
		return "unknown"
	}
}

// Platform is a solid ledge the player can land on from above.
type Platform struct {
	core.Rect
	Kind Kind
}

// NewPlatform creates an elevated platform.
func NewPlatform(x, y, w, h float64) Platform {
	return Platform{Rect: core.NewRect(x, y, w, h), Kind: KindElevated}
}

// NewGround creates a ground slab.
func NewGround(x, y, w, h float64) Platform {
	return Platform{Rect: core.NewRect(x, y, w, h), Kind: KindGround}
}

// Obstacle is a hazard volume; touching it costs a life.
type Obstacle struct {
	core.Rect
}

// Goal is the level exit; touching it wins the level.
type Goal struct {
	core.Rect
}

// Goal and obstacle sizes used by every hand-authored layout.
const (
	GoalWidth      = 32
	GoalHeight     = 48
	ObstacleWidth  = 24
	ObstacleHeight = 32
)

// Level is a fully constructed, repaired level ready for play.
type Level struct {
	Config    LevelConfig
	Platforms []Platform
	Obstacles []Obstacle
	Goal      Goal
}

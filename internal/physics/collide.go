package physics

import (
	"github.com/vovakirdan/entropy/internal/core"
	"github.com/vovakirdan/entropy/internal/world"
)

// Collision describes the first obstacle the actor touched.
type Collision struct {
	Index    int // Position in the obstacle slice
	Obstacle world.Obstacle
}

// Hit reports whether the actor strictly overlaps r on all four sides.
func Hit(a *Actor, r core.Rect) bool {
	return a.Bounds().Intersects(r)
}

// CheckCollisions returns the first obstacle the actor overlaps.
func CheckCollisions(a *Actor, obstacles []world.Obstacle) (Collision, bool) {
	for i, o := range obstacles {
		if Hit(a, o.Rect) {
			return Collision{Index: i, Obstacle: o}, true
		}
	}
	return Collision{}, false
}

// ReachedGoal reports whether the actor touches the goal.
func ReachedGoal(a *Actor, g world.Goal) bool {
	return Hit(a, g.Rect)
}

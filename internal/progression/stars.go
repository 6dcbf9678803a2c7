package progression

import "github.com/vovakirdan/entropy/internal/world"

// MaxStars is the best possible rating for a level.
const MaxStars = 3

// Stars rates a completed run of lc taking timeTaken whole seconds.
//   - no-death level with any death: 0
//   - deathless and within the 3-star time: 3
//   - within the 2-star time: 2
//   - within the time limit: 1
func Stars(lc world.LevelConfig, timeTaken, deaths int) int {
	switch {
	case lc.NoDeath && deaths > 0:
		return 0
	case timeTaken <= lc.ThreeStar && deaths == 0:
		return 3
	case timeTaken <= lc.TwoStar:
		return 2
	case timeTaken <= lc.TimeLimit:
		return 1
	default:
		return 0
	}
}

package world

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/entropy/internal/config"
)

// LevelConfig is the fixed per-level tuning record.
type LevelConfig struct {
	Number    int
	TimeLimit int     // Seconds
	Distance  float64 // World x of the goal; also the distance-progress target
	ThreeStar int     // Finish time (seconds) at or under which a deathless run earns 3 stars
	TwoStar   int     // Finish time at or under which a run earns 2 stars
	NoDeath   bool    // Any death forfeits all stars
}

// ErrUnknownLevel is returned for level numbers outside the table.
var ErrUnknownLevel = errors.New("world: unknown level")

var levelTable = []LevelConfig{
	{Number: 1, TimeLimit: 45, Distance: 2000, ThreeStar: 25, TwoStar: 35},
	{Number: 2, TimeLimit: 50, Distance: 2400, ThreeStar: 30, TwoStar: 40},
	{Number: 3, TimeLimit: 55, Distance: 2800, ThreeStar: 35, TwoStar: 45},
	{Number: 4, TimeLimit: 60, Distance: 3200, ThreeStar: 40, TwoStar: 50, NoDeath: true},
	{Number: 5, TimeLimit: 50, Distance: 2600, ThreeStar: 30, TwoStar: 40},
	{Number: 6, TimeLimit: 65, Distance: 3400, ThreeStar: 45, TwoStar: 55},
	{Number: 7, TimeLimit: 70, Distance: 3800, ThreeStar: 50, TwoStar: 60, NoDeath: true},
	{Number: 8, TimeLimit: 55, Distance: 3000, ThreeStar: 35, TwoStar: 45},
	{Number: 9, TimeLimit: 75, Distance: 4200, ThreeStar: 55, TwoStar: 65},
	{Number: 10, TimeLimit: 60, Distance: 3600, ThreeStar: 40, TwoStar: 50, NoDeath: true},
}

// LevelCount returns the number of levels in the table.
func LevelCount() int {
	return len(levelTable)
}

// Levels returns a copy of the level table in order.
func Levels() []LevelConfig {
	out := make([]LevelConfig, len(levelTable))
	copy(out, levelTable)
	return out
}

// Config returns the tuning record for level n (1-indexed).
func Config(n int) (LevelConfig, error) {
	if n < 1 || n > len(levelTable) {
		return LevelConfig{}, fmt.Errorf("%w: %d", ErrUnknownLevel, n)
	}
	return levelTable[n-1], nil
}

// layout is a hand-authored level: elevated platforms as {x, y, w} with the
// standard 20-unit thickness, and obstacles as {x, y}.
type layout struct {
	platforms [][3]float64
	obstacles [][2]float64
}

// groundObstacle marks an obstacle resting on the floor; its y is resolved
// against the configured world floor at build time.
const groundObstacle = -1

const ledgeHeight = 20

// layouts are indexed by level number - 1. They progress from a gentle
// tutorial to tight technical runs on the no-death levels.
var layouts = []layout{
	{ // 1: tutorial - easy jumps
		platforms: [][3]float64{
			{300, 500, 120}, {500, 450, 120}, {750, 400, 150}, {1000, 350, 120},
			{1250, 400, 150}, {1550, 450, 120}, {1800, 500, 120},
		},
		obstacles: [][2]float64{{650, groundObstacle}, {1400, groundObstacle}},
	},
	{ // 2: longer jumps
		platforms: [][3]float64{
			{250, 480, 100}, {450, 420, 100}, {700, 380, 120}, {950, 340, 100},
			{1200, 380, 120}, {1450, 440, 100}, {1700, 400, 120}, {1950, 460, 120},
		},
		obstacles: [][2]float64{{600, groundObstacle}, {850, 300}, {1600, 360}},
	},
	{ // 3: tighter platforming
		platforms: [][3]float64{
			{200, 500, 80}, {350, 440, 80}, {520, 380, 80}, {690, 320, 100},
			{900, 280, 80}, {1100, 340, 100}, {1320, 400, 80}, {1520, 360, 100},
			{1750, 420, 80}, {1950, 480, 100}, {2200, 440, 120},
		},
		obstacles: [][2]float64{{450, 400}, {800, 280}, {1420, 360}, {2100, groundObstacle}},
	},
	{ // 4: no deaths allowed, precise jumps
		platforms: [][3]float64{
			{180, 520, 90}, {340, 460, 70}, {490, 400, 80}, {660, 340, 70},
			{820, 280, 90}, {1000, 240, 80}, {1190, 300, 70}, {1350, 360, 90},
			{1540, 320, 80}, {1730, 380, 70}, {1900, 440, 90}, {2100, 400, 80},
			{2300, 460, 100}, {2550, 420, 120},
		},
		obstacles: [][2]float64{{580, 360}, {910, 240}, {1260, 320}, {1820, 340}, {2200, 360}},
	},
	{ // 5: up and down rhythm
		platforms: [][3]float64{
			{250, 520, 100}, {450, 450, 90}, {640, 380, 100}, {840, 320, 90},
			{1030, 380, 100}, {1230, 440, 90}, {1420, 380, 100}, {1620, 320, 90},
			{1820, 400, 100}, {2050, 480, 120},
		},
		obstacles: [][2]float64{{550, 410}, {930, 280}, {1520, 340}, {1920, 360}},
	},
	{ // 6: longer jumps that need momentum
		platforms: [][3]float64{
			{220, 500, 110}, {480, 440, 90}, {750, 380, 100}, {1050, 320, 90},
			{1350, 280, 110}, {1650, 340, 90}, {1920, 400, 100}, {2200, 360, 110},
			{2500, 420, 120}, {2800, 480, 120},
		},
		obstacles: [][2]float64{{380, groundObstacle}, {850, 340}, {1540, 300}, {2100, 360}, {2700, 440}},
	},
	{ // 7: no deaths allowed, tight technical platforming
		platforms: [][3]float64{
			{200, 520, 80}, {350, 460, 70}, {500, 400, 80}, {660, 340, 70},
			{810, 280, 80}, {980, 240, 70}, {1140, 200, 80}, {1310, 260, 70},
			{1470, 320, 80}, {1640, 280, 70}, {1800, 340, 80}, {1970, 400, 70},
			{2140, 360, 80}, {2320, 420, 70}, {2500, 380, 80}, {2680, 440, 90},
			{2900, 490, 120},
		},
		obstacles: [][2]float64{{430, 420}, {730, 300}, {1070, 200}, {1550, 280}, {2050, 360}, {2600, 400}},
	},
	{ // 8: speed challenge - wide platforms, many obstacles
		platforms: [][3]float64{
			{250, 500, 140}, {500, 450, 130}, {750, 400, 140}, {1000, 350, 130},
			{1280, 400, 140}, {1550, 450, 130}, {1820, 400, 140}, {2100, 450, 150},
			{2400, 500, 140},
		},
		obstacles: [][2]float64{
			{350, 460}, {600, 410}, {850, 360}, {1100, 310}, {1380, 360},
			{1650, 410}, {1920, 360}, {2200, 410}, {2500, 460},
		},
	},
	{ // 9: long journey with varied challenges
		platforms: [][3]float64{
			{230, 510, 100}, {420, 460, 90}, {600, 410, 100}, {800, 360, 90},
			{1000, 310, 100}, {1210, 270, 90}, {1420, 230, 100}, {1640, 290, 90},
			{1840, 350, 100}, {2050, 310, 90}, {2260, 370, 100}, {2470, 430, 90},
			{2680, 380, 100}, {2900, 440, 90}, {3120, 400, 100}, {3350, 460, 120},
			{3600, 510, 140},
		},
		obstacles: [][2]float64{
			{510, 420}, {890, 320}, {1300, 230}, {1730, 310},
			{2150, 270}, {2560, 390}, {2990, 400}, {3450, 420},
		},
	},
	{ // 10: no deaths allowed, final test
		platforms: [][3]float64{
			{180, 530, 80}, {320, 480, 70}, {460, 430, 80}, {610, 380, 70},
			{750, 330, 80}, {900, 280, 70}, {1050, 240, 80}, {1210, 200, 70},
			{1360, 250, 80}, {1520, 300, 70}, {1670, 260, 80}, {1830, 220, 70},
			{1990, 280, 80}, {2150, 340, 70}, {2310, 300, 80}, {2480, 360, 70},
			{2650, 320, 80}, {2820, 380, 70}, {3000, 440, 80}, {3190, 400, 90},
			{3390, 460, 100},
		},
		obstacles: [][2]float64{
			{400, 440}, {690, 340}, {990, 240}, {1300, 210}, {1610, 270},
			{1920, 230}, {2240, 310}, {2570, 330}, {2910, 390}, {3290, 410},
		},
	},
}

// groundOverrun is how far the ground slab extends past the goal.
const groundOverrun = 500

// Build assembles level n from its layout and runs the repair pass.
func Build(n int, cfg config.Config) (Level, error) {
	lc, err := Config(n)
	if err != nil {
		return Level{}, err
	}
	lay := layouts[n-1]
	floorY := cfg.World.FloorY()

	platforms := make([]Platform, 0, len(lay.platforms)+1)
	platforms = append(platforms, NewGround(0, floorY, lc.Distance+groundOverrun, cfg.World.FloorHeight))
	for _, p := range lay.platforms {
		platforms = append(platforms, NewPlatform(p[0], p[1], p[2], ledgeHeight))
	}

	obstacles := make([]Obstacle, 0, len(lay.obstacles))
	for _, o := range lay.obstacles {
		y := o[1]
		if y == groundObstacle {
			y = floorY - ObstacleHeight
		}
		obstacles = append(obstacles, Obstacle{Rect: rect(o[0], y, ObstacleWidth, ObstacleHeight)})
	}

	return Level{
		Config:    lc,
		Platforms: Repair(platforms, RepairParamsFrom(cfg)),
		Obstacles: obstacles,
		Goal:      Goal{Rect: rect(lc.Distance, floorY-GoalHeight, GoalWidth, GoalHeight)},
	}, nil
}

// RepairParamsFrom extracts the repair limits from the game config.
func RepairParamsFrom(cfg config.Config) RepairParams {
	return RepairParams{
		MaxGap:       cfg.Repair.MaxGap,
		MinWidth:     cfg.MinPlatformWidth(),
		MinY:         cfg.Repair.MinY,
		MaxY:         cfg.Repair.MaxY,
		BridgeHeight: cfg.Repair.BridgeHeight,
	}
}

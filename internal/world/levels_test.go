package world

import (
	"errors"
	"testing"

	"github.com/vovakirdan/entropy/internal/config"
)

func TestLevelTable(t *testing.T) {
	if LevelCount() != 10 {
		t.Fatalf("expected 10 levels, got %d", LevelCount())
	}

	for i, lc := range Levels() {
		if lc.Number != i+1 {
			t.Errorf("level at index %d has number %d", i, lc.Number)
		}
		if !(lc.ThreeStar < lc.TwoStar && lc.TwoStar <= lc.TimeLimit) {
			t.Errorf("level %d thresholds out of order: %d/%d/%d", lc.Number, lc.ThreeStar, lc.TwoStar, lc.TimeLimit)
		}
	}

	noDeath := map[int]bool{4: true, 7: true, 10: true}
	for _, lc := range Levels() {
		if lc.NoDeath != noDeath[lc.Number] {
			t.Errorf("level %d NoDeath = %v", lc.Number, lc.NoDeath)
		}
	}
}

func TestConfigUnknown(t *testing.T) {
	for _, n := range []int{0, -1, 11} {
		if _, err := Config(n); !errors.Is(err, ErrUnknownLevel) {
			t.Errorf("Config(%d) error = %v, want ErrUnknownLevel", n, err)
		}
	}
	if _, err := Build(11, config.DefaultConfig()); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Build(11) error = %v, want ErrUnknownLevel", err)
	}
}

func TestBuildLevelOne(t *testing.T) {
	lvl, err := Build(1, config.DefaultConfig())
	if err != nil {
		t.Fatalf("Build(1): %v", err)
	}

	ground := lvl.Platforms[0]
	if ground.Kind != KindGround || ground.Y != 670 || ground.W != 2500 || ground.H != 50 {
		t.Errorf("unexpected ground slab %+v", ground)
	}
	if lvl.Goal.X != 2000 || lvl.Goal.Y != 622 {
		t.Errorf("goal at (%v, %v), want (2000, 622)", lvl.Goal.X, lvl.Goal.Y)
	}
	if len(lvl.Obstacles) != 2 || lvl.Obstacles[0].Y != 638 {
		t.Errorf("unexpected obstacles %+v", lvl.Obstacles)
	}
}

func TestAllLevelsTraversable(t *testing.T) {
	cfg := config.DefaultConfig()
	params := RepairParamsFrom(cfg)

	for n := 1; n <= LevelCount(); n++ {
		lvl, err := Build(n, cfg)
		if err != nil {
			t.Fatalf("Build(%d): %v", n, err)
		}

		elevated := make([]Platform, 0, len(lvl.Platforms))
		for _, p := range lvl.Platforms {
			if p.Kind == KindElevated {
				elevated = append(elevated, p)
			}
		}
		if gap := MaxGapOf(elevated); gap > params.MaxGap {
			t.Errorf("level %d: elevated gap %v exceeds %v", n, gap, params.MaxGap)
		}

		if again := Repair(lvl.Platforms, params); len(again) != len(lvl.Platforms) {
			t.Errorf("level %d: repair of built level added platforms", n)
		}
	}
}

// Landing resolution lets the last matching platform win, so no two
// platforms sharing an x-range may have tops within the landing band.
func TestLevelsHaveNoStackedPlatforms(t *testing.T) {
	cfg := config.DefaultConfig()
	band := cfg.Physics.LandingTolerance

	for n := 1; n <= LevelCount(); n++ {
		lvl, err := Build(n, cfg)
		if err != nil {
			t.Fatalf("Build(%d): %v", n, err)
		}
		ps := lvl.Platforms
		for i := range ps {
			for j := i + 1; j < len(ps); j++ {
				if !ps[i].OverlapsX(ps[j].Rect) {
					continue
				}
				dy := ps[i].Y - ps[j].Y
				if dy < 0 {
					dy = -dy
				}
				if dy < band {
					t.Errorf("level %d: platforms at x=%v and x=%v stack within %v units", n, ps[i].X, ps[j].X, band)
				}
			}
		}
	}
}

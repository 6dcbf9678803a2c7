package decay

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/entropy/internal/core"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name      string
		furthest  float64
		target    float64
		remaining float64
		want      Signals
	}{
		{"start", 50, 2000, 45, Signals{Decay: 0.025, Glitch: 0.025, Static: 0}},
		{"halfway", 1000, 2000, 30, Signals{Decay: 0.5, Glitch: 0.5, Static: 0}},
		{"past goal", 2600, 2000, 20, Signals{Decay: 1, Glitch: 1, Static: 0}},
		{"static begins", 0, 2000, 15, Signals{Static: 0}},
		{"static mid", 0, 2000, 7.5, Signals{Static: 0.5}},
		{"time up", 0, 2000, 0, Signals{Static: 1}},
		{"overtime", 0, 2000, -3, Signals{Static: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.furthest, tt.target, tt.remaining, 15)
			if got != tt.want {
				t.Errorf("Compute() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeMonotonic(t *testing.T) {
	prev := Compute(0, 3000, 60, 15)
	for x := 0.0; x <= 3500; x += 50 {
		remaining := 60 - x/50
		s := Compute(x, 3000, remaining, 15)
		if s.Decay < prev.Decay || s.Static < prev.Static {
			t.Fatalf("signals decreased at x=%v: %+v after %+v", x, s, prev)
		}
		prev = s
	}
}

func TestPlatformFragmentsBelowThreshold(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := core.NewRect(100, 400, 120, 20)

	got := PlatformFragments(rng, r, PlatformGlitchOn)
	if len(got) != 1 || got[0] != r {
		t.Errorf("expected the platform itself, got %v", got)
	}
}

func TestPlatformFragmentsGridAligned(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := core.NewRect(101, 403, 150, 20)

	glitch := 0.9
	got := PlatformFragments(rng, r, glitch)
	if len(got) == 0 || len(got) > int(3+glitch*12) {
		t.Fatalf("unexpected fragment count %d", len(got))
	}
	for _, f := range got {
		if int(f.X)%Grid != 0 || int(f.Y)%Grid != 0 {
			t.Errorf("fragment %v not on the %d-unit grid", f, Grid)
		}
		if f.Y < r.Y-20-Grid || f.Y > r.Y+10 {
			t.Errorf("fragment %v jittered too far", f)
		}
	}
}

func TestObstacleFragments(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	r := core.NewRect(500, 600, 24, 32)

	if got := ObstacleFragments(rng, r, 0.3); len(got) != 1 || got[0] != r {
		t.Errorf("expected the obstacle itself at threshold, got %v", got)
	}

	got := ObstacleFragments(rng, r, 1)
	if len(got) != 6 {
		t.Fatalf("expected 6 fragments, got %d", len(got))
	}
	for _, f := range got {
		if f.W != 8 || f.H != 8 {
			t.Errorf("fragment size %vx%v, want 8x8", f.W, f.H)
		}
	}
}

func TestCosmeticsReplayFromSeed(t *testing.T) {
	run := func() ([]core.Rect, []Speck, []Section) {
		rng := rand.New(rand.NewSource(42))
		frags := PlatformFragments(rng, core.NewRect(0, 300, 200, 20), 0.7)
		static := StaticBlocks(rng, 160, 96, 8, 0.5)
		b := Building{Rect: core.NewRect(300, 200, 120, 470), Layer: 1}
		secs := BuildingSections(rng, b, 0.95)
		return frags, static, secs
	}

	f1, s1, b1 := run()
	f2, s2, b2 := run()
	if !reflect.DeepEqual(f1, f2) || !reflect.DeepEqual(s1, s2) || !reflect.DeepEqual(b1, b2) {
		t.Error("identical seeds produced different cosmetics")
	}
}

func TestStaticBlocks(t *testing.T) {
	rng := rand.New(rand.NewSource(9))

	if got := StaticBlocks(rng, 100, 100, 8, 0); got != nil {
		t.Errorf("expected no static at zero intensity, got %d blocks", len(got))
	}

	got := StaticBlocks(rng, 400, 400, 8, 1)
	cells := 50 * 50
	if len(got) < cells/2 || len(got) > cells*7/10 {
		t.Errorf("expected about 60%% of %d cells, got %d", cells, len(got))
	}
	for _, s := range got {
		valid := false
		for _, g := range Grays {
			if s.Gray == g {
				valid = true
			}
		}
		if !valid {
			t.Fatalf("unexpected gray %d", s.Gray)
		}
	}
}

func TestBuildingSections(t *testing.T) {
	b := Building{Rect: core.NewRect(300, 200, 120, 470), Layer: 0}

	tests := []struct {
		name     string
		decay    float64
		sections int
	}{
		{"intact", 0.1, 1},
		{"worn", 0.5, 1},
		{"crumbling", 0.7, 5},
		{"rubble", 1.0, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(5))
			secs := BuildingSections(rng, b, tt.decay)
			if len(secs) != tt.sections {
				t.Fatalf("got %d sections, want %d", len(secs), tt.sections)
			}
			for _, s := range secs {
				if tt.decay >= WindowsGone && len(s.Windows) > 0 {
					t.Error("windows drawn past WindowsGone")
				}
				if tt.decay <= WindowsFailing && len(s.Dark) > 0 {
					t.Error("broken windows drawn before WindowsFailing")
				}
				if tt.decay <= Rubble && s.Missing {
					t.Error("section missing before Rubble")
				}
			}
		})
	}
}

func TestGenerateSkyline(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	sky := GenerateSkyline(rng, 2000, 720)

	if len(sky) != 8+12+16 {
		t.Fatalf("expected 36 buildings, got %d", len(sky))
	}
	for i := 1; i < len(sky); i++ {
		if sky[i].Layer < sky[i-1].Layer {
			t.Fatal("skyline not ordered back to front")
		}
	}
	for _, b := range sky {
		if b.X < 100 || b.X > 2500 || b.W < 80 || b.W > 200 {
			t.Errorf("building out of range: %+v", b)
		}
	}
}

func TestNewDebris(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		chunks := NewDebris(rng, 1280, 720)
		if len(chunks) < 2 || len(chunks) > 3 {
			t.Fatalf("expected 2-3 chunks, got %d", len(chunks))
		}
		for _, c := range chunks {
			if c.X < 0 || c.Right() > 1280 || c.Y < 0 || c.Bottom() > 720 {
				t.Errorf("chunk off screen: %+v", c)
			}
		}
	}
}

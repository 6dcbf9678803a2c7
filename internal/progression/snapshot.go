package progression

import (
	"github.com/vovakirdan/entropy/internal/decay"
	"github.com/vovakirdan/entropy/internal/physics"
	"github.com/vovakirdan/entropy/internal/world"
)

// LevelEntry is one cell of the level select grid.
type LevelEntry struct {
	Number int
	Stars  int
	Locked bool
}

// Snapshot is everything a renderer needs for one frame. Slices are shared
// with the session and must be treated as read-only.
type Snapshot struct {
	State State
	Tick  int

	// Menus
	TitleCursor int
	Cursor      int // Level select cursor, 0-based
	Levels      []LevelEntry
	Notice      string

	// Loading
	Level           int
	LoadingProgress float64 // 0..1
	Quote           string

	// Playing and GameOver
	Play *PlayView
}

// PlayView is the render boundary of an active or finished session.
type PlayView struct {
	Config    world.LevelConfig
	Actor     physics.Actor
	AnimFrame int
	Platforms []world.Platform
	Obstacles []world.Obstacle
	Goal      world.Goal
	Skyline   []decay.Building
	Debris    []decay.Debris
	Camera    float64
	Signals   decay.Signals
	Elapsed   float64
	Remaining float64
	Pulse     float64

	GameOver  bool
	Won       bool
	Outcome   Outcome
	FinalTime int
	Stars     int
}

// Snapshot captures the current frame without advancing the machine.
func (m *Machine) Snapshot() Snapshot {
	snap := Snapshot{
		State:       m.state,
		Tick:        m.tick,
		TitleCursor: m.titleCursor,
		Cursor:      m.cursor,
		Levels:      m.LevelEntries(),
		Notice:      m.notice,
		Level:       m.level,
		Quote:       m.quote,
	}

	if m.state == StateLoading && m.cfg.Session.LoadingSeconds > 0 {
		p := float64(m.loadTicks) * m.dt() / m.cfg.Session.LoadingSeconds
		if p > 1 {
			p = 1
		}
		snap.LoadingProgress = p
	}

	if s := m.session; s != nil {
		snap.Play = &PlayView{
			Config:    s.Level.Config,
			Actor:     *s.Actor,
			AnimFrame: s.AnimFrame,
			Platforms: s.Level.Platforms,
			Obstacles: s.Level.Obstacles,
			Goal:      s.Level.Goal,
			Skyline:   s.Skyline,
			Debris:    s.Debris,
			Camera:    s.Camera,
			Signals:   s.Signals,
			Elapsed:   s.Elapsed,
			Remaining: s.Remaining(),
			Pulse:     s.Pulse,
			GameOver:  s.GameOver,
			Won:       s.Won,
			Outcome:   s.Outcome,
			FinalTime: s.FinalTime,
			Stars:     s.Stars,
		}
	}
	return snap
}

// LevelEntries lists every level with its best stars and lock state,
// recomputed from the record each call.
func (m *Machine) LevelEntries() []LevelEntry {
	out := make([]LevelEntry, 0, world.LevelCount())
	for n := 1; n <= world.LevelCount(); n++ {
		out = append(out, LevelEntry{
			Number: n,
			Stars:  m.record.Best(n),
			Locked: !m.record.Unlocked(n),
		})
	}
	return out
}

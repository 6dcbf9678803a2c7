package progression

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/entropy/internal/config"
	"github.com/vovakirdan/entropy/internal/core"
	"github.com/vovakirdan/entropy/internal/decay"
	"github.com/vovakirdan/entropy/internal/physics"
	"github.com/vovakirdan/entropy/internal/world"
)

// Animation timing for the walk cycle.
const (
	animFrameMillis = 150
	animFrames      = 2
	pulseStep       = 0.1 // Goal pulse phase advance per reference tick
)

// timeEpsilon absorbs float error when comparing accumulated tick time.
const timeEpsilon = 1e-9

// Session is the state of one attempt at a level. It is created on every
// entry into Playing and owned by the Machine.
type Session struct {
	Level    world.Level
	Actor    *physics.Actor
	Params   physics.Params
	Camera   float64 // World x of the left edge of the view
	Elapsed  float64 // Seconds of simulated play
	Ticks    int
	Signals  decay.Signals
	GameOver bool
	Won      bool
	Outcome  Outcome
	// FinalTime is the whole seconds credited to the run: truncated elapsed
	// time, or the full limit on a timeout.
	FinalTime int
	Stars     int

	Debris    []decay.Debris    // Screen-space death effects, cleared on entry
	Skyline   []decay.Building  // Background generated for this attempt
	AnimFrame int               // Walk cycle frame
	Pulse     float64           // Goal pulse phase in [0, 2π)

	cfg       config.Config
	fx        *rand.Rand
	animTimer float64
}

// TickResult tells the caller what happened during a tick.
type TickResult struct {
	Died  bool // Lost a life this tick
	Ended bool // Session became terminal this tick
}

// NewSession builds level n and places the actor at spawn.
// fx is the cosmetic generator; gameplay never draws from it.
func NewSession(n int, cfg config.Config, fx *rand.Rand) (*Session, error) {
	lvl, err := world.Build(n, cfg)
	if err != nil {
		return nil, err
	}
	s := &Session{
		Level:   lvl,
		Actor:   physics.NewActorFrom(cfg),
		Params:  physics.ParamsFrom(cfg),
		Skyline: decay.GenerateSkyline(fx, lvl.Config.Distance, cfg.World.Height),
		cfg:     cfg,
		fx:      fx,
	}
	s.Signals = s.signals()
	return s, nil
}

// Remaining returns the seconds left before the time limit, never negative.
func (s *Session) Remaining() float64 {
	return math.Max(0, float64(s.Level.Config.TimeLimit)-s.Elapsed)
}

func (s *Session) signals() decay.Signals {
	return decay.Compute(s.Actor.FurthestX, s.Level.Config.Distance, s.Remaining(), s.cfg.Decay.StaticWindow)
}

// Tick advances the session by dt seconds using one sampled input frame.
// Terminal checks run in priority order: obstacle (and loss when out of
// lives), goal, time limit. A terminal session ignores further ticks.
func (s *Session) Tick(in core.InputFrame, dt float64) TickResult {
	if s.GameOver {
		return TickResult{}
	}

	a := s.Actor
	if in.Has(core.ActionJump) {
		physics.Jump(a, s.Params)
	}
	physics.Step(a, s.Level.Platforms, in.Horizontal(), dt, s.Params)

	s.Ticks++
	s.Elapsed = float64(s.Ticks) * dt
	s.updateCamera(dt)
	s.animate(dt)
	s.Signals = s.signals()

	var res TickResult

	if _, hit := physics.CheckCollisions(a, s.Level.Obstacles); hit {
		res.Died = true
		s.Debris = append(s.Debris, decay.NewDebris(s.fx, int(s.cfg.World.Width), int(s.cfg.World.Height))...)
		if a.Die() {
			s.finish(OutcomeDissolved, s.wholeSeconds())
			res.Ended = true
			return res
		}
	}

	if physics.ReachedGoal(a, s.Level.Goal) {
		s.finish(OutcomeComplete, s.wholeSeconds())
		s.Stars = Stars(s.Level.Config, s.FinalTime, a.Deaths)
		res.Ended = true
		return res
	}

	if s.Elapsed+timeEpsilon >= float64(s.Level.Config.TimeLimit) {
		s.finish(OutcomeTimeUp, s.Level.Config.TimeLimit)
		res.Ended = true
	}
	return res
}

func (s *Session) wholeSeconds() int {
	return int(s.Elapsed + timeEpsilon)
}

func (s *Session) finish(o Outcome, seconds int) {
	s.GameOver = true
	s.Won = o == OutcomeComplete
	s.Outcome = o
	s.FinalTime = seconds
}

// updateCamera eases the view toward keeping the actor CameraLead of the
// way across the screen, never scrolling left of the level start.
func (s *Session) updateCamera(dt float64) {
	target := s.Actor.X - s.cfg.World.Width*s.cfg.Session.CameraLead
	ease := math.Min(1, s.cfg.Session.CameraEase*s.Params.ReferenceRate*dt)
	if dt <= 0 {
		ease = s.cfg.Session.CameraEase
	}
	s.Camera += (target - s.Camera) * ease
	s.Camera = math.Max(0, s.Camera)
}

func (s *Session) animate(dt float64) {
	s.Pulse = math.Mod(s.Pulse+pulseStep*s.Params.ReferenceRate*dt, 2*math.Pi)

	if !s.Actor.Moving {
		s.animTimer = 0
		return
	}
	s.animTimer += dt * 1000
	if s.animTimer+timeEpsilon >= animFrameMillis {
		s.animTimer = 0
		s.AnimFrame = (s.AnimFrame + 1) % animFrames
	}
}

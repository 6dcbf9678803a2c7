package progression

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/entropy/internal/config"
	"github.com/vovakirdan/entropy/internal/core"
	"github.com/vovakirdan/entropy/internal/world"
)

// ErrLevelLocked is returned when selecting a level whose predecessor has
// no stars yet.
var ErrLevelLocked = errors.New("progression: level locked")

// ErrUnknownLevel is returned when selecting a level outside the table.
var ErrUnknownLevel = world.ErrUnknownLevel

// Level select grid shape.
const (
	GridCols = 5
	GridRows = 2
)

// Title menu entries.
const (
	TitleStart = iota
	TitleQuit
	titleEntries
)

// Options configure a Machine. Only Config is required.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Store   ProgressStore // Nil keeps progress in memory
	Runs    RunRecorder   // Nil disables run history
	Logger  *log.Logger   // Nil discards logs
	Player  string        // Recorded with each run
}

// Machine is the game's screen flow. It owns the active Session and the
// progress record, and is driven one tick at a time by Step.
type Machine struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	store   ProgressStore
	runs    RunRecorder
	logger  *log.Logger
	player  string
	fx      *rand.Rand

	state       State
	record      Record
	level       int // Level being loaded or played
	cursor      int // Level select cursor, 0-based
	titleCursor int
	loadTicks   int
	quote       string
	session     *Session
	notice      string
	quit        bool
	tick        int
}

// NewMachine creates a machine on the title screen and loads progress once.
// A failed load is logged and play continues with empty progress.
func NewMachine(opts Options) *Machine {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	store := opts.Store
	if store == nil {
		store = NewMemoryStore(Record{})
	}
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}

	m := &Machine{
		cfg:     opts.Config,
		runtime: rt,
		store:   store,
		runs:    opts.Runs,
		logger:  logger,
		player:  opts.Player,
		fx:      rand.New(rand.NewSource(rt.Seed)),
		state:   StateTitle,
		level:   1,
	}

	rec, err := store.Load()
	if err != nil {
		logger.Warn("progress unreadable, starting fresh", "error", err)
		rec = Record{}
	}
	m.record = rec
	return m
}

// State returns the current screen.
func (m *Machine) State() State { return m.state }

// Record returns the progress record.
func (m *Machine) Record() Record { return m.record }

// Session returns the active session, or nil outside Playing and GameOver.
func (m *Machine) Session() *Session { return m.session }

// Quitting reports whether the player chose Quit on the title screen.
func (m *Machine) Quitting() bool { return m.quit }

func (m *Machine) dt() float64 {
	return 1 / float64(m.runtime.TickRate)
}

func (m *Machine) transition(to State) error {
	if err := checkTransition(m.state, to); err != nil {
		return err
	}
	m.logger.Debug("transition", "from", m.state, "to", to)
	m.state = to
	if to == StateLevelSelect {
		m.clampCursor()
	}
	return nil
}

// Start leaves the title screen for level select.
func (m *Machine) Start() error {
	return m.transition(StateLevelSelect)
}

// Back returns to the previous menu: level select to title, or the result
// screen to level select.
func (m *Machine) Back() error {
	switch m.state {
	case StateLevelSelect:
		return m.transition(StateTitle)
	case StateGameOver:
		return m.ToLevels()
	default:
		return fmt.Errorf("%w: no way back from %s", ErrIllegalTransition, m.state)
	}
}

// SelectLevel starts loading level n. Locked and unknown levels are refused.
func (m *Machine) SelectLevel(n int) error {
	if err := checkTransition(m.state, StateLoading); err != nil {
		return err
	}
	if _, err := world.Config(n); err != nil {
		return err
	}
	if !m.record.Unlocked(n) {
		return fmt.Errorf("%w: %d", ErrLevelLocked, n)
	}
	if err := m.transition(StateLoading); err != nil {
		return err
	}
	m.level = n
	m.cursor = n - 1
	m.loadTicks = 0
	m.quote = Quotes[m.fx.Intn(len(Quotes))]
	m.notice = ""
	m.logger.Info("loading level", "level", n)
	return nil
}

// Replay restarts the level just played with a fresh session.
func (m *Machine) Replay() error {
	if err := checkTransition(m.state, StatePlaying); err != nil {
		return err
	}
	return m.enterPlaying()
}

// ToLevels leaves the result screen for level select.
func (m *Machine) ToLevels() error {
	if m.state != StateGameOver {
		return fmt.Errorf("%w: no result screen to leave in %s", ErrIllegalTransition, m.state)
	}
	if err := m.transition(StateLevelSelect); err != nil {
		return err
	}
	m.session = nil
	return nil
}

// enterPlaying builds a fresh session; every entry starts from spawn with
// a new clock and no death effects.
func (m *Machine) enterPlaying() error {
	s, err := NewSession(m.level, m.cfg, m.fx)
	if err != nil {
		return err
	}
	if err := m.transition(StatePlaying); err != nil {
		return err
	}
	m.session = s
	m.notice = ""
	return nil
}

// Step advances the machine one tick with the sampled input and returns
// what the renderer should draw.
func (m *Machine) Step(in core.InputFrame) Snapshot {
	m.tick++

	switch m.state {
	case StateTitle:
		m.stepTitle(in)
	case StateLevelSelect:
		m.stepLevelSelect(in)
	case StateLoading:
		m.stepLoading()
	case StatePlaying:
		m.stepPlaying(in)
	case StateGameOver:
		m.stepGameOver(in)
	}

	return m.Snapshot()
}

func (m *Machine) stepTitle(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		m.titleCursor = (m.titleCursor + titleEntries - 1) % titleEntries
	case in.Has(core.ActionDown):
		m.titleCursor = (m.titleCursor + 1) % titleEntries
	case in.Has(core.ActionConfirm) || in.Has(core.ActionJump):
		if m.titleCursor == TitleQuit {
			m.quit = true
			return
		}
		_ = m.Start()
	}
}

func (m *Machine) stepLevelSelect(in core.InputFrame) {
	switch {
	case in.Has(core.ActionBack):
		_ = m.Back()
		return
	case in.Has(core.ActionLeft):
		m.cursor--
	case in.Has(core.ActionRight):
		m.cursor++
	case in.Has(core.ActionUp):
		m.cursor -= GridCols
	case in.Has(core.ActionDown):
		m.cursor += GridCols
	case in.Has(core.ActionConfirm) || in.Has(core.ActionJump):
		if err := m.SelectLevel(m.cursor + 1); errors.Is(err, ErrLevelLocked) {
			m.notice = "LOCKED"
		}
		return
	}
	m.clampCursor()
}

func (m *Machine) clampCursor() {
	m.cursor = core.Clamp(m.cursor, 0, world.LevelCount()-1)
}

func (m *Machine) stepLoading() {
	m.loadTicks++
	if float64(m.loadTicks)*m.dt()+timeEpsilon < m.cfg.Session.LoadingSeconds {
		return
	}
	if err := m.enterPlaying(); err != nil {
		m.logger.Error("cannot build level", "level", m.level, "error", err)
	}
}

func (m *Machine) stepPlaying(in core.InputFrame) {
	s := m.session
	res := s.Tick(in, m.dt())
	if res.Died {
		m.logger.Debug("player died", "level", m.level, "lives", s.Actor.Lives)
	}
	if !res.Ended {
		return
	}

	if err := m.transition(StateGameOver); err != nil {
		m.logger.Error("cannot end session", "error", err)
		return
	}
	m.logger.Info("session over",
		"level", m.level,
		"outcome", s.Outcome,
		"time", s.FinalTime,
		"deaths", s.Actor.Deaths,
		"stars", s.Stars,
	)

	if s.Won && m.record.Merge(m.level, s.Stars) {
		if err := m.store.Save(m.record); err != nil {
			m.logger.Error("cannot save progress", "error", err)
			m.notice = "PROGRESS NOT SAVED"
		}
	}
	m.recordRun(s)
}

func (m *Machine) recordRun(s *Session) {
	if m.runs == nil {
		return
	}
	run := Run{
		ID:        uuid.NewString(),
		Level:     m.level,
		Outcome:   s.Outcome,
		Stars:     s.Stars,
		Seconds:   s.FinalTime,
		Deaths:    s.Actor.Deaths,
		Distance:  s.Actor.FurthestX,
		Player:    m.player,
		CreatedAt: time.Now(),
	}
	if _, err := m.runs.SaveRun(run); err != nil {
		m.logger.Warn("cannot record run", "error", err)
	}
}

func (m *Machine) stepGameOver(in core.InputFrame) {
	switch {
	case in.Has(core.ActionRestart) || in.Has(core.ActionConfirm):
		if err := m.Replay(); err != nil {
			m.logger.Error("cannot replay", "level", m.level, "error", err)
		}
	case in.Has(core.ActionBack):
		_ = m.ToLevels()
	}
}

package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/entropy/internal/config"
	"github.com/vovakirdan/entropy/internal/core"
	"github.com/vovakirdan/entropy/internal/progression"
	"github.com/vovakirdan/entropy/internal/render"
	"github.com/vovakirdan/entropy/internal/storage"
)

// Options configure a game Model.
type Options struct {
	Config     config.Config
	Runtime    core.RuntimeConfig
	Progress   progression.ProgressStore // Nil keeps progress in memory
	Runs       *storage.Store            // Nil disables run history and the scoreboard
	Logger     *log.Logger
	Player     string
	HoldTicks  int    // See DefaultHoldTicks
	StartLevel int    // Skip the menus and load this level; 0 starts on the title
	ShotsDir   string // Screenshot directory; empty uses ~/.entropy/screenshots
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	machine  *progression.Machine
	renderer *render.Renderer
	screen   *core.Screen
	keys     *KeyMapper
	runs     *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	shotsDir string
	snap     progression.Snapshot
	scores   *ScoreboardModel
	quitting bool
}

// NewModel creates a model on the title screen.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	mo := progression.Options{
		Config:  opts.Config,
		Runtime: cfg,
		Store:   opts.Progress,
		Logger:  logger,
		Player:  opts.Player,
	}
	// A typed nil would still satisfy the interface.
	if opts.Runs != nil {
		mo.Runs = opts.Runs
	}
	machine := progression.NewMachine(mo)
	if opts.StartLevel > 0 {
		if err := startAt(machine, opts.StartLevel); err != nil {
			logger.Warn("cannot start level", "level", opts.StartLevel, "error", err)
		}
	}

	return Model{
		machine:  machine,
		renderer: render.New(cfg.Seed, opts.Config.World.Width, opts.Config.World.Height),
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:     NewKeyMapper(opts.HoldTicks),
		runs:     opts.Runs,
		logger:   logger,
		config:   cfg,
		shotsDir: opts.ShotsDir,
		snap:     machine.Snapshot(),
	}
}

func startAt(machine *progression.Machine, level int) error {
	if err := machine.Start(); err != nil {
		return err
	}
	return machine.SelectLevel(level)
}

// Machine exposes the screen flow, mostly for tests.
func (m Model) Machine() *progression.Machine {
	return m.machine
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scores != nil {
		return m.updateScores(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "tab":
		if m.machine.State() == progression.StateLevelSelect && m.runs != nil {
			sb := NewScoreboardModel(m.runs, m.snap.Cursor+1, m.config.ScreenW, m.config.ScreenH)
			m.scores = &sb
			m.keys.Release()
			return m, nil
		}
	}

	if m.keys.Press(msg, m.machine.State() == progression.StatePlaying) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse queues left clicks for the next tick.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.keys.pending.SetClick(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize processes window resize events. The world is scaled to the
// screen, so play continues undisturbed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the game by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.keys.Frame()
	if frame.Click != nil {
		if m.click(*frame.Click) {
			m.quitting = true
			return m, tea.Quit
		}
		frame.Click = nil
	}

	m.snap = m.machine.Step(frame)
	if m.machine.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.snap.State != progression.StatePlaying {
		m.keys.Release()
	}

	return m, tickCmd(m.config.TickRate)
}

// click applies a click to the screen flow. Returns true on Quit.
func (m Model) click(p core.Point) bool {
	state := m.machine.State()
	hit := render.HitTest(state, m.screen.Width(), m.screen.Height(), p)

	var err error
	switch hit.Target {
	case render.TargetStart:
		err = m.machine.Start()
	case render.TargetQuit:
		return true
	case render.TargetBack:
		err = m.machine.Back()
	case render.TargetLevel:
		err = m.machine.SelectLevel(hit.Level)
	case render.TargetReplay:
		err = m.machine.Replay()
	case render.TargetLevels:
		err = m.machine.ToLevels()
	}
	if err != nil {
		m.logger.Debug("click ignored", "state", state, "target", hit.Target, "error", err)
	}
	return false
}

// updateScores forwards messages to the scoreboard while it is open.
// Ticks keep flowing so the loop survives; the game is frozen meanwhile.
func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m, tickCmd(m.config.TickRate)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
	}

	updated, cmd := m.scores.Update(msg)
	sb, ok := updated.(ScoreboardModel)
	if !ok {
		return m, cmd
	}
	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scores = nil
		return m, nil
	}
	m.scores = &sb
	return m, cmd
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.renderer.Draw(m.screen, m.snap)

	dir := m.shotsDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("cannot save screenshot", "error", err)
			return
		}
		dir = filepath.Join(home, ".entropy", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("entropy_%s_%s.txt", m.snap.State, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}

	m.renderer.Draw(m.screen, m.snap)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}

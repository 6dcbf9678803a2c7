package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/entropy/internal/config"
	"github.com/vovakirdan/entropy/internal/core"
	"github.com/vovakirdan/entropy/internal/progression"
	"github.com/vovakirdan/entropy/internal/render"
	"github.com/vovakirdan/entropy/internal/storage"
)

const (
	testW = 80
	testH = 24
)

func newTestModel(t *testing.T, runs *storage.Store) Model {
	t.Helper()
	return NewModel(Options{
		Config:   config.DefaultConfig(),
		Runtime:  core.RuntimeConfig{ScreenW: testW, ScreenH: testH, TickRate: 60, Seed: 1},
		Runs:     runs,
		ShotsDir: t.TempDir(),
	})
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}
	return next, cmd
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for i := 0; i < n; i++ {
		m, _ = send(t, m, TickMsg{})
	}
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// findTarget scans the screen for a cell that hits the target.
func findTarget(t *testing.T, state progression.State, target render.Target) core.Point {
	t.Helper()
	for y := 0; y < testH; y++ {
		for x := 0; x < testW; x++ {
			p := core.Point{X: x, Y: y}
			if render.HitTest(state, testW, testH, p).Target == target {
				return p
			}
		}
	}
	t.Fatalf("no cell hits target %d in %s", target, state)
	return core.Point{}
}

func click(p core.Point) tea.MouseMsg {
	return tea.MouseMsg{X: p.X, Y: p.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestEnterStartsGame(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m, 1)

	if got := m.Machine().State(); got != progression.StateLevelSelect {
		t.Errorf("state = %s, want level select", got)
	}
}

func TestClickFlow(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(t, m, click(findTarget(t, progression.StateTitle, render.TargetStart)))
	m = tick(t, m, 1)
	if got := m.Machine().State(); got != progression.StateLevelSelect {
		t.Fatalf("after start click: %s", got)
	}

	m, _ = send(t, m, click(findTarget(t, progression.StateLevelSelect, render.TargetBack)))
	m = tick(t, m, 1)
	if got := m.Machine().State(); got != progression.StateTitle {
		t.Fatalf("after back click: %s", got)
	}

	m, _ = send(t, m, click(findTarget(t, progression.StateTitle, render.TargetQuit)))
	_, cmd := send(t, m, TickMsg{})
	if !isQuit(cmd) {
		t.Error("quit click should end the program")
	}
}

func TestClickLockedLevelIgnored(t *testing.T) {
	m := newTestModel(t, nil)
	if err := m.Machine().Start(); err != nil {
		t.Fatal(err)
	}

	var level2 core.Point
	for y := 0; y < testH; y++ {
		for x := 0; x < testW; x++ {
			h := render.HitTest(progression.StateLevelSelect, testW, testH, core.Point{X: x, Y: y})
			if h.Target == render.TargetLevel && h.Level == 2 {
				level2 = core.Point{X: x, Y: y}
			}
		}
	}
	m, _ = send(t, m, click(level2))
	m = tick(t, m, 1)
	if got := m.Machine().State(); got != progression.StateLevelSelect {
		t.Errorf("locked level click moved to %s", got)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := send(t, m, runeKey('q'))
	if !isQuit(cmd) {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestHeldDirectionWalks(t *testing.T) {
	m := newTestModel(t, nil)
	if err := m.Machine().Start(); err != nil {
		t.Fatal(err)
	}
	if err := m.Machine().SelectLevel(1); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 1000 && m.Machine().State() == progression.StateLoading; i++ {
		m = tick(t, m, 1)
	}
	m = tick(t, m, 30) // Settle on the ground

	start := m.Machine().Session().Actor.X
	m, _ = send(t, m, runeKey('d'))
	m = tick(t, m, DefaultHoldTicks)
	moved := m.Machine().Session().Actor.X
	if moved <= start {
		t.Fatalf("actor did not walk: %v -> %v", start, moved)
	}

	m = tick(t, m, 5)
	if got := m.Machine().Session().Actor.X; got != moved {
		t.Errorf("actor kept walking after the hold expired: %v -> %v", moved, got)
	}
}

func TestScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(Options{
		Config:   config.DefaultConfig(),
		Runtime:  core.RuntimeConfig{ScreenW: testW, ScreenH: testH, TickRate: 60, Seed: 1},
		ShotsDir: dir,
	})
	send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(dir, "entropy_title_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("expected one screenshot, got %v (%v)", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "START GAME") {
		t.Error("screenshot should contain the title menu")
	}
}

func TestScoreboardToggle(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	if err := m.Machine().Start(); err != nil {
		t.Fatal(err)
	}
	m = tick(t, m, 1)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(m.View(), "RUN HISTORY - LEVEL 1") {
		t.Fatalf("tab should open the scoreboard, got %q", m.View())
	}

	// Ticks while the scoreboard is open must not advance the game.
	before := m.Machine().Snapshot().Tick
	m = tick(t, m, 5)
	if after := m.Machine().Snapshot().Tick; after != before {
		t.Errorf("game advanced behind the scoreboard: %d -> %d", before, after)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if strings.Contains(m.View(), "RUN HISTORY") {
		t.Error("esc should close the scoreboard")
	}
	if got := m.Machine().State(); got != progression.StateLevelSelect {
		t.Errorf("state = %s, want level select", got)
	}
}

func TestScoreboardNeedsHistory(t *testing.T) {
	m := newTestModel(t, nil)
	if err := m.Machine().Start(); err != nil {
		t.Fatal(err)
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scores != nil {
		t.Error("scoreboard should stay closed without run history")
	}
}

func TestPlayerName(t *testing.T) {
	tests := map[string]string{
		"alice":     "alice",
		"Bob_2-x":   "Bob_2-x",
		"../etc":    "___etc",
		"":          "anonymous",
		"..":        "anonymous",
		"名前":        "anonymous",
		"user@host": "user_host",
	}
	for in, want := range tests {
		if got := PlayerName(in); got != want {
			t.Errorf("PlayerName(%q) = %q, want %q", in, got, want)
		}
	}
}

package main

import (
	"fmt"
	"os"
	"os/user"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/entropy/internal/core"
	"github.com/vovakirdan/entropy/internal/platform/tui"
	"github.com/vovakirdan/entropy/internal/storage"
	"github.com/vovakirdan/entropy/internal/world"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the game",
	Long: `Start the game on the title screen, or jump straight into an
unlocked level.

Controls:
  A/D, ←/→       - Walk (menus: move cursor)
  Space, W/↑     - Jump
  Enter          - Confirm
  B/Esc          - Back
  R              - Replay after the run ends
  Tab            - Run history (level select)
  Ctrl+S         - Screenshot
  Q/Ctrl+C       - Quit
  Mouse          - Click buttons and level boxes

Examples:
  entropy play
  entropy play 4
  entropy play --seed 42 --fps 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	level := 0
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid level %q", args[0])
		}
		if _, err := world.Config(n); err != nil {
			return fmt.Errorf("level %d: %w (run 'entropy levels')", n, err)
		}
		level = n
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logFile, err := openLogFile()
	if err != nil {
		return fmt.Errorf("cannot open log: %w", err)
	}
	defer logFile.Close()
	logger := newLogger(logFile, true)

	progress, err := storage.NewProgressFile(flagProgressPath, logger)
	if err != nil {
		return err
	}

	if level > 0 {
		rec, loadErr := progress.Load()
		if loadErr != nil {
			logger.Warn("progress unreadable", "error", loadErr)
		}
		if !rec.Unlocked(level) {
			return fmt.Errorf("level %d is locked", level)
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runs, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		logger.Warn("run history disabled", "error", err)
		// Continue without history - the game still works
		runs = nil
	}

	opts := tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Progress:   progress,
		Runs:       runs,
		Logger:     logger,
		Player:     playerName(),
		StartLevel: level,
	}

	logger.Info("game started", "player", opts.Player, "level", level)
	runErr := tui.Run(opts)

	if runs != nil {
		runs.Close()
	}
	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}

// playerName is the local user, recorded with each run.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return tui.PlayerName(u.Username)
	}
	return "local"
}

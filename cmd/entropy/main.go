// entropy is a side-scroller about a city that falls apart while you run
// through it.
//
// Usage:
//
//	entropy play [level]      - Play (optionally jump straight into a level)
//	entropy levels            - List levels and your progress
//	entropy scores [level]    - Show run history
//	entropy serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Seed for cosmetic randomness
//	--db <path>        - Run history database (default: ~/.entropy/runs.db)
//	--progress <path>  - Progress file (default: ~/.entropy/progress.json)
//	--config <path>    - Custom tuning YAML
//	--log <path>       - Log file used while the game is on screen
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/entropy/internal/config"
	"github.com/vovakirdan/entropy/internal/storage"
)

var (
	// Global flags
	flagFPS          int
	flagSeed         int64
	flagDBPath       string
	flagProgressPath string
	flagConfig       string
	flagLogPath      string
	flagVerbose      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "entropy",
	Short: "Entropy - nothing lasts forever",
	Long: `Entropy is a terminal side-scroller. Reach the goal before the world
decays into static: the further you get and the less time remains, the
more the platforms glitch and the skyline crumbles.

Available commands:
  play     - Play the game
  levels   - Show levels, unlocks and earned stars
  scores   - View run history
  serve    - Start SSH server for remote play

Examples:
  entropy play
  entropy play 3
  entropy levels
  entropy scores 1
  entropy serve --ssh :2222`,
	// Running entropy with no subcommand plays.
	RunE: runPlay,
	Args: cobra.NoArgs,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Cosmetic RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.entropy/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagProgressPath, "progress", "~/.entropy/progress.json", "Path to progress file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.entropy/entropy.log", "Log file while the game is running")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger creates the command logger writing to w.
func newLogger(w *os.File, timestamps bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: timestamps,
		Prefix:          "entropy",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogFile opens the --log file for appending. The caller closes it.
func openLogFile() (*os.File, error) {
	path, err := storage.ExpandPath(flagLogPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// loadConfig loads the tuning, honoring --config.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, fmt.Errorf("cannot load config: %w", err)
	}
	return cfg, nil
}

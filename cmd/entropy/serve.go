package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/entropy/internal/core"
	"github.com/vovakirdan/entropy/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagPlayersDir  string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Entropy SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. Progress is kept per SSH user
under --players; run history is shared by everyone (--db).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.entropy/host_key

Examples:
  entropy serve                           # Listen on :23234 with auto-generated key
  entropy serve --ssh :2222               # Listen on port 2222
  entropy serve --host-key ./my_host_key  # Use specific host key
  entropy serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagPlayersDir, "players", "~/.entropy/players", "Directory of per-user progress files")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	game, err := loadConfig()
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		PlayersDir:  flagPlayersDir,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Game:        game,
		TickRate:    flagFPS,
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := newLogger(os.Stderr, true)
	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	fmt.Printf("Starting Entropy SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

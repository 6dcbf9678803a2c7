package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/entropy/internal/platform/tui"
	"github.com/vovakirdan/entropy/internal/progression"
	"github.com/vovakirdan/entropy/internal/storage"
	"github.com/vovakirdan/entropy/internal/world"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show run history",
	Long: `Display the best runs of a level, or the latest runs of all levels
when no level is given.

Examples:
  entropy scores
  entropy scores 3
  entropy scores 3 --tui
  entropy scores 3 --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse history interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the history of the level")
}

func runScores(cmd *cobra.Command, args []string) error {
	level := 0
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid level %q", args[0])
		}
		if _, err := world.Config(n); err != nil {
			return fmt.Errorf("level %d: %w", n, err)
		}
		level = n
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open run history: %w", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if level == 0 {
			return fmt.Errorf("--clear needs a level")
		}
		if err := store.ClearRuns(level); err != nil {
			return err
		}
		fmt.Printf("Cleared history of level %d.\n", level)
		return nil

	case flagScoresTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, max(level, 1), width, height)
	}

	if level == 0 {
		runs, err := store.RecentRuns(flagScoresLimit)
		if err != nil {
			return err
		}
		fmt.Println("Recent runs")
		fmt.Println()
		printRuns(runs, true)
		return nil
	}

	runs, err := store.TopRuns(level, flagScoresLimit)
	if err != nil {
		return err
	}
	fmt.Printf("Best runs - Level %d\n", level)
	fmt.Println()
	printRuns(runs, false)

	stats, err := store.LevelStats(level)
	if err != nil {
		return err
	}
	if stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Runs: %s  Completed: %s  Deaths: %s\n",
			humanize.Comma(int64(stats.Runs)),
			humanize.Comma(int64(stats.Completions)),
			humanize.Comma(int64(stats.Deaths)))
		if stats.BestTime > 0 {
			fmt.Printf("Best: %s in %ds\n", strings.Repeat("★", stats.BestStars), stats.BestTime)
		}
	}
	return nil
}

func printRuns(runs []progression.Run, showLevel bool) {
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'entropy play' to leave a mark before it all fades.")
		return
	}

	fmt.Printf("  %-4s  %-5s  %-12s  %-9s  %-5s  %-5s  %-6s  %s\n", "Rank", "Level", "Player", "Result", "Stars", "Time", "Deaths", "When")
	fmt.Printf("  %-4s  %-5s  %-12s  %-9s  %-5s  %-5s  %-6s  %s\n", "----", "-----", "------", "------", "-----", "----", "------", "----")

	for i, r := range runs {
		lvl := strconv.Itoa(r.Level)
		if !showLevel {
			lvl = ""
		}
		fmt.Printf("  %-4d  %-5s  %-12s  %-9s  %-5s  %-5s  %-6d  %s\n",
			i+1, lvl, r.Player, r.Outcome, strings.Repeat("*", r.Stars),
			fmt.Sprintf("%ds", r.Seconds), r.Deaths, humanize.Time(r.CreatedAt))
	}
}

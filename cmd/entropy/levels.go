package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/entropy/internal/progression"
	"github.com/vovakirdan/entropy/internal/storage"
	"github.com/vovakirdan/entropy/internal/world"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels and your progress",
	Long:  `Shows every level with its time limit, length, star thresholds and your best result.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	logger := newLogger(os.Stderr, false)
	progress, err := storage.NewProgressFile(flagProgressPath, logger)
	if err != nil {
		return err
	}
	rec, err := progress.Load()
	if err != nil {
		logger.Warn("progress unreadable, showing a fresh start", "error", err)
	}

	fmt.Printf("  %-5s  %-5s  %-8s  %-4s  %-4s  %-8s  %s\n", "Level", "Time", "Length", "3★", "2★", "Rule", "Best")
	fmt.Printf("  %-5s  %-5s  %-8s  %-4s  %-4s  %-8s  %s\n", "-----", "----", "------", "--", "--", "----", "----")

	for _, lc := range world.Levels() {
		rule := ""
		if lc.NoDeath {
			rule = "no death"
		}
		best := "locked"
		if rec.Unlocked(lc.Number) {
			best = strings.Repeat("★", rec.Best(lc.Number)) + strings.Repeat("☆", progression.MaxStars-rec.Best(lc.Number))
		}
		fmt.Printf("  %-5d  %-5s  %-8s  %-4s  %-4s  %-8s  %s\n",
			lc.Number,
			fmt.Sprintf("%ds", lc.TimeLimit),
			humanize.Comma(int64(lc.Distance)),
			fmt.Sprintf("%ds", lc.ThreeStar),
			fmt.Sprintf("%ds", lc.TwoStar),
			rule,
			best,
		)
	}

	fmt.Println()
	fmt.Printf("Stars: %d/%d\n", rec.TotalStars(), progression.MaxStars*world.LevelCount())
	fmt.Println("Run 'entropy play <level>' to play an unlocked level.")
	return nil
}

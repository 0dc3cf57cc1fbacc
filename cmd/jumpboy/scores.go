package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/jumpboy/internal/platform/tui"
	"github.com/vovakirdan/jumpboy/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Browse the recorded runs of both modes.

With --plain the top runs of the selected --mode are printed instead of
opening the interactive scoreboard.

Examples:
  jumpboy scores
  jumpboy scores --plain
  jumpboy scores --plain --mode hard --limit 20`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores instead of opening the scoreboard")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	if !flagPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	id, err := gameID()
	if err != nil {
		return err
	}
	return printScores(store, id, flagLimit)
}

func printScores(store *storage.Store, id string, limit int) error {
	scores, err := store.TopScores(id, limit)
	if err != nil {
		return fmt.Errorf("retrieve scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", id)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'jumpboy play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-7s  %s\n", "Rank", "Score", "Reached", "Date")
	fmt.Printf("  %-4s  %-10s  %-7s  %s\n", "----", "-----", "-------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		reached := fmt.Sprintf("%d-%d", entry.Mode+1, entry.Stage+1)
		fmt.Printf("  %-4d  %-10d  %-7s  %s\n", i+1, entry.Score, reached, dateStr)
	}

	stats, err := store.GetGameStats(id)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

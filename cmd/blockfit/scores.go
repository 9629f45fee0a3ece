package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/euartex/blockfit/internal/games/blockfit"
	"github.com/euartex/blockfit/internal/registry"
	"github.com/euartex/blockfit/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best results of a mode",
	Long: `Display the best results for the given mode (default: blockfit).

Examples:
  blockfit scores
  blockfit scores blockfit_bonus --limit 20
  blockfit scores blockfit --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every result of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := blockfit.IDClassic
	if len(args) > 0 {
		gameID = args[0]
	}

	info, ok := registry.Info(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blockfit list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearResults(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all results for %s.\n", info.Title)
		return
	}

	results, err := store.TopResults(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'blockfit play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-5s  %s\n", "Rank", "Score", "Level", "Blocks", "Lines", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-5s  %s\n", "----", "-----", "-----", "------", "-----", "----")
	for i, r := range results {
		fmt.Printf("  %-4d  %-8d  %-5d  %-6d  %-5d  %s\n",
			i+1, r.Score, r.Level, r.BlocksPlaced, r.LinesCleared, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(gameID); err == nil {
		fmt.Printf("Games: %d   Best: %d   Average: %.0f   Best level: %d   Lines: %d\n",
			stats.Games, stats.HighScore, stats.AvgScore, stats.BestLevel, stats.TotalLines)
	}
}

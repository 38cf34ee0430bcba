package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [easy|normal|hard]",
	Short: "Show high scores",
	Long: `Display the top scores for one difficulty, or for all of them.

Examples:
  match3 scores
  match3 scores hard --limit 20
  match3 scores easy --clear
  match3 scores --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the scores of the given difficulty")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
}

func runScores(_ *cobra.Command, args []string) {
	var ids []string
	if len(args) == 1 {
		preset, err := config.ParsePreset(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		ids = []string{preset.GameID()}
	} else {
		for _, g := range registry.List() {
			ids = append(ids, g.ID)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a difficulty")
			os.Exit(1)
		}
		if err := store.ClearScores(ids[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s\n", ids[0])

	case flagScoresTUI:
		if _, err := tui.RunScoreboard(store, 80, 24, ids[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	default:
		for i, id := range ids {
			if i > 0 {
				fmt.Println()
			}
			if err := printScores(store, id); err != nil {
				fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
				os.Exit(1)
			}
		}
	}
}

func printScores(store *storage.Store, gameID string) error {
	title := gameID
	if info, ok := registry.Info(gameID); ok {
		title = info.Title
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", title)
	if len(scores) == 0 {
		fmt.Println("  No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-7s  %s\n", "Rank", "Player", "Score", "Matches", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-7s  %s\n", "----", "------", "-----", "-------", "----")
	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-12s  %-8d  %-7d  %s\n", i+1, player, e.Score, e.Matches, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Printf("\nGames: %d  Best: %d  Average: %.1f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	return nil
}

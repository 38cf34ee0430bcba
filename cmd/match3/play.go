package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagDifficulty string
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Match 3",
	Long: `Pick a difficulty and play. After a game you return to the selector.

Controls:
  Arrows/WASD/hjkl   - Move the cursor
  Enter/Space/Click  - Pick a token, pick a neighbor to swap
  Esc/B              - Drop the pick (leave the game when paused or over)
  P                  - Pause
  R                  - Restart
  Ctrl+S             - Save a text screenshot
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - 5 colors, game ends after 10 matches
  normal - 6 colors, 15 matches (or whatever the config says)
  hard   - 7 colors, 20 matches

Examples:
  match3 play
  match3 play --difficulty easy
  match3 play --seed 42 --config ./my-match3.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard (skips the selector)")
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name stored with your scores")
}

func runPlay(_ *cobra.Command, _ []string) {
	fixedID := ""
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fixedID = preset.GameID()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	lastID := config.DifficultyNormal.GameID()
	for {
		gameID := fixedID
		if gameID == "" {
			res, selErr := tui.RunSelector(store, cfg, lastID)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				os.Exit(1)
			}
			cfg = res.Config
			if res.Quit {
				return
			}
			if res.WantsScoreboard {
				back, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, lastID)
				if sbErr != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
					os.Exit(1)
				}
				if !back {
					return
				}
				continue
			}
			gameID = res.GameID
		}
		lastID = gameID

		game, createErr := registry.Create(gameID, registry.Options{Config: settings, Logger: logger})
		if createErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", createErr)
			os.Exit(1)
		}
		logger.Info("game started", "game", gameID, "seed", cfg.Seed)

		back, runErr := tui.Run(game, store, cfg,
			tui.WithPlayer(flagPlayer),
			tui.WithModelLogger(logger),
		)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			os.Exit(1)
		}
		if !back || fixedID != "" {
			return
		}
	}
}

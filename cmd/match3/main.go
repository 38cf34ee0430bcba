// match3 is a match-three puzzle game for the terminal.
//
// Usage:
//
//	match3 play              - Pick a difficulty and play
//	match3 list              - List difficulties
//	match3 scores [level]    - Show high scores
//	match3 config            - Print the effective configuration
//	match3 serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--seed <value>   - Set RNG seed for reproducible boards
//	--db <path>      - Set database path (default: ~/.match3/scores.db)
//	--config <path>  - Load a custom config YAML
//	--debug          - Write a debug log to ~/.match3/debug.log
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	_ "github.com/vovakirdan/tui-match3/internal/games/match3" // registers the difficulty modes
)

var (
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagDebug  bool
)

// Set up by the root command before any subcommand runs.
var (
	settings config.Match3Config
	logger   = log.New(io.Discard)
	logFile  *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match 3 - swap tokens, line up three, watch them cascade",
	Long: `Match 3 is a terminal puzzle game. Swap two neighboring tokens to
line up three or more of a color; matched tokens vanish, the rest fall
and new ones drop in from the top.

Configuration is read from --config, ~/.match3/configs/match3.yaml or
./configs/match3.yaml, then overridden by MATCH3_* environment variables
(a .env file in the working directory is loaded first).

Examples:
  match3 play
  match3 play --difficulty hard --seed 42
  match3 scores easy
  match3 serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.match3/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write a debug log to ~/.match3/debug.log")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads .env, the game config and the debug logger.
func setup(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load .env: %w", err)
	}

	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		return err
	}
	settings = cfg

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	if flagDebug {
		l, f, err := openDebugLog()
		if err != nil {
			return err
		}
		logger, logFile = l, f
	}
	return nil
}

// openDebugLog appends to ~/.match3/debug.log; the terminal belongs to the UI.
func openDebugLog() (*log.Logger, *os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".match3")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}

	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open debug log: %w", err)
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "match3",
	})
	return l, f, nil
}

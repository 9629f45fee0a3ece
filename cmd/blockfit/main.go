// blockfit is a block-placement puzzle for the terminal: drop polyomino blocks
// on an 8x8 board and clear full rows and columns.
//
// Usage:
//
//	blockfit                  - Start the menu
//	blockfit play [mode]      - Play a mode directly (default: blockfit)
//	blockfit list             - List available modes
//	blockfit scores [mode]    - Show the best results of a mode
//	blockfit serve            - Start the SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Frame rate for animations (default: 30)
//	--seed <value>        - RNG seed for reproducible deals
//	--db <path>           - Results database (default: ~/.blockfit/scores.db)
//	--config <path>       - Game config YAML
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/euartex/blockfit/internal/config"
	"github.com/euartex/blockfit/internal/games/blockfit"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfit",
	Short: "Blockfit - fit blocks, clear lines",
	Long: `Blockfit is a block-placement puzzle for your terminal.

Pick one of three offered blocks, drop it on the 8x8 board and fill whole
rows or columns to clear them. Every 10 blocks raise the level, and each
cleared line is worth 100 points times the level. The game ends when no
offered block fits anywhere.

Available commands:
  play     - Play a mode directly
  list     - Show all modes
  scores   - View the best results
  serve    - Start SSH server for remote play

Examples:
  blockfit
  blockfit play
  blockfit play blockfit_bonus --seed 42
  blockfit scores
  blockfit serve --ssh :2222`,
	PersistentPreRunE: loadConfig,
	Run:               runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockfit/scores.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig installs the game configuration before any command runs.
func loadConfig(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := log.ParseLevel(flagLogLevel); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	blockfit.SetConfig(cfg)
	return nil
}

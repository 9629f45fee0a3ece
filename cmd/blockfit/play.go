package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/euartex/blockfit/internal/core"
	"github.com/euartex/blockfit/internal/games/blockfit"
	"github.com/euartex/blockfit/internal/platform/tui"
	"github.com/euartex/blockfit/internal/registry"
	"github.com/euartex/blockfit/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: blockfit).

Controls:
  Arrows/hjkl/wasd - Move the cursor
  1 2 3            - Pick an offered block
  Tab              - Next offered block
  R                - Rotate the picked block
  Enter/Space      - Place the block at the cursor
  Mouse            - Click a block, then a board cell
  N                - New game
  ?                - How to play
  Ctrl+S           - Screenshot to ~/.blockfit/screenshots
  Esc/B            - Leave the game
  Q/Ctrl+C         - Quit

Examples:
  blockfit play
  blockfit play blockfit_bonus
  blockfit play --seed 42 --config ./my-blockfit.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := blockfit.IDClassic
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blockfit list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	_, runErr := tui.Run(game, store, logger, runtimeConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/euartex/blockfit/internal/platform/tui"
	"github.com/euartex/blockfit/internal/registry"
	"github.com/euartex/blockfit/internal/storage"
)

// runMenu loops menu -> game or scoreboard -> menu until the user quits.
func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := fileLogger()
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
				return
			}
			if goBack {
				continue
			}
			return
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "error", err)
			continue
		}

		backToMenu, err := tui.Run(game, store, logger, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if !backToMenu {
			return
		}
		// Later games in the same run get fresh deals.
		cfg.Seed = 0
	}
}

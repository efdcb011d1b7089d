package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-bevy/internal/core"
	"github.com/vovakirdan/flappy-bevy/internal/games/flappy"
	"github.com/vovakirdan/flappy-bevy/internal/platform/window"
	"github.com/vovakirdan/flappy-bevy/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window [game]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play there. The window frontend is only
compiled into binaries built with -tags ebiten.

Controls:
  Space/Enter  - Start, flap, back to menu
  F1           - Show tick and frame rate
  Q/Esc        - Quit

Examples:
  flappy window
  flappy window flappy-classic --fps 120`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, args []string) {
	gameID := flappy.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	created, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	game, ok := created.(*flappy.Game)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %q cannot run in a window\n", gameID)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger("flappy", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store := openStoreOrWarn()
	if store != nil {
		defer store.Close()
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	game.Reset(cfg)

	err = window.Run(game, window.Options{
		Config:   gameConfig,
		TickRate: flagFPS,
		Store:    windowStore(store),
		Logger:   logger,
	})
	if errors.Is(err, window.ErrNoWindow) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

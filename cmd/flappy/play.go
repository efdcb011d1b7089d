package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-bevy/internal/core"
	"github.com/vovakirdan/flappy-bevy/internal/games/flappy"
	"github.com/vovakirdan/flappy-bevy/internal/platform/tui"
	"github.com/vovakirdan/flappy-bevy/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Play a variant of the game in the terminal.

Controls:
  Space/Enter  - Start, flap, back to menu
  Esc/B        - Leave from the menu
  Q/Ctrl+C     - Quit

Examples:
  flappy play
  flappy play flappy-classic
  flappy play --seed 42 --fps 30`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := flappy.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'flappy list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger("flappy", nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store := openStoreOrWarn()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, tuiStore(store), terminalConfig(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

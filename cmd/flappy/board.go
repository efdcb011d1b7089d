package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-bevy/internal/platform/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse high scores interactively",
	Long: `Open the interactive scoreboard. Tab and Shift+Tab switch between
variants, Up and Down scroll the table.`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func runBoard(_ *cobra.Command, _ []string) {
	store := openStoreOrWarn()
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	cfg := terminalConfig()
	if err := tui.RunScoreboard(boardStore(store), cfg.ScreenW, cfg.ScreenH); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

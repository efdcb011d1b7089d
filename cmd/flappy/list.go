package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-bevy/internal/games/flappy"
	"github.com/vovakirdan/flappy-bevy/internal/registry"
	"github.com/vovakirdan/flappy-bevy/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game variants",
	Long: `Shows every registered variant with the rules it plays by and the best
score recorded in the scores database.`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// The list works without a database, it just has no best scores.
	store, err := storage.Open(flagDBPath)
	if err == nil {
		defer store.Close()
	}

	rows := make([][3]string, 0, len(games))
	idW, rulesW := len("ID"), len("Rules")
	for _, g := range games {
		row := [3]string{g.ID, variantRules(g.ID), bestScore(store, g.ID)}
		idW = max(idW, len(row[0]))
		rulesW = max(rulesW, len(row[1]))
		rows = append(rows, row)
	}

	fmt.Printf("  %-*s  %-*s  %s\n", idW, "ID", rulesW, "Rules", "Best")
	fmt.Printf("  %-*s  %-*s  %s\n", idW, "--", rulesW, "-----", "----")
	for i, row := range rows {
		fmt.Printf("  %-*s  %-*s  %s\n", idW, row[0], rulesW, row[1], row[2])
		fmt.Printf("  %-*s  %s\n", idW, "", games[i].Title)
	}

	fmt.Println()
	fmt.Println("Run 'flappy play <id>' to play a variant.")
}

func variantRules(id string) string {
	game, err := registry.Create(id)
	if err != nil {
		return "?"
	}
	if fg, ok := game.(*flappy.Game); ok {
		return fg.Rules().String()
	}
	return "-"
}

func bestScore(store *storage.Store, id string) string {
	if store == nil {
		return "-"
	}
	best, err := store.HighScore(id)
	if err != nil || best == 0 {
		return "-"
	}
	return strconv.Itoa(best)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-bevy/internal/config"
	"github.com/vovakirdan/flappy-bevy/internal/games/flappy"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration the game would run with, as YAML.

The first file found is decoded over the built-in defaults: the file given
by --config, then ~/.arcade/configs/flappy.yaml, then ./configs/flappy.yaml.
Use --defaults to print the embedded defaults as a starting point for your
own file.

Examples:
  flappy config
  flappy config --defaults > ~/.arcade/configs/flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the embedded default configuration")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefaults {
		os.Stdout.Write(config.GetDefaultYAML(flappy.GameID))
		return
	}

	data, err := config.Marshal(gameConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

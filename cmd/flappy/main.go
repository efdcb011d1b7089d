// flappy is the Flappy Bevy arcade: a bird that falls under gravity and
// flaps on Space, two walls it must not touch, and obstacles flying in from
// the right that score a point when caught.
//
// Usage:
//
//	flappy list              - List game variants
//	flappy play [game]       - Play in the terminal
//	flappy menu              - Pick a variant interactively
//	flappy window [game]     - Play in a 500x500 window (needs -tags ebiten)
//	flappy scores <game>     - Show high scores for a variant
//	flappy board             - Browse high scores interactively
//	flappy serve             - Start SSH server for remote play
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--config <path>      - Load game configuration from a YAML file
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-bevy/internal/config"
	"github.com/vovakirdan/flappy-bevy/internal/games/flappy"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string

	// gameConfig is loaded before any command runs.
	gameConfig = config.DefaultFlappyConfig()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bevy - catch the flying obstacles, avoid the walls",
	Long: `Flappy Bevy is a small arcade game for the terminal, a desktop window
and SSH.

Press Space to start, flap and return to the menu. Touching the top or
bottom wall ends the run; every flying obstacle you catch scores a point.

Available commands:
  list     - Show the game variants
  play     - Play in the terminal
  menu     - Interactive variant picker
  window   - Play in a desktop window
  scores   - View high scores
  board    - Browse high scores interactively
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  flappy play
  flappy play flappy-classic --fps 30
  flappy window --config ./my-flappy.yaml
  flappy serve --ssh :2222
  flappy scores flappy`,
	SilenceUsage:      true,
	PersistentPreRunE: loadGameConfig,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the game configuration and hands it to the game
// package before any game is created.
func loadGameConfig(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	gameConfig = cfg
	flappy.SetConfig(cfg)
	return nil
}

package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default Flappy Bevy configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Window: WindowConfig{
			Width:     500,
			Height:    500,
			Resizable: false,
			Title:     "Flappy Bevy",
		},
		Field: FieldConfig{
			PlayLimit:  200,
			WallOffset: 250,
			DespawnX:   -250,
		},
		Player: PlayerConfig{
			Width:       50,
			Height:      50,
			Gravity:     -0.1,
			FlapImpulse: 3.0,
		},
		Walls: WallConfig{
			Width:  500,
			Height: 50,
		},
		Obstacles: ObstacleConfig{
			Width:       30,
			Height:      30,
			Speed:       200,
			SpawnX:      250,
			SpawnPeriod: 2.0,
			SpawnRange:  200,
		},
		Text: TextConfig{
			Menu:     "Press Space!",
			GameOver: "GameOver\nreturn menu Press Space!",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy", "flappy-classic":
		return defaultFlappyYAML
	default:
		return nil
	}
}

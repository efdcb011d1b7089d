// Package config provides YAML-based game configuration loading for the
// arcade frontends and simulation.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains all configuration for the Flappy Bevy game.
type FlappyConfig struct {
	Window    WindowConfig   `yaml:"window"`
	Field     FieldConfig    `yaml:"field"`
	Player    PlayerConfig   `yaml:"player"`
	Walls     WallConfig     `yaml:"walls"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Text      TextConfig     `yaml:"text"`
}

// WindowConfig is handed to the window frontend at startup.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
	Title     string `yaml:"title"`
}

// FieldConfig defines the play field bounds.
type FieldConfig struct {
	PlayLimit  float64 `yaml:"play_limit"`
	WallOffset float64 `yaml:"wall_offset"`
	DespawnX   float64 `yaml:"despawn_x"`
}

// PlayerConfig defines the player's box and vertical motion.
type PlayerConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Gravity     float64 `yaml:"gravity"`      // Per tick, negative pulls down
	FlapImpulse float64 `yaml:"flap_impulse"` // Per tick, replaces the velocity
}

// WallConfig defines the size of the two static boundary obstacles.
type WallConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstacleConfig defines flying obstacle size, speed and spawning.
type ObstacleConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"` // Units per second
	SpawnX      float64 `yaml:"spawn_x"`
	SpawnPeriod float64 `yaml:"spawn_period"` // Seconds
	SpawnRange  float64 `yaml:"spawn_range"`
}

// TextConfig holds the on-screen messages.
type TextConfig struct {
	Menu     string `yaml:"menu"`
	GameOver string `yaml:"game_over"`
}

// Validate reports every inconsistency in the configuration.
func (c FlappyConfig) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Field.PlayLimit <= 0 {
		errs = append(errs, fmt.Errorf("field.play_limit must be positive, got %v", c.Field.PlayLimit))
	}
	if c.Field.WallOffset < c.Field.PlayLimit {
		errs = append(errs, fmt.Errorf("field.wall_offset %v must not be inside play_limit %v", c.Field.WallOffset, c.Field.PlayLimit))
	}
	if c.Field.DespawnX >= c.Obstacles.SpawnX {
		errs = append(errs, fmt.Errorf("field.despawn_x %v must be left of obstacles.spawn_x %v", c.Field.DespawnX, c.Obstacles.SpawnX))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Player.Gravity >= 0 {
		errs = append(errs, fmt.Errorf("player.gravity must be negative, got %v", c.Player.Gravity))
	}
	if c.Player.FlapImpulse <= 0 {
		errs = append(errs, fmt.Errorf("player.flap_impulse must be positive, got %v", c.Player.FlapImpulse))
	}
	if c.Walls.Width <= 0 || c.Walls.Height <= 0 {
		errs = append(errs, errors.New("wall size must be positive"))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 {
		errs = append(errs, errors.New("obstacle size must be positive"))
	}
	if c.Obstacles.Speed <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.speed must be positive, got %v", c.Obstacles.Speed))
	}
	if c.Obstacles.SpawnPeriod <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.spawn_period must be positive, got %v", c.Obstacles.SpawnPeriod))
	}
	if c.Obstacles.SpawnRange < 0 || c.Obstacles.SpawnRange > c.Field.PlayLimit {
		errs = append(errs, fmt.Errorf("obstacles.spawn_range %v must be within [0, play_limit]", c.Obstacles.SpawnRange))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid flappy config: %w", errors.Join(errs...))
}

package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score     int    // Score of the running session, or of the last one
	Phase     string // Name of the current phase
	Playing   bool   // Whether a session is in progress
	LastScore int    // Final score of the most recently finished session
}

// EventKind identifies what happened during a tick.
type EventKind int

const (
	EventPhaseEntered EventKind = iota // A new phase finished its setup
	EventSessionEnded                  // A play session finished with Score
)

// Event is a notable occurrence reported by Step for the platform layer.
type Event struct {
	Kind  EventKind
	Phase string
	Score int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

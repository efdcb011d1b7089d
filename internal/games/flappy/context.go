package flappy

import (
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/flappy-bevy/internal/config"
	"github.com/vovakirdan/flappy-bevy/internal/core"
	"github.com/vovakirdan/flappy-bevy/internal/ecs"
	"github.com/vovakirdan/flappy-bevy/internal/fsm"
)

// AppState selects the active phase.
type AppState int

const (
	Menu AppState = iota
	InGame
	GameOver
)

// String returns the phase name.
func (s AppState) String() string {
	switch s {
	case Menu:
		return "Menu"
	case InGame:
		return "InGame"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Rules toggles the behaviour that changed between iterations of the game.
type Rules struct {
	RandomSpawnY bool // Spawn flying obstacles at a random height instead of 0
	ShowScore    bool // Keep a score label on screen during play
	WallsEndRun  bool // Touching a wall ends the session; otherwise walls only clamp
}

var (
	// CurrentRules is the complete game: random spawns, score label, game over.
	CurrentRules = Rules{RandomSpawnY: true, ShowScore: true, WallsEndRun: true}

	// ClassicRules reproduces the earliest iteration: obstacles fly at mid
	// height, no score label, and a run never ends once started.
	ClassicRules = Rules{}
)

// String lists the rules in a short human-readable form.
func (r Rules) String() string {
	parts := make([]string, 0, 3)
	if r.RandomSpawnY {
		parts = append(parts, "random heights")
	} else {
		parts = append(parts, "mid-height obstacles")
	}
	if r.ShowScore {
		parts = append(parts, "score label")
	}
	if r.WallsEndRun {
		parts = append(parts, "walls end the run")
	} else {
		parts = append(parts, "walls only clamp")
	}
	return strings.Join(parts, ", ")
}

// Context is the per-game state shared by every phase hook. One Context lives
// as long as its Game; Input and Delta are refreshed every tick.
type Context struct {
	World *ecs.World
	Input core.InputFrame
	Delta time.Duration

	// Timer is owned by the InGame phase and is nil outside it.
	Timer *SpawnTimer
	Score ScoreBoard

	cfg       config.FlappyConfig
	rules     Rules
	rng       *rand.Rand
	states    *fsm.Machine[AppState, *Context]
	events    []core.Event
	lastScore int
}

func newContext(cfg config.FlappyConfig, rules Rules, seed int64) *Context {
	return &Context{
		World: ecs.NewWorld(),
		Input: core.NewInputFrame(),
		cfg:   cfg,
		rules: rules,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// RequestTransition asks for a phase change at the next tick boundary.
func (c *Context) RequestTransition(next AppState) {
	c.states.Request(next)
}

// Phase returns the active phase.
func (c *Context) Phase() AppState {
	return c.states.Current()
}

func (c *Context) emit(ev core.Event) {
	c.events = append(c.events, ev)
}

// newMachine wires every phase's hooks into a state machine. The hooks are
// registered in the order they run within a tick. Spawning runs after
// movement and collision, so a new obstacle is first seen at its spawn point.
func newMachine(rules Rules) *fsm.Machine[AppState, *Context] {
	m := fsm.New[AppState, *Context](Menu)

	m.Handle(Menu, fsm.Stage[*Context]{
		Enter:  []fsm.Hook[*Context]{setupMenu},
		Update: []fsm.Hook[*Context]{toInGame},
		Exit:   []fsm.Hook[*Context]{cleanupMenu},
	})

	inGame := fsm.Stage[*Context]{
		Enter: []fsm.Hook[*Context]{setupGame},
		Update: []fsm.Hook[*Context]{
			flappingWings,
			moveFlyingObstacle,
			collideFlyingObstacle,
			spawnFlyingObstacle,
		},
		Exit: []fsm.Hook[*Context]{cleanupInGame},
	}
	if rules.ShowScore {
		inGame.Update = append(inGame.Update, textScoreUpdate)
	}
	m.Handle(InGame, inGame)

	m.Handle(GameOver, fsm.Stage[*Context]{
		Enter:  []fsm.Hook[*Context]{setupGameOver},
		Update: []fsm.Hook[*Context]{returnMenu},
		Exit:   []fsm.Hook[*Context]{cleanupGameOver},
	})

	m.Allow(Menu, InGame)
	if rules.WallsEndRun {
		m.Allow(InGame, GameOver)
	}
	m.Allow(GameOver, Menu)

	return m
}

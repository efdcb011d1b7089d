// Package flappy implements Flappy Bevy: a bird that falls under gravity and
// flaps on input, two walls it must not touch, and obstacles flying in from
// the right that score a point when caught.
//
// The game is a Menu -> InGame -> GameOver -> Menu cycle. Each phase spawns
// its entities on entry and removes all of them on exit.
package flappy

import (
	"sync"
	"time"

	"github.com/vovakirdan/flappy-bevy/internal/config"
	"github.com/vovakirdan/flappy-bevy/internal/core"
	"github.com/vovakirdan/flappy-bevy/internal/fsm"
	"github.com/vovakirdan/flappy-bevy/internal/registry"
)

// Registered game IDs.
const (
	GameID        = "flappy"
	ClassicGameID = "flappy-classic"
)

var (
	configMu  sync.RWMutex
	sharedCfg = config.DefaultFlappyConfig()
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.FlappyConfig) {
	configMu.Lock()
	defer configMu.Unlock()
	sharedCfg = cfg
}

func currentConfig() config.FlappyConfig {
	configMu.RLock()
	defer configMu.RUnlock()
	return sharedCfg
}

// Game implements registry.Game on top of the phase state machine.
type Game struct {
	id      string
	title   string
	rules   Rules
	cfg     config.FlappyConfig
	runtime core.RuntimeConfig
	ctx     *Context
	states  *fsm.Machine[AppState, *Context]
	ticks   int
}

// New creates a game with the given rules and configuration.
// The game is usable after Reset.
func New(id, title string, rules Rules, cfg config.FlappyConfig) *Game {
	return &Game{id: id, title: title, rules: rules, cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Rules returns the rule set this variant plays by.
func (g *Game) Rules() Rules {
	return g.rules
}

// Reset discards every entity and enters the Menu phase.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.ticks = 0
	g.ctx = newContext(g.cfg, g.rules, cfg.Seed)
	g.states = newMachine(g.rules)
	g.ctx.states = g.states
	g.states.Start(g.ctx)
}

// Resize adapts the game to new screen dimensions without touching the
// simulation, which works in field units.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.ctx == nil {
		g.Reset(g.runtime)
	}
	g.ticks++

	g.ctx.Input = in
	g.ctx.Delta = dt
	g.ctx.events = g.ctx.events[:0]

	if g.states.Tick(g.ctx) {
		g.ctx.emit(core.Event{Kind: core.EventPhaseEntered, Phase: g.states.Current().String()})
	}

	var events []core.Event
	if len(g.ctx.events) > 0 {
		events = append(events, g.ctx.events...)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// End leaves the active phase as if the player had left the game, so an
// unfinished session still reports SessionEnded. The next Step starts over
// from the menu.
func (g *Game) End() core.StepResult {
	if g.ctx == nil || g.states == nil {
		return core.StepResult{State: g.State()}
	}

	g.ctx.events = g.ctx.events[:0]
	g.states.Stop(g.ctx)

	var events []core.Event
	if len(g.ctx.events) > 0 {
		events = append(events, g.ctx.events...)
	}
	g.ctx, g.states = nil, nil
	return core.StepResult{State: g.State(), Events: events}
}

// Phase returns the active phase.
func (g *Game) Phase() AppState {
	if g.states == nil {
		return Menu
	}
	return g.states.Current()
}

// Context exposes the shared state, mainly for frontends and tests that
// inspect entities directly.
func (g *Game) Context() *Context {
	return g.ctx
}

// Ticks returns the number of Step calls since Reset.
func (g *Game) Ticks() int {
	return g.ticks
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctx == nil {
		return core.GameState{Phase: Menu.String()}
	}
	phase := g.Phase()
	score := g.ctx.lastScore
	if phase == InGame {
		score = g.ctx.Score.Value()
	}
	return core.GameState{
		Score:     score,
		Phase:     phase.String(),
		Playing:   phase == InGame,
		LastScore: g.ctx.lastScore,
	}
}

// Register the game variants with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New(GameID, "Flappy Bevy", CurrentRules, currentConfig())
	})
	registry.Register(ClassicGameID, func() registry.Game {
		return New(ClassicGameID, "Flappy Bevy (classic)", ClassicRules, currentConfig())
	})
}

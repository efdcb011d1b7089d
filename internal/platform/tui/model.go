package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-bevy/internal/core"
	"github.com/vovakirdan/flappy-bevy/internal/registry"
)

// ScoreStore is the part of the score database the runner needs.
type ScoreStore interface {
	SaveScore(gameID string, score int) (int64, error)
	HighScore(gameID string) (int, error)
}

// Ender is implemented by games that can close an unfinished session.
type Ender interface {
	End() core.StepResult
}

// Resizer is implemented by games that track the screen size.
type Resizer interface {
	Resize(w, h int)
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    ScoreStore
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	input    core.InputFrame
	state    core.GameState
	best     int
	lastTick time.Time
	quitting bool
}

// NewModel creates a model for the given game. The store and logger may be nil.
func NewModel(game registry.Game, store ScoreStore, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:  store,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		config: cfg,
		input:  core.NewInputFrame(),
	}

	if store != nil {
		best, err := store.HighScore(game.ID())
		if err != nil {
			logger.Warn("could not load high score", "game", game.ID(), "error", err)
		}
		m.best = best
	}

	// Reset here rather than in Init so State is valid before the first tick.
	game.Reset(cfg)
	m.state = game.State()
	if r, ok := game.(Resizer); ok {
		r.Resize(m.screen.Width(), m.screen.Height())
	}

	return m
}

// The bottom row is the status line.
func playfieldHeight(h int) int {
	return core.Max(h-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("game started", "game", m.game.ID(), "tps", m.config.TickRate, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.Apply(msg, &m.input) {
		return m.quit()
	}

	// Back leaves the runner from the menu; elsewhere it is ignored.
	if m.input.Has(core.ActionBack) && !m.state.Playing && m.state.Phase == "Menu" {
		return m.quit()
	}

	return m, nil
}

// quit closes a running session first so its score is recorded.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if e, ok := m.game.(Ender); ok {
		result := e.End()
		m.state = result.State
		m.handleEvents(result.Events)
	}
	m.quitting = true
	return m, tea.Quit
}

// The simulation works in field units, so a resize only changes the view.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(Resizer); ok {
		r.Resize(m.screen.Width(), m.screen.Height())
	}
	return m, nil
}

// Obstacles move by real time, so each tick gets the wall time since the
// previous one rather than the nominal interval.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := tickDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	result := m.game.Step(m.input, dt)
	m.state = result.State
	m.handleEvents(result.Events)

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) handleEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventPhaseEntered:
			m.logger.Debug("phase entered", "game", m.game.ID(), "phase", ev.Phase)
		case core.EventSessionEnded:
			m.saveScore(ev.Score)
		}
	}
}

// saveScore persists a finished session. Failures are logged and the game
// carries on.
func (m *Model) saveScore(score int) {
	if score > m.best {
		m.best = score
	}
	if score <= 0 || m.store == nil {
		return
	}

	id, err := m.store.SaveScore(m.game.ID(), score)
	if err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "score", score, "error", err)
		return
	}
	m.logger.Debug("score saved", "game", m.game.ID(), "score", score, "id", id)
}

// View renders the game and the status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	status := fmt.Sprintf(" %s  score %d  best %d  ", m.game.Title(), m.state.Score, m.best)
	return RenderScreen(m.screen) + "\n" + statusStyle.Render(status+m.help.View(m.keys))
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Best returns the best score known to this runner.
func (m Model) Best() int {
	return m.best
}

// IsQuitting returns true once the user asked to leave.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, store ScoreStore, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// Package fsm implements a small application state machine with per-state
// enter, update and exit hooks.
//
// Transitions are requested during update hooks and committed at the start of
// the next Tick: the current state's exit hooks run, the state switches, and
// the new state's enter hooks run. Update hooks of the new state first run on
// the tick after that, so a setup always completes before its updates.
package fsm

import "fmt"

// Hook is a single enter, update or exit callback.
type Hook[C any] func(C)

// Phase is the behaviour bound to one state.
type Phase[C any] interface {
	OnEnter(ctx C)
	OnUpdate(ctx C)
	OnExit(ctx C)
}

// Stage is a Phase assembled from lists of hooks, run in registration order.
type Stage[C any] struct {
	Enter  []Hook[C]
	Update []Hook[C]
	Exit   []Hook[C]
}

// OnEnter runs every enter hook.
func (s Stage[C]) OnEnter(ctx C) { run(s.Enter, ctx) }

// OnUpdate runs every update hook.
func (s Stage[C]) OnUpdate(ctx C) { run(s.Update, ctx) }

// OnExit runs every exit hook.
func (s Stage[C]) OnExit(ctx C) { run(s.Exit, ctx) }

func run[C any](hooks []Hook[C], ctx C) {
	for _, h := range hooks {
		h(ctx)
	}
}

// Machine holds the current state, at most one pending transition, and the
// phases and legal edges of the state graph.
type Machine[S comparable, C any] struct {
	current    S
	pending    S
	hasPending bool
	started    bool
	committing bool
	phases     map[S]Phase[C]
	edges      map[S]map[S]bool
}

// New creates a machine starting in initial.
func New[S comparable, C any](initial S) *Machine[S, C] {
	return &Machine[S, C]{
		current: initial,
		phases:  make(map[S]Phase[C]),
		edges:   make(map[S]map[S]bool),
	}
}

// Handle binds a phase to a state, replacing any previous binding.
func (m *Machine[S, C]) Handle(state S, p Phase[C]) *Machine[S, C] {
	m.phases[state] = p
	return m
}

// Allow declares from -> to as a legal transition.
func (m *Machine[S, C]) Allow(from, to S) *Machine[S, C] {
	if m.edges[from] == nil {
		m.edges[from] = make(map[S]bool)
	}
	m.edges[from][to] = true
	return m
}

// CanTransition reports whether from -> to is a declared edge.
func (m *Machine[S, C]) CanTransition(from, to S) bool {
	return m.edges[from][to]
}

// Current returns the active state.
func (m *Machine[S, C]) Current() S {
	return m.current
}

// Pending returns the requested next state, if any.
func (m *Machine[S, C]) Pending() (S, bool) {
	return m.pending, m.hasPending
}

// Request asks for a transition at the next tick boundary. A later request in
// the same tick overwrites an earlier one.
//
// Requesting an undeclared transition, or requesting one from inside an enter
// or exit hook, is a programming error and panics.
func (m *Machine[S, C]) Request(next S) {
	if m.committing {
		panic(fmt.Sprintf("fsm: transition to %v requested during a state change", next))
	}
	if !m.CanTransition(m.current, next) {
		panic(fmt.Sprintf("fsm: undefined transition %v -> %v", m.current, next))
	}
	m.pending = next
	m.hasPending = true
}

// Start runs the initial state's enter hooks. It is a no-op after the first call.
func (m *Machine[S, C]) Start(ctx C) {
	if m.started {
		return
	}
	m.started = true
	m.enter(ctx)
}

// Started reports whether Start has run.
func (m *Machine[S, C]) Started() bool {
	return m.started
}

// Tick advances the machine by one frame. A pending transition is committed
// instead of running updates; it reports true when that happened.
// On a machine that was never started, Tick only runs Start.
func (m *Machine[S, C]) Tick(ctx C) bool {
	if !m.started {
		m.Start(ctx)
		return false
	}

	if m.hasPending {
		next := m.pending
		var zero S
		m.pending, m.hasPending = zero, false

		m.committing = true
		if p, ok := m.phases[m.current]; ok {
			p.OnExit(ctx)
		}
		m.current = next
		m.enter(ctx)
		m.committing = false
		return true
	}

	if p, ok := m.phases[m.current]; ok {
		p.OnUpdate(ctx)
	}
	return false
}

// Stop runs the current state's exit hooks and drops any pending request.
// The machine can be started again afterwards from the state it stopped in.
func (m *Machine[S, C]) Stop(ctx C) {
	if !m.started {
		return
	}
	var zero S
	m.pending, m.hasPending = zero, false
	m.committing = true
	if p, ok := m.phases[m.current]; ok {
		p.OnExit(ctx)
	}
	m.committing = false
	m.started = false
}

// Reset puts the machine back into state without running any hooks.
func (m *Machine[S, C]) Reset(state S) {
	var zero S
	m.current = state
	m.pending, m.hasPending = zero, false
	m.started = false
	m.committing = false
}

func (m *Machine[S, C]) enter(ctx C) {
	m.committing = true
	if p, ok := m.phases[m.current]; ok {
		p.OnEnter(ctx)
	}
	m.committing = false
}

package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Space, Enter - start, flap, return to menu
	ActionBack           // Esc, B - leave the current screen
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions freshly triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// Latch turns level-triggered key state into edge-triggered actions.
// Frontends that can poll whether a key is held feed the held set once per
// tick; an action is reported only on the tick it goes from up to down.
type Latch struct {
	held map[Action]bool
}

// NewLatch creates a latch with nothing held.
func NewLatch() *Latch {
	return &Latch{held: make(map[Action]bool)}
}

// Frame returns the actions that became pressed since the previous call.
func (l *Latch) Frame(down map[Action]bool) InputFrame {
	if l.held == nil {
		l.held = make(map[Action]bool)
	}
	f := NewInputFrame()
	for a, pressed := range down {
		if pressed && !l.held[a] {
			f.Set(a)
		}
	}
	for a := range l.held {
		if !down[a] {
			delete(l.held, a)
		}
	}
	for a, pressed := range down {
		if pressed {
			l.held[a] = true
		}
	}
	return f
}

// Release forgets all held keys, e.g. after focus loss.
func (l *Latch) Release() {
	for k := range l.held {
		delete(l.held, k)
	}
}

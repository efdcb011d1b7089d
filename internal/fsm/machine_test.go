package fsm

import (
	"strings"
	"testing"
)

type state int

const (
	menu state = iota
	play
	over
)

func (s state) String() string {
	return [...]string{"menu", "play", "over"}[s]
}

// recorder collects hook calls so tests can assert ordering.
type recorder struct {
	calls []string
}

func (r *recorder) hook(name string) Hook[*recorder] {
	return func(ctx *recorder) { ctx.calls = append(ctx.calls, name) }
}

func newMachine(r *recorder) *Machine[state, *recorder] {
	m := New[state, *recorder](menu)
	m.Handle(menu, Stage[*recorder]{
		Enter:  []Hook[*recorder]{r.hook("menu.enter")},
		Update: []Hook[*recorder]{r.hook("menu.update")},
		Exit:   []Hook[*recorder]{r.hook("menu.exit")},
	})
	m.Handle(play, Stage[*recorder]{
		Enter:  []Hook[*recorder]{r.hook("play.enter")},
		Update: []Hook[*recorder]{r.hook("play.a"), r.hook("play.b")},
		Exit:   []Hook[*recorder]{r.hook("play.exit")},
	})
	m.Handle(over, Stage[*recorder]{
		Enter: []Hook[*recorder]{r.hook("over.enter")},
		Exit:  []Hook[*recorder]{r.hook("over.exit")},
	})
	m.Allow(menu, play).Allow(play, over).Allow(over, menu)
	return m
}

func TestStartRunsEnterOnce(t *testing.T) {
	r := &recorder{}
	m := newMachine(r)

	m.Start(r)
	m.Start(r)

	if got := strings.Join(r.calls, ","); got != "menu.enter" {
		t.Errorf("calls = %s", got)
	}
	if !m.Started() {
		t.Error("Started() should be true")
	}
}

func TestTickOnUnstartedMachineOnlyStarts(t *testing.T) {
	r := &recorder{}
	m := newMachine(r)

	if m.Tick(r) {
		t.Error("first Tick should not report a transition")
	}
	m.Tick(r)

	if got := strings.Join(r.calls, ","); got != "menu.enter,menu.update" {
		t.Errorf("calls = %s", got)
	}
}

func TestTransitionCommitsOnNextTick(t *testing.T) {
	r := &recorder{}
	m := newMachine(r)
	m.Start(r)

	m.Request(play)
	if m.Current() != menu {
		t.Fatal("Request must not switch state immediately")
	}
	if next, ok := m.Pending(); !ok || next != play {
		t.Fatalf("Pending() = %v, %v", next, ok)
	}

	r.calls = nil
	if !m.Tick(r) {
		t.Fatal("Tick should commit the pending transition")
	}
	if got := strings.Join(r.calls, ","); got != "menu.exit,play.enter" {
		t.Errorf("commit calls = %s", got)
	}
	if m.Current() != play {
		t.Errorf("Current() = %v", m.Current())
	}
	if _, ok := m.Pending(); ok {
		t.Error("pending slot should be empty after commit")
	}

	r.calls = nil
	m.Tick(r)
	if got := strings.Join(r.calls, ","); got != "play.a,play.b" {
		t.Errorf("update calls = %s", got)
	}
}

func TestRequestLastWriteWins(t *testing.T) {
	r := &recorder{}
	m := New[state, *recorder](play)
	m.Allow(play, over).Allow(play, menu)
	m.Start(r)

	m.Request(over)
	m.Request(menu)
	m.Tick(r)

	if m.Current() != menu {
		t.Errorf("Current() = %v, expected the last request", m.Current())
	}
}

func TestUndefinedTransitionPanics(t *testing.T) {
	tests := []struct {
		from, to state
	}{
		{menu, over},
		{menu, menu},
		{play, menu},
		{over, play},
	}

	for _, tc := range tests {
		t.Run(tc.from.String()+"->"+tc.to.String(), func(t *testing.T) {
			r := &recorder{}
			m := newMachine(r)
			m.Reset(tc.from)
			m.Start(r)

			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			m.Request(tc.to)
		})
	}
}

func TestRequestDuringEnterPanics(t *testing.T) {
	var m *Machine[state, *recorder]
	m = New[state, *recorder](menu)
	m.Allow(menu, play)
	m.Handle(menu, Stage[*recorder]{
		Enter: []Hook[*recorder]{func(*recorder) { m.Request(play) }},
	})

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	m.Start(&recorder{})
}

func TestStopRunsExit(t *testing.T) {
	r := &recorder{}
	m := newMachine(r)
	m.Start(r)
	m.Request(play)
	m.Stop(r)

	if got := strings.Join(r.calls, ","); got != "menu.enter,menu.exit" {
		t.Errorf("calls = %s", got)
	}
	if _, ok := m.Pending(); ok {
		t.Error("Stop should drop the pending request")
	}
	if m.Started() {
		t.Error("machine should be stopped")
	}
}

func TestFullCycle(t *testing.T) {
	r := &recorder{}
	m := newMachine(r)
	m.Start(r)

	order := []state{play, over, menu, play}
	for _, next := range order {
		m.Request(next)
		m.Tick(r)
		if m.Current() != next {
			t.Fatalf("Current() = %v, expected %v", m.Current(), next)
		}
	}
}

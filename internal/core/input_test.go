package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := FrameOf(ActionConfirm)
	if !f.Has(ActionConfirm) {
		t.Error("FrameOf should set Confirm")
	}
	if f.Has(ActionQuit) {
		t.Error("Quit was never set")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionConfirm) {
		t.Error("Clear should drop actions")
	}
	if !clone.Has(ActionConfirm) {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionConfirm) {
		t.Error("zero frame has no actions")
	}
}

func TestLatchReportsRisingEdgeOnly(t *testing.T) {
	l := NewLatch()
	held := map[Action]bool{ActionConfirm: true}

	if !l.Frame(held).Has(ActionConfirm) {
		t.Fatal("first tick with key down should fire")
	}
	for i := 0; i < 5; i++ {
		if l.Frame(held).Has(ActionConfirm) {
			t.Fatalf("holding the key fired again on tick %d", i+2)
		}
	}

	if l.Frame(map[Action]bool{}).Has(ActionConfirm) {
		t.Error("release should not fire")
	}
	if !l.Frame(held).Has(ActionConfirm) {
		t.Error("pressing again after release should fire")
	}
}

func TestLatchRelease(t *testing.T) {
	l := NewLatch()
	held := map[Action]bool{ActionConfirm: true}
	l.Frame(held)
	l.Release()

	if !l.Frame(held).Has(ActionConfirm) {
		t.Error("after Release a held key counts as a new press")
	}
}

func TestActionString(t *testing.T) {
	if ActionConfirm.String() != "Confirm" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
}

func TestLatchZeroValue(t *testing.T) {
	var l Latch
	if f := l.Frame(map[Action]bool{ActionConfirm: true}); !f.Has(ActionConfirm) {
		t.Error("zero Latch should report the first press")
	}
	if f := l.Frame(map[Action]bool{ActionConfirm: true}); f.Has(ActionConfirm) {
		t.Error("held key reported twice")
	}

	var released Latch
	released.Release()
}

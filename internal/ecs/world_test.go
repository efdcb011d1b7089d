package ecs

import (
	"testing"

	"github.com/vovakirdan/flappy-bevy/internal/core"
)

func TestSpawnGetDespawn(t *testing.T) {
	w := NewWorld()

	e := w.Spawn(Object{Kind: KindPlayer, Size: core.V(50, 50)})
	o, ok := w.Get(e)
	if !ok {
		t.Fatal("spawned entity should be retrievable")
	}
	if o.Kind != KindPlayer || o.Size != core.V(50, 50) {
		t.Errorf("Get() = %+v", o)
	}

	o.Pos.Y = 12
	if again, _ := w.Get(e); again.Pos.Y != 12 {
		t.Error("Get should return a mutable reference")
	}

	if !w.Despawn(e) {
		t.Error("first Despawn should report true")
	}
	if w.Despawn(e) {
		t.Error("second Despawn should report false")
	}
	if w.Alive(e) {
		t.Error("despawned entity should not be alive")
	}
}

func TestIDsNotReused(t *testing.T) {
	w := NewWorld()
	a := w.Spawn(Object{Kind: KindObstacle})
	w.Despawn(a)
	w.Clear()
	b := w.Spawn(Object{Kind: KindObstacle})
	if a == b {
		t.Errorf("id %d was reused", a)
	}
}

func TestQueryByKindSet(t *testing.T) {
	w := NewWorld()
	p := w.Spawn(Object{Kind: KindPlayer})
	o1 := w.Spawn(Object{Kind: KindObstacle})
	f := w.Spawn(Object{Kind: KindFlyingObstacle})
	o2 := w.Spawn(Object{Kind: KindObstacle})
	w.Spawn(Object{Kind: KindMenuText})

	got := w.Query(KindObstacle, KindPlayer)
	expected := []Entity{p, o1, o2}
	if len(got) != len(expected) {
		t.Fatalf("Query() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Query()[%d] = %d, expected %d", i, got[i], expected[i])
		}
	}

	if n := w.Count(KindFlyingObstacle); n != 1 {
		t.Errorf("Count(FlyingObstacle) = %d", n)
	}
	if n := w.Count(); n != 5 {
		t.Errorf("Count() = %d, expected all 5", n)
	}
	if id, _, ok := w.First(KindFlyingObstacle); !ok || id != f {
		t.Errorf("First() = %d, %v", id, ok)
	}
}

func TestQuerySnapshotAllowsDespawn(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 4; i++ {
		w.Spawn(Object{Kind: KindFlyingObstacle})
	}

	for _, e := range w.Query(KindFlyingObstacle) {
		w.Despawn(e)
	}
	if w.Len() != 0 {
		t.Errorf("Len() = %d after despawning every queried entity", w.Len())
	}
}

func TestDespawnAll(t *testing.T) {
	w := NewWorld()
	w.Spawn(Object{Kind: KindPlayer})
	w.Spawn(Object{Kind: KindObstacle})
	w.Spawn(Object{Kind: KindObstacle})
	w.Spawn(Object{Kind: KindGameOverText})

	if n := w.DespawnAll(KindPlayer, KindObstacle); n != 3 {
		t.Errorf("DespawnAll() = %d, expected 3", n)
	}
	if w.Count(KindPlayer, KindObstacle) != 0 {
		t.Error("matching entities remain")
	}
	if w.Count(KindGameOverText) != 1 {
		t.Error("unrelated entity was removed")
	}
}

func TestObjectBox(t *testing.T) {
	o := Object{Pos: core.V(1, 2), Size: core.V(30, 30)}
	if b := o.Box(); b.Center != core.V(1, 2) || b.Size != core.V(30, 30) {
		t.Errorf("Box() = %+v", b)
	}
}

func TestKindString(t *testing.T) {
	if KindFlyingObstacle.String() != "FlyingObstacle" || Kind(0).String() != "Unknown" {
		t.Error("unexpected kind names")
	}
}

// Package ecs provides a minimal entity store: entities are opaque ids that
// carry one enumerated Kind tag plus the handful of components the game uses.
// Queries filter by a set of kinds, mirroring "With<A> or With<B>" in a full ECS.
package ecs

import (
	"sort"

	"github.com/vovakirdan/flappy-bevy/internal/core"
)

// Entity is an opaque identifier. Ids are never reused within a World.
type Entity uint32

// Kind tags an entity with the role it plays, which also determines which
// phase owns it.
type Kind uint8

const (
	KindMenuText Kind = iota + 1
	KindPlayer
	KindObstacle
	KindFlyingObstacle
	KindScoreText
	KindGameOverText
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindMenuText:
		return "MenuText"
	case KindPlayer:
		return "Player"
	case KindObstacle:
		return "Obstacle"
	case KindFlyingObstacle:
		return "FlyingObstacle"
	case KindScoreText:
		return "ScoreText"
	case KindGameOverText:
		return "GameOverText"
	default:
		return "Unknown"
	}
}

// Object is the component bundle attached to an entity.
// Fields not meaningful for a kind are left zero.
type Object struct {
	Kind     Kind
	Pos      core.Vec2  // Centre position in field units
	Size     core.Vec2  // Bounding box size
	Velocity core.Vec2  // Player: units per tick on Y; flying obstacles: units per second on X
	Gravity  float64    // Added to the vertical velocity every tick
	Text     string     // Label content for text kinds
	Color    core.Color // Display color
}

// Box returns the object's bounding box.
func (o Object) Box() core.Box {
	return core.NewBox(o.Pos, o.Size)
}

// World owns every live entity.
type World struct {
	objects map[Entity]*Object
	next    Entity
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{objects: make(map[Entity]*Object)}
}

// Spawn creates an entity carrying a copy of obj and returns its id.
func (w *World) Spawn(obj Object) Entity {
	w.next++
	o := obj
	w.objects[w.next] = &o
	return w.next
}

// Despawn removes an entity. It reports false if the entity was already gone.
func (w *World) Despawn(e Entity) bool {
	if _, ok := w.objects[e]; !ok {
		return false
	}
	delete(w.objects, e)
	return true
}

// Get returns the entity's components for in-place mutation.
func (w *World) Get(e Entity) (*Object, bool) {
	o, ok := w.objects[e]
	return o, ok
}

// Alive reports whether the entity exists.
func (w *World) Alive(e Entity) bool {
	_, ok := w.objects[e]
	return ok
}

// Query returns every entity whose kind is in kinds, in ascending id order.
// The result is a snapshot, so callers may despawn while iterating it.
// With no kinds given, every entity matches.
func (w *World) Query(kinds ...Kind) []Entity {
	result := make([]Entity, 0, len(w.objects))
	for e, o := range w.objects {
		if matches(o.Kind, kinds) {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// First returns the lowest-id entity of the given kind.
func (w *World) First(kind Kind) (Entity, *Object, bool) {
	ids := w.Query(kind)
	if len(ids) == 0 {
		return 0, nil, false
	}
	return ids[0], w.objects[ids[0]], true
}

// Count returns the number of entities whose kind is in kinds.
func (w *World) Count(kinds ...Kind) int {
	n := 0
	for _, o := range w.objects {
		if matches(o.Kind, kinds) {
			n++
		}
	}
	return n
}

// DespawnAll removes every entity whose kind is in kinds and returns how many were removed.
func (w *World) DespawnAll(kinds ...Kind) int {
	n := 0
	for e, o := range w.objects {
		if matches(o.Kind, kinds) {
			delete(w.objects, e)
			n++
		}
	}
	return n
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.objects)
}

// Clear removes all entities. Ids keep increasing afterwards.
func (w *World) Clear() {
	for e := range w.objects {
		delete(w.objects, e)
	}
}

func matches(k Kind, kinds []Kind) bool {
	if len(kinds) == 0 {
		return true
	}
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

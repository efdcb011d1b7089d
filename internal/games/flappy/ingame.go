package flappy

import (
	"time"

	"github.com/vovakirdan/flappy-bevy/internal/core"
	"github.com/vovakirdan/flappy-bevy/internal/ecs"
)

// Entities owned by the InGame phase.
var inGameKinds = []ecs.Kind{
	ecs.KindPlayer,
	ecs.KindObstacle,
	ecs.KindFlyingObstacle,
	ecs.KindScoreText,
}

func setupGame(ctx *Context) {
	cfg := ctx.cfg

	ctx.World.Spawn(ecs.Object{
		Kind:    ecs.KindPlayer,
		Size:    core.V(cfg.Player.Width, cfg.Player.Height),
		Gravity: cfg.Player.Gravity,
		Color:   core.ColorRed,
	})

	wallSize := core.V(cfg.Walls.Width, cfg.Walls.Height)
	for _, y := range []float64{-cfg.Field.WallOffset, cfg.Field.WallOffset} {
		ctx.World.Spawn(ecs.Object{
			Kind:  ecs.KindObstacle,
			Pos:   core.V(0, y),
			Size:  wallSize,
			Color: core.ColorGray,
		})
	}

	ctx.Timer = NewSpawnTimer(time.Duration(cfg.Obstacles.SpawnPeriod * float64(time.Second)))
	ctx.Score.Reset()

	if ctx.rules.ShowScore {
		// Top-left corner, inside the upper wall.
		ctx.World.Spawn(ecs.Object{
			Kind:  ecs.KindScoreText,
			Pos:   core.V(-cfg.Field.WallOffset+cfg.Walls.Height, cfg.Field.WallOffset),
			Text:  ctx.Score.String(),
			Color: core.ColorYellow,
		})
	}
}

// clampToField limits y to the play field and reports whether the limit was
// reached, which counts as touching a wall. The clamp assigns the bound
// exactly, so comparing against it needs no tolerance.
func clampToField(y, limit float64) (float64, bool) {
	y = core.ClampF(y, -limit, limit)
	return y, y >= limit || y <= -limit
}

// flappingWings applies gravity, the flap impulse and the wall check.
func flappingWings(ctx *Context) {
	for _, e := range ctx.World.Query(ecs.KindPlayer) {
		p, _ := ctx.World.Get(e)

		p.Velocity.Y += p.Gravity
		if ctx.Input.Has(core.ActionConfirm) {
			p.Velocity.Y = ctx.cfg.Player.FlapImpulse
		}

		var touched bool
		p.Pos.Y, touched = clampToField(p.Pos.Y+p.Velocity.Y, ctx.cfg.Field.PlayLimit)

		if touched && ctx.rules.WallsEndRun {
			ctx.RequestTransition(GameOver)
		}
	}
}

// spawnFlyingObstacle releases one obstacle at the right edge every period.
func spawnFlyingObstacle(ctx *Context) {
	if ctx.Timer == nil || !ctx.Timer.Tick(ctx.Delta) {
		return
	}

	obs := ctx.cfg.Obstacles
	y := 0.0
	if ctx.rules.RandomSpawnY {
		y = obs.SpawnRange * (2*ctx.rng.Float64() - 1)
	}

	ctx.World.Spawn(ecs.Object{
		Kind:     ecs.KindFlyingObstacle,
		Pos:      core.V(obs.SpawnX, y),
		Size:     core.V(obs.Width, obs.Height),
		Velocity: core.V(-obs.Speed, 0),
		Color:    core.ColorGray,
	})
}

// moveFlyingObstacle moves obstacles by real elapsed time and removes those
// past the left edge.
func moveFlyingObstacle(ctx *Context) {
	dt := ctx.Delta.Seconds()
	for _, e := range ctx.World.Query(ecs.KindFlyingObstacle) {
		o, _ := ctx.World.Get(e)
		o.Pos.X += o.Velocity.X * dt
		if o.Pos.X < ctx.cfg.Field.DespawnX {
			ctx.World.Despawn(e)
		}
	}
}

// collideFlyingObstacle removes every obstacle overlapping the player and
// scores one point for each.
func collideFlyingObstacle(ctx *Context) {
	players := ctx.World.Query(ecs.KindPlayer)
	for _, e := range ctx.World.Query(ecs.KindFlyingObstacle) {
		o, ok := ctx.World.Get(e)
		if !ok {
			continue
		}
		for _, pe := range players {
			p, ok := ctx.World.Get(pe)
			if !ok {
				continue
			}
			if o.Box().Overlaps(p.Box()) {
				ctx.World.Despawn(e)
				ctx.Score.Add(1)
				break
			}
		}
	}
}

// textScoreUpdate mirrors the score into its label.
func textScoreUpdate(ctx *Context) {
	for _, e := range ctx.World.Query(ecs.KindScoreText) {
		label, _ := ctx.World.Get(e)
		label.Text = ctx.Score.String()
	}
}

func cleanupInGame(ctx *Context) {
	ctx.World.DespawnAll(inGameKinds...)

	ctx.lastScore = ctx.Score.Value()
	ctx.emit(core.Event{
		Kind:  core.EventSessionEnded,
		Phase: InGame.String(),
		Score: ctx.lastScore,
	})

	ctx.Score.Reset()
	ctx.Timer = nil
}

package flappy

import (
	"fmt"

	"github.com/vovakirdan/flappy-bevy/internal/core"
	"github.com/vovakirdan/flappy-bevy/internal/ecs"
)

func setupGameOver(ctx *Context) {
	ctx.World.Spawn(ecs.Object{
		Kind:  ecs.KindGameOverText,
		Text:  ctx.cfg.Text.GameOver,
		Color: core.ColorWhite,
	})
	if ctx.rules.ShowScore {
		ctx.World.Spawn(ecs.Object{
			Kind:  ecs.KindGameOverText,
			Pos:   core.V(0, -ctx.cfg.Field.PlayLimit/2),
			Text:  fmt.Sprintf("Score: %d", ctx.lastScore),
			Color: core.ColorYellow,
		})
	}
}

// returnMenu goes back to the menu on a fresh confirm press.
func returnMenu(ctx *Context) {
	if ctx.Input.Has(core.ActionConfirm) {
		ctx.RequestTransition(Menu)
	}
}

func cleanupGameOver(ctx *Context) {
	ctx.World.DespawnAll(ecs.KindGameOverText)
}

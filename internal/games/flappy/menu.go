package flappy

import (
	"github.com/vovakirdan/flappy-bevy/internal/core"
	"github.com/vovakirdan/flappy-bevy/internal/ecs"
)

func setupMenu(ctx *Context) {
	ctx.World.Spawn(ecs.Object{
		Kind:  ecs.KindMenuText,
		Text:  ctx.cfg.Text.Menu,
		Color: core.ColorWhite,
	})
}

// toInGame starts a session on a fresh confirm press.
func toInGame(ctx *Context) {
	if ctx.Input.Has(core.ActionConfirm) {
		ctx.RequestTransition(InGame)
	}
}

func cleanupMenu(ctx *Context) {
	ctx.World.DespawnAll(ecs.KindMenuText)
}

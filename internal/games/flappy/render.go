package flappy

import (
	"math"
	"strings"

	"github.com/vovakirdan/flappy-bevy/internal/core"
	"github.com/vovakirdan/flappy-bevy/internal/ecs"
)

// Visual characters for rendering
const (
	PlayerChar   = '●'
	WallChar     = '█'
	ObstacleChar = '▓'
)

// viewport maps field units, centred and Y-up, onto screen cells.
type viewport struct {
	half   float64 // Half of the visible field extent
	width  int
	height int
}

func (v viewport) col(x float64) float64 {
	return (x + v.half) / (2 * v.half) * float64(v.width)
}

func (v viewport) row(y float64) float64 {
	return (v.half - y) / (2 * v.half) * float64(v.height)
}

// rect converts a box to the cells it covers, at least one cell in each direction.
func (v viewport) rect(b core.Box) core.Rect {
	lo, hi := b.Min(), b.Max()
	x0 := int(math.Floor(v.col(lo.X)))
	x1 := int(math.Ceil(v.col(hi.X)))
	y0 := int(math.Floor(v.row(hi.Y)))
	y1 := int(math.Ceil(v.row(lo.Y)))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.ctx == nil || dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	vp := viewport{half: g.cfg.Field.WallOffset, width: dst.Width(), height: dst.Height()}
	w := g.ctx.World

	for _, e := range w.Query(ecs.KindObstacle) {
		o, _ := w.Get(e)
		dst.SetColor(o.Color)
		dst.DrawRect(vp.rect(o.Box()), WallChar)
	}
	for _, e := range w.Query(ecs.KindFlyingObstacle) {
		o, _ := w.Get(e)
		dst.SetColor(o.Color)
		dst.DrawRect(vp.rect(o.Box()), ObstacleChar)
	}
	for _, e := range w.Query(ecs.KindPlayer) {
		o, _ := w.Get(e)
		dst.SetColor(o.Color)
		dst.DrawRect(vp.rect(o.Box()), PlayerChar)
	}

	for _, e := range w.Query(ecs.KindMenuText, ecs.KindGameOverText) {
		o, _ := w.Get(e)
		dst.SetColor(o.Color)
		lines := strings.Split(o.Text, "\n")
		top := int(vp.row(o.Pos.Y)) - len(lines)/2
		dst.DrawTextCentered(top, o.Text)
	}
	for _, e := range w.Query(ecs.KindScoreText) {
		o, _ := w.Get(e)
		dst.SetColor(o.Color)
		dst.DrawText(int(vp.col(o.Pos.X)), 0, " Score: "+o.Text+" ")
	}

	dst.SetColor(core.ColorDefault)
}

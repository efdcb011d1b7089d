//go:build ebiten

package window

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/flappy-bevy/internal/core"
	"github.com/vovakirdan/flappy-bevy/internal/ecs"
	"github.com/vovakirdan/flappy-bevy/internal/games/flappy"
)

const lineHeight = 16

// Game adapts a flappy.Game to the ebiten.Game interface.
type Game struct {
	game     *flappy.Game
	proj     projection
	dt       time.Duration
	latch    *core.Latch
	recorder *recorder
	pixel    *ebiten.Image
}

// New wraps a game that has already been Reset.
func New(game *flappy.Game, opts Options) *Game {
	rate := opts.TickRate
	if rate <= 0 {
		rate = ebiten.DefaultTPS
	}

	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(rgba(core.ColorWhite))

	return &Game{
		game:     game,
		proj:     projection{width: opts.Config.Window.Width, height: opts.Config.Window.Height},
		dt:       time.Second / time.Duration(rate),
		latch:    core.NewLatch(),
		recorder: newRecorder(game.ID(), opts.Store, opts.Logger),
		pixel:    pixel,
	}
}

// Update samples the keyboard once and advances the game by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.recorder.handle(g.game.End().Events)
		return ebiten.Termination
	}
	if !ebiten.IsFocused() {
		g.latch.Release()
	}

	in := g.latch.Frame(map[core.Action]bool{
		core.ActionConfirm: ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyEnter),
	})
	result := g.game.Step(in, g.dt)
	g.recorder.handle(result.Events)
	return nil
}

// Draw renders walls, obstacles, the player and the phase texts.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	ctx := g.game.Context()
	if ctx == nil {
		return
	}
	w := ctx.World

	for _, kind := range []ecs.Kind{ecs.KindObstacle, ecs.KindFlyingObstacle, ecs.KindPlayer} {
		for _, e := range w.Query(kind) {
			o, _ := w.Get(e)
			g.fill(screen, o)
		}
	}

	for _, e := range w.Query(ecs.KindMenuText, ecs.KindGameOverText) {
		o, _ := w.Get(e)
		g.drawCentered(screen, o)
	}
	for _, e := range w.Query(ecs.KindScoreText) {
		o, _ := w.Get(e)
		x, y := g.proj.point(o.Pos)
		text.Draw(screen, "Score: "+o.Text, basicfont.Face7x13, int(x), int(y)+lineHeight, rgba(o.Color))
	}

	if ebiten.IsKeyPressed(ebiten.KeyF1) {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  FPS %.0f  tick %d", ebiten.ActualTPS(), ebiten.ActualFPS(), g.game.Ticks()), 4, 4)
	}
}

func (g *Game) fill(screen *ebiten.Image, o *ecs.Object) {
	r := g.proj.rect(o.Box())
	if r.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(rgba(o.Color))
	screen.DrawImage(g.pixel, op)
}

// drawCentered draws multi-line text centred on the entity position.
func (g *Game) drawCentered(screen *ebiten.Image, o *ecs.Object) {
	cx, cy := g.proj.point(o.Pos)
	lines := strings.Split(o.Text, "\n")
	top := int(cy) - len(lines)*lineHeight/2 + lineHeight
	for i, line := range lines {
		width := text.BoundString(basicfont.Face7x13, line).Dx()
		text.Draw(screen, line, basicfont.Face7x13, int(cx)-width/2, top+i*lineHeight, rgba(o.Color))
	}
}

// Layout fixes the logical screen to the configured window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.proj.width, g.proj.height
}

// Run opens the window and blocks until it is closed.
func Run(game *flappy.Game, opts Options) error {
	win := opts.Config.Window
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowSize(win.Width, win.Height)
	if win.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	if err := ebiten.RunGame(New(game, opts)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

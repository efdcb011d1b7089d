// Package window runs Flappy Bevy in a desktop window through Ebitengine.
//
// The Ebitengine frontend is only compiled with the `ebiten` build tag;
// without it Run reports how to enable it. The field-to-pixel mapping,
// palette and score recording here are shared by both builds.
package window

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-bevy/internal/config"
	"github.com/vovakirdan/flappy-bevy/internal/core"
)

// ScoreStore is the part of the score database the window needs.
type ScoreStore interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Options configures the window frontend.
type Options struct {
	Config   config.FlappyConfig
	TickRate int
	Store    ScoreStore  // may be nil
	Logger   *log.Logger // may be nil
}

var background = color.RGBA{R: 24, G: 26, B: 33, A: 255}

var palette = map[core.Color]color.RGBA{
	core.ColorDefault: {R: 230, G: 230, B: 230, A: 255},
	core.ColorRed:     {R: 255, G: 0, B: 0, A: 255},
	core.ColorGray:    {R: 128, G: 128, B: 128, A: 255},
	core.ColorWhite:   {R: 255, G: 255, B: 255, A: 255},
	core.ColorYellow:  {R: 255, G: 215, B: 0, A: 255},
	core.ColorCyan:    {R: 0, G: 200, B: 220, A: 255},
}

// rgba returns the window colour for a cell colour.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// projection maps field units (origin at the centre, y up) to window pixels
// (origin top-left, y down). One field unit is one pixel at the configured
// window size.
type projection struct {
	width, height int
}

func (p projection) point(v core.Vec2) (float64, float64) {
	return v.X + float64(p.width)/2, float64(p.height)/2 - v.Y
}

func (p projection) rect(b core.Box) image.Rectangle {
	lo, hi := b.Min(), b.Max()
	x0, y0 := p.point(core.V(lo.X, hi.Y))
	x1, y1 := p.point(core.V(hi.X, lo.Y))
	r := image.Rect(
		int(math.Floor(x0)), int(math.Floor(y0)),
		int(math.Ceil(x1)), int(math.Ceil(y1)),
	)
	return r.Intersect(image.Rect(0, 0, p.width, p.height))
}

// recorder persists finished sessions reported by the game.
type recorder struct {
	gameID string
	store  ScoreStore
	logger *log.Logger
	best   int
}

func newRecorder(gameID string, store ScoreStore, logger *log.Logger) *recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &recorder{gameID: gameID, store: store, logger: logger}
}

func (r *recorder) handle(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventPhaseEntered:
			r.logger.Debug("phase entered", "game", r.gameID, "phase", ev.Phase)
		case core.EventSessionEnded:
			r.save(ev.Score)
		}
	}
}

func (r *recorder) save(score int) {
	if score > r.best {
		r.best = score
	}
	if score <= 0 || r.store == nil {
		return
	}
	if _, err := r.store.SaveScore(r.gameID, score); err != nil {
		r.logger.Warn("could not save score", "game", r.gameID, "score", score, "error", err)
		return
	}
	r.logger.Debug("score saved", "game", r.gameID, "score", score)
}

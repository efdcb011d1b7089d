//go:build !ebiten

package window

import (
	"errors"

	"github.com/vovakirdan/flappy-bevy/internal/games/flappy"
)

// ErrNoWindow is returned by Run in builds without the ebiten tag.
var ErrNoWindow = errors.New("window: built without window support, rebuild with -tags ebiten")

// Run reports that the window frontend is not compiled in.
func Run(*flappy.Game, Options) error {
	return ErrNoWindow
}

package main

import (
	"fmt"
	"os"

	"github.com/vovakirdan/flappy-bevy/internal/platform/tui"
	"github.com/vovakirdan/flappy-bevy/internal/platform/window"
	"github.com/vovakirdan/flappy-bevy/internal/storage"
)

// openStoreOrWarn opens the scores database for commands that still work
// without it. Returns nil on failure.
func openStoreOrWarn() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// The frontends take interfaces; a missing store must stay a nil interface.

func tuiStore(s *storage.Store) tui.ScoreStore {
	if s == nil {
		return nil
	}
	return s
}

func boardStore(s *storage.Store) tui.BoardStore {
	if s == nil {
		return nil
	}
	return s
}

func windowStore(s *storage.Store) window.ScoreStore {
	if s == nil {
		return nil
	}
	return s
}

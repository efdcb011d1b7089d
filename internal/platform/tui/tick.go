// Package tui runs Flappy Bevy in a terminal with Bubble Tea, locally or
// over SSH, and shows the high-score board.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTickRate is used when the configured rate is not positive.
const DefaultTickRate = 60

// maxTickDelta caps the time handed to the game after a stall, such as a
// suspended terminal or a stuck SSH connection.
const maxTickDelta = time.Second

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval is the tick period, and the dt of a tick with no predecessor.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends the next tick message.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickDelta returns the real time between two ticks. The nominal interval
// stands in when either time is unknown or the clock went backwards.
func tickDelta(prev, now time.Time, tickRate int) time.Duration {
	if prev.IsZero() || now.IsZero() {
		return tickInterval(tickRate)
	}
	dt := now.Sub(prev)
	if dt <= 0 {
		return tickInterval(tickRate)
	}
	return min(dt, maxTickDelta)
}

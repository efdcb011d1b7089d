package flappy

import "time"

// SpawnTimer is a repeating countdown. Each Tick adds elapsed time; when a
// full period has accumulated the timer fires and keeps whatever time is left
// over, so it fires once every period indefinitely.
type SpawnTimer struct {
	period  time.Duration
	elapsed time.Duration
}

// NewSpawnTimer creates a timer that fires every period.
func NewSpawnTimer(period time.Duration) *SpawnTimer {
	if period <= 0 {
		panic("flappy: spawn timer period must be positive")
	}
	return &SpawnTimer{period: period}
}

// Tick advances the timer by dt and reports whether a period completed.
// Even when dt spans several periods the timer fires only once for this tick.
func (t *SpawnTimer) Tick(dt time.Duration) bool {
	if dt <= 0 {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.period {
		return false
	}
	t.elapsed %= t.period
	return true
}

// Elapsed returns the time accumulated towards the next firing.
func (t *SpawnTimer) Elapsed() time.Duration {
	return t.elapsed
}

// Period returns the firing interval.
func (t *SpawnTimer) Period() time.Duration {
	return t.period
}

// Reset discards accumulated time.
func (t *SpawnTimer) Reset() {
	t.elapsed = 0
}

package flappy

import "strconv"

// ScoreBoard counts flying obstacles caught during one session.
type ScoreBoard struct {
	value int
}

// Add increases the score by n. Negative n is ignored so the score never decreases.
func (s *ScoreBoard) Add(n int) {
	if n > 0 {
		s.value += n
	}
}

// Value returns the current score.
func (s *ScoreBoard) Value() int {
	return s.value
}

// Reset sets the score back to zero.
func (s *ScoreBoard) Reset() {
	s.value = 0
}

// String formats the score as plain decimal text.
func (s *ScoreBoard) String() string {
	return strconv.Itoa(s.value)
}

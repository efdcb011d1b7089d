package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenColor(t *testing.T) {
	s := NewScreen(4, 1)

	s.SetColor(ColorRed)
	s.Set(1, 0, '#')
	s.SetColor(ColorDefault)
	s.Set(2, 0, '.')

	if c := s.GetCell(1, 0); c.Color != ColorRed || c.Rune != '#' {
		t.Errorf("GetCell(1, 0) = %+v", c)
	}
	if c := s.GetCell(2, 0); c.Color != ColorDefault {
		t.Errorf("GetCell(2, 0) color = %v, expected default", c.Color)
	}

	s.Clear()
	if c := s.GetCell(1, 0); c.Color != ColorDefault || c.Rune != ' ' {
		t.Errorf("Clear() left %+v", c)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(12, 3)
	s.DrawTextCentered(0, "ab\nabcd")

	if got := s.Row(0); got != "     ab     " {
		t.Errorf("Row(0) = %q", got)
	}
	if got := s.Row(1); got != "    abcd    " {
		t.Errorf("Row(1) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3))

	expected := "┌──┐\n│  │\n└──┘"
	if got := s.String(); got != expected {
		t.Errorf("DrawBox rendered:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'X')
	s.Resize(8, 2)

	if s.Width() != 8 || s.Height() != 2 {
		t.Fatalf("Resize gave %dx%d", s.Width(), s.Height())
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("Resize should clear the buffer")
	}
}

package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "same centre",
			a:        NewBox(V(0, 0), V(50, 50)),
			b:        NewBox(V(0, 0), V(30, 30)),
			expected: true,
		},
		{
			name:     "partial overlap",
			a:        NewBox(V(0, 0), V(50, 50)),
			b:        NewBox(V(39, 20), V(30, 30)),
			expected: true,
		},
		{
			name:     "touching edges horizontally",
			a:        NewBox(V(0, 0), V(50, 50)),
			b:        NewBox(V(40, 0), V(30, 30)),
			expected: false,
		},
		{
			name:     "touching edges vertically",
			a:        NewBox(V(0, 0), V(50, 50)),
			b:        NewBox(V(0, -40), V(30, 30)),
			expected: false,
		},
		{
			name:     "apart horizontally",
			a:        NewBox(V(0, 0), V(50, 50)),
			b:        NewBox(V(250, 0), V(30, 30)),
			expected: false,
		},
		{
			name:     "overlap on x only",
			a:        NewBox(V(0, 0), V(50, 50)),
			b:        NewBox(V(10, 100), V(30, 30)),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() is not symmetric: got %v", got)
			}
		})
	}
}

func TestBoxCorners(t *testing.T) {
	b := NewBox(V(10, -20), V(30, 40))
	if b.Min() != V(-5, -40) {
		t.Errorf("Min() = %v", b.Min())
	}
	if b.Max() != V(25, 0) {
		t.Errorf("Max() = %v", b.Max())
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"adjacent horizontal", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"adjacent vertical", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, expected float64
	}{
		{0, 0},
		{250, 200},
		{-300, -200},
		{200, 200},
		{-199.9, -199.9},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, -200, 200); got != tc.expected {
			t.Errorf("ClampF(%v) = %v, expected %v", tc.val, got, tc.expected)
		}
	}
}

func TestClampAndMinMax(t *testing.T) {
	if Clamp(15, 0, 10) != 10 || Clamp(-1, 0, 10) != 0 || Clamp(5, 0, 10) != 5 {
		t.Error("Clamp returned an unexpected value")
	}
	if Min(3, 7) != 3 || Max(3, 7) != 7 {
		t.Error("Min/Max returned an unexpected value")
	}
}

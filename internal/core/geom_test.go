package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(10, 10, 20, 20),
			expected: true,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(20, 0, 20, 20),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(0, 20, 20, 20),
			expected: false,
		},
		{
			name:     "half cell offset",
			a:        NewRect(170, 250, 20, 20),
			b:        NewRect(170, 240, 20, 20),
			expected: true,
		},
		{
			name:     "single unit overlap",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(19, 19, 20, 20),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(30, 60, 580, 380)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"inside", Point{X: 170, Y: 250}, true},
		{"near corner (inclusive)", Point{X: 30, Y: 60}, true},
		{"far x edge (exclusive)", Point{X: 610, Y: 100}, false},
		{"far y edge (exclusive)", Point{X: 100, Y: 440}, false},
		{"left of area", Point{X: 29, Y: 100}, false},
		{"above area", Point{X: 100, Y: 59}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestRectInsetAndCenter(t *testing.T) {
	r := NewRect(20, 50, 600, 400).Inset(10)

	if r != NewRect(30, 60, 580, 380) {
		t.Fatalf("Inset(10) = %+v", r)
	}
	cx, cy := r.Center()
	if cx != 320 || cy != 250 {
		t.Errorf("Center() = (%d, %d), expected (320, 250)", cx, cy)
	}
	if r.Empty() {
		t.Error("inset rect should not be empty")
	}
	if !NewRect(0, 0, 10, 10).Inset(5).Empty() {
		t.Error("fully inset rect should be empty")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestAbsAndCeilDiv(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned wrong value")
	}
	if CeilDiv(560, 20) != 28 {
		t.Errorf("CeilDiv(560, 20) = %d, expected 28", CeilDiv(560, 20))
	}
	if CeilDiv(570, 20) != 29 {
		t.Errorf("CeilDiv(570, 20) = %d, expected 29", CeilDiv(570, 20))
	}
	if CeilDiv(0, 20) != 0 {
		t.Error("CeilDiv(0, 20) should be 0")
	}
}

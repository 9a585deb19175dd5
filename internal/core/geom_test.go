package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"last inside cell", 29, 24, true},
		{"left of rect", 9, 15, false},
		{"above rect", 15, 9, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(80, 24, 20, 6)
	if r.X != 30 || r.Y != 9 {
		t.Errorf("CenteredRect origin = (%d, %d), expected (30, 9)", r.X, r.Y)
	}
	if r.Right() != 50 || r.Bottom() != 15 {
		t.Errorf("CenteredRect far edge = (%d, %d), expected (50, 15)", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 1, 10, 5},
		{0, 1, 10, 1},
		{-7, 1, 10, 1},
		{11, 1, 10, 10},
		{1, 1, 1, 1},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(3, 7) != 7 || Max(7, 3) != 7 || Max(-1, -2) != -1 {
		t.Error("Max returned the wrong value")
	}
}

package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left corner", 2, 3, true},
		{"last cell", 5, 4, true},
		{"right edge is exclusive", 6, 3, false},
		{"bottom edge is exclusive", 2, 5, false},
		{"left of rect", 1, 3, false},
		{"above rect", 3, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRectCenterIn(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)
	inner := outer.CenterIn(20, 10)

	if inner.X != 30 || inner.Y != 7 {
		t.Errorf("CenterIn origin = (%d, %d), want (30, 7)", inner.X, inner.Y)
	}
	if inner.W != 20 || inner.H != 10 {
		t.Errorf("CenterIn size = %dx%d, want 20x10", inner.W, inner.H)
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(1, 1, 10, 6).Inset(1)
	if r != NewRect(2, 2, 8, 4) {
		t.Errorf("Inset(1) = %+v", r)
	}

	tiny := NewRect(0, 0, 1, 1).Inset(2)
	if tiny.W != 0 || tiny.H != 0 {
		t.Errorf("Inset should not produce negative sizes, got %+v", tiny)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{42, 0, 10, 10},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tc.val, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(2, 7) != 2 || Max(2, 7) != 7 {
		t.Error("Min/Max returned the wrong operand")
	}
}

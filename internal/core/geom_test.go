package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if r.Right() != 6 {
		t.Errorf("Right() = %d, want 6", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, want 8", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 4 || cy != 5 {
		t.Errorf("Center() = (%d,%d), want (4,5)", cx, cy)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(1, 1, 3, 3)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 2, 2, true},
		{"top-left corner", 1, 1, true},
		{"right edge exclusive", 4, 2, false},
		{"bottom edge exclusive", 2, 4, false},
		{"outside", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 0, 0},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%d,%d,%d) = %d, want %d", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(2, 5) != 2 || Min(5, 2) != 2 {
		t.Error("Min wrong")
	}
	if Max(2, 5) != 5 || Max(5, 2) != 5 {
		t.Error("Max wrong")
	}
}

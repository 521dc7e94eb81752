package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if !r.Contains(2, 3) {
		t.Error("Expected top-left corner to be contained")
	}
	if r.Contains(6, 3) {
		t.Error("Expected right edge to be exclusive")
	}
	if r.Contains(2, 8) {
		t.Error("Expected bottom edge to be exclusive")
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{15, 0, 10, 10},
	}
	for _, c := range cases {
		if got := Clamp(c.val, c.min, c.max); got != c.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", c.val, c.min, c.max, got, c.want)
		}
	}
}

func TestAbsMinMax(t *testing.T) {
	if Abs(-7) != 7 || Abs(7) != 7 {
		t.Error("Abs incorrect")
	}
	if Min(2, 3) != 2 || Max(2, 3) != 3 {
		t.Error("Min/Max incorrect")
	}
}

func TestRiderColorCycles(t *testing.T) {
	if RiderColor(0) != ColorDefault {
		t.Error("Expected default color for invalid id")
	}
	if RiderColor(1) == RiderColor(2) {
		t.Error("Expected distinct colors for adjacent riders")
	}
	// Palette wraps for large ids
	if RiderColor(1) != RiderColor(1+len(riderPalette)) {
		t.Error("Expected palette to wrap")
	}
}

package arena

import "testing"

func TestGridClaimAndRelease(t *testing.T) {
	g := NewGrid(10)

	c := Cell{X: 3, Z: 4}
	if !g.IsFree(c) {
		t.Fatal("Expected fresh cell to be free")
	}

	g.Claim(c, 1)
	if g.IsFree(c) {
		t.Error("Expected claimed cell to not be free")
	}
	if got := g.Owner(c); got != 1 {
		t.Errorf("Expected owner 1, got %d", got)
	}

	// Claiming an already-claimed cell is a no-op; the first owner keeps it.
	g.Claim(c, 2)
	if got := g.Owner(c); got != 1 {
		t.Errorf("Expected owner 1 after double claim, got %d", got)
	}

	g.Claim(Cell{X: 5, Z: 5}, 2)
	g.Release(1)
	if !g.IsFree(c) {
		t.Error("Expected released cell to be free")
	}
	if g.Owner(Cell{X: 5, Z: 5}) != 2 {
		t.Error("Release must only clear the given owner's cells")
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid(10)

	outside := []Cell{
		{X: -1, Z: 0},
		{X: 0, Z: -1},
		{X: 10, Z: 0},
		{X: 0, Z: 10},
	}
	for _, c := range outside {
		if g.InBounds(c) {
			t.Errorf("Expected (%d,%d) out of bounds", c.X, c.Z)
		}
		if g.IsFree(c) {
			t.Errorf("Expected out-of-bounds (%d,%d) to not be free", c.X, c.Z)
		}
		g.Claim(c, 1) // must not panic
		if g.Owner(c) != 0 {
			t.Errorf("Expected no owner out of bounds at (%d,%d)", c.X, c.Z)
		}
	}
}

func TestGridClaimedCount(t *testing.T) {
	g := NewGrid(10)
	g.Claim(Cell{X: 0, Z: 0}, 1)
	g.Claim(Cell{X: 1, Z: 0}, 1)
	g.Claim(Cell{X: 2, Z: 0}, 2)

	if got := g.ClaimedCount(); got != 3 {
		t.Errorf("Expected 3 claimed cells, got %d", got)
	}

	g.Release(1)
	if got := g.ClaimedCount(); got != 1 {
		t.Errorf("Expected 1 claimed cell after release, got %d", got)
	}
}

// Package arena implements the deterministic light-trail simulation: the
// occupancy grid, the per-rider motion and trail state machine, the
// fixed-timestep collision resolver, and the heuristics driving autonomous
// riders. It contains pure game logic with no UI dependencies.
package arena

// Cell is a single grid coordinate.
type Cell struct {
	X, Z int
}

// Grid is the arena occupancy store: a fixed N×N board of owner tags.
// Cells are stored in row-major order (index = z*N + x); owner 0 means free.
// Only the engine and rider death mutate it.
type Grid struct {
	n      int
	owners []uint8
}

// NewGrid creates an empty grid with the given side length.
func NewGrid(n int) *Grid {
	return &Grid{
		n:      n,
		owners: make([]uint8, n*n),
	}
}

// Size returns the grid side length.
func (g *Grid) Size() int {
	return g.n
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Cell) int {
	return c.Z*g.n + c.X
}

// InBounds returns true if the cell is within the grid boundaries.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.n && c.Z >= 0 && c.Z < g.n
}

// IsFree returns true iff the cell is in-bounds and unclaimed.
func (g *Grid) IsFree(c Cell) bool {
	return g.InBounds(c) && g.owners[g.index(c)] == 0
}

// Owner returns the rider id claiming the cell, or 0 if free or out of bounds.
func (g *Grid) Owner(c Cell) int {
	if !g.InBounds(c) {
		return 0
	}
	return int(g.owners[g.index(c)])
}

// Claim marks a cell as owned by the given rider id.
// No-ops if the cell is out of bounds or already claimed; the engine's step
// ordering guarantees exclusivity for legitimate callers.
func (g *Grid) Claim(c Cell, owner int) {
	if !g.InBounds(c) {
		return
	}
	i := g.index(c)
	if g.owners[i] != 0 {
		return
	}
	g.owners[i] = uint8(owner)
}

// Release clears every cell currently owned by the given rider id.
func (g *Grid) Release(owner int) {
	tag := uint8(owner)
	for i := range g.owners {
		if g.owners[i] == tag {
			g.owners[i] = 0
		}
	}
}

// ClaimedCount returns the number of non-free cells.
func (g *Grid) ClaimedCount() int {
	count := 0
	for _, o := range g.owners {
		if o != 0 {
			count++
		}
	}
	return count
}

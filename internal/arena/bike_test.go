package arena

import "testing"

func TestDirectionCycles(t *testing.T) {
	for _, d := range []Direction{North, East, South, West} {
		if d.Left().Right() != d || d.Right().Left() != d {
			t.Errorf("Left/Right cycles must be inverses for %s", d)
		}
		if d.Left().Left().Left().Left() != d {
			t.Errorf("Left must form a 4-cycle from %s", d)
		}
		dx, dz := d.Vector()
		if mag := dx*dx + dz*dz; mag != 1 {
			t.Errorf("%s vector (%d,%d) is not a unit vector", d, dx, dz)
		}
	}
	if North.Right() != East || East.Right() != South || South.Right() != West || West.Right() != North {
		t.Error("Right cycle must be N→E→S→W→N")
	}
}

func TestQueueTurnOverwrites(t *testing.T) {
	b := NewBike(1, Cell{X: 5, Z: 5}, East, 0)

	b.QueueTurn(TurnLeft)
	b.QueueTurn(TurnRight)
	if b.PendingTurn() != TurnRight {
		t.Errorf("Expected latest queued turn to win, got %s", b.PendingTurn())
	}

	b.Alive = false
	b.QueueTurn(TurnLeft)
	if b.PendingTurn() != TurnRight {
		t.Error("QueueTurn must be a no-op on a dead bike")
	}
}

func TestPeekNextIsPure(t *testing.T) {
	b := NewBike(1, Cell{X: 5, Z: 5}, East, 0)
	b.QueueTurn(TurnLeft)

	target, heading := b.PeekNext()
	if heading != North {
		t.Errorf("Expected peeked heading north, got %s", heading)
	}
	if target != (Cell{X: 5, Z: 4}) {
		t.Errorf("Expected target (5,4), got (%d,%d)", target.X, target.Z)
	}

	// Nothing may have changed.
	if b.Pos != (Cell{X: 5, Z: 5}) || b.Heading != East || b.PendingTurn() != TurnLeft {
		t.Error("PeekNext must not mutate the bike")
	}

	// Peeking twice gives the same answer.
	target2, heading2 := b.PeekNext()
	if target2 != target || heading2 != heading {
		t.Error("PeekNext must be repeatable")
	}
}

func TestAdvanceMovesExactlyOneUnit(t *testing.T) {
	turns := []Turn{TurnNone, TurnLeft, TurnRight, TurnNone, TurnLeft}
	b := NewBike(1, Cell{X: 10, Z: 10}, North, 0)

	for _, turn := range turns {
		if turn != TurnNone {
			b.QueueTurn(turn)
		}
		before := b.Pos
		b.Advance()
		dx, dz := b.Heading.Vector()
		want := Cell{X: before.X + dx, Z: before.Z + dz}
		if b.Pos != want {
			t.Fatalf("Expected position (%d,%d) after advance, got (%d,%d)", want.X, want.Z, b.Pos.X, b.Pos.Z)
		}
		if b.PendingTurn() != TurnNone {
			t.Fatal("Advance must consume the queued turn")
		}
	}
}

func TestJumpIdempotentWhileAirborne(t *testing.T) {
	b := NewBike(1, Cell{X: 5, Z: 5}, East, 2)

	if !b.Jump(3) {
		t.Fatal("Expected first jump to succeed")
	}
	if b.JumpCharges != 1 || !b.Airborne() {
		t.Fatalf("Expected 1 charge and airborne, got %d charges airborne=%v", b.JumpCharges, b.Airborne())
	}

	// Jumping while airborne changes nothing: no stacking, no extending.
	if b.Jump(3) {
		t.Error("Expected jump to fail while airborne")
	}
	if b.JumpCharges != 1 {
		t.Errorf("Expected charge count unchanged, got %d", b.JumpCharges)
	}
	if b.airborneLeft != 3 {
		t.Errorf("Expected airborne timer unchanged at 3, got %d", b.airborneLeft)
	}
}

func TestJumpLanding(t *testing.T) {
	b := NewBike(1, Cell{X: 5, Z: 5}, East, 1)
	b.Jump(2)

	b.Advance()
	if !b.Airborne() {
		t.Fatal("Expected still airborne after first advance")
	}
	b.Advance()
	if b.Airborne() {
		t.Fatal("Expected grounded after the airborne timer elapsed")
	}

	// Out of charges: no second flight.
	if b.Jump(2) {
		t.Error("Expected jump to fail with no charges left")
	}
}

func TestDieReleasesTrail(t *testing.T) {
	g := NewGrid(10)
	b := NewBike(1, Cell{X: 2, Z: 2}, East, 0)

	for _, c := range []Cell{{X: 2, Z: 2}, {X: 3, Z: 2}, {X: 4, Z: 2}} {
		g.Claim(c, b.ID)
		b.markTrail(c)
	}
	g.Claim(Cell{X: 0, Z: 0}, 2)

	b.Die(g)
	if b.Alive {
		t.Fatal("Expected bike to be dead")
	}
	if b.TrailLen() != 0 {
		t.Error("Expected trail cleared on death")
	}
	for _, c := range []Cell{{X: 2, Z: 2}, {X: 3, Z: 2}, {X: 4, Z: 2}} {
		if !g.IsFree(c) {
			t.Errorf("Expected trail cell (%d,%d) released", c.X, c.Z)
		}
	}
	if g.Owner(Cell{X: 0, Z: 0}) != 2 {
		t.Error("Death must not release another rider's cells")
	}
}

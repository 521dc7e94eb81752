package arena

// Turn is a queued steering intent.
type Turn int

const (
	TurnNone Turn = iota
	TurnLeft
	TurnRight
)

func (t Turn) String() string {
	switch t {
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	default:
		return "none"
	}
}

// Bike is one rider's state machine: position, heading, queued turn, trail
// ownership, and jump state. States are alive-grounded, alive-airborne and
// dead; only the engine drives transitions between ticks.
type Bike struct {
	ID          int
	Pos         Cell
	Heading     Direction
	Alive       bool
	JumpCharges int
	Personality Personality // PersonalityNone for the controlled rider

	pending      Turn
	airborne     bool
	airborneLeft int
	trail        []Cell
}

// NewBike creates a live grounded bike at the given cell and heading.
func NewBike(id int, pos Cell, heading Direction, jumpCharges int) *Bike {
	return &Bike{
		ID:          id,
		Pos:         pos,
		Heading:     heading,
		Alive:       true,
		JumpCharges: jumpCharges,
	}
}

// QueueTurn queues a steering intent for the next tick, overwriting any
// unconsumed prior value. Only the latest queued turn applies. No-op when dead.
func (b *Bike) QueueTurn(t Turn) {
	if !b.Alive {
		return
	}
	b.pending = t
}

// Jump spends a jump charge and lifts the bike for the given number of ticks.
// Returns false (no state change) when dead, already airborne, or out of
// charges; jumps never stack or extend.
func (b *Bike) Jump(durationTicks int) bool {
	if !b.Alive || b.airborne || b.JumpCharges <= 0 {
		return false
	}
	b.JumpCharges--
	b.airborne = true
	b.airborneLeft = durationTicks
	return true
}

// Airborne returns true while the bike claims no cells and ignores trails.
func (b *Bike) Airborne() bool {
	return b.airborne
}

// PendingTurn returns the currently queued steering intent.
func (b *Bike) PendingTurn() Turn {
	return b.pending
}

// PeekNext returns the cell the bike will occupy next tick and the heading it
// will hold, applying the queued turn without mutating any state.
func (b *Bike) PeekNext() (Cell, Direction) {
	h := b.Heading
	switch b.pending {
	case TurnLeft:
		h = h.Left()
	case TurnRight:
		h = h.Right()
	}
	dx, dz := h.Vector()
	return Cell{X: b.Pos.X + dx, Z: b.Pos.Z + dz}, h
}

// Advance consumes the queued turn, moves one cell along the resulting
// heading, and counts down the airborne timer. Landing happens when the timer
// elapses; a new contiguous trail run then starts at the landing cell.
func (b *Bike) Advance() {
	switch b.pending {
	case TurnLeft:
		b.Heading = b.Heading.Left()
	case TurnRight:
		b.Heading = b.Heading.Right()
	}
	b.pending = TurnNone

	dx, dz := b.Heading.Vector()
	b.Pos.X += dx
	b.Pos.Z += dz

	if b.airborne {
		b.airborneLeft--
		if b.airborneLeft <= 0 {
			b.airborne = false
		}
	}
}

// markTrail records a cell as part of the bike's trail.
// The engine calls this only while the bike is grounded.
func (b *Bike) markTrail(c Cell) {
	b.trail = append(b.trail, c)
}

// TrailLen returns the number of cells in the bike's current trail.
func (b *Bike) TrailLen() int {
	return len(b.trail)
}

// Die marks the bike dead and releases its entire trail from the grid,
// past segments and the in-progress run alike.
func (b *Bike) Die(g *Grid) {
	if !b.Alive {
		return
	}
	b.Alive = false
	b.airborne = false
	b.pending = TurnNone
	g.Release(b.ID)
	b.trail = nil
}

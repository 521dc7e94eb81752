package arena

import (
	"fmt"
	"math/rand"
	"time"
)

// ControlledID is the identity of the externally driven rider.
// Autonomous riders take the ids after it.
const ControlledID = 1

// maxRiders bounds a session to the spawn slots the arena provides.
const maxRiders = 8

// RiderView is the read-only observation surface the presentation layer gets
// for one rider.
type RiderView struct {
	ID          int
	Pos         Cell
	Heading     Direction
	Alive       bool
	Airborne    bool
	JumpCharges int
	Personality Personality
}

// Session owns the grid and riders for one match and exposes start, time
// advancement and teardown to the presentation layer. Single-threaded: the
// caller drives time, and no tick begins before the previous one commits.
type Session struct {
	cfg    Config
	rng    *rand.Rand
	grid   *Grid
	bikes  []*Bike
	engine *Engine

	running bool
	over    bool
	winner  int
	tick    uint64
	acc     time.Duration
	deaths  []int
}

// NewSession creates a session with the given config and RNG seed.
// The seed drives personality assignment only; the simulation itself is
// fully deterministic.
func NewSession(cfg Config, seed int64) (*Session, error) {
	if cfg.GridSize < 8 {
		return nil, fmt.Errorf("arena: grid size %d too small", cfg.GridSize)
	}
	if cfg.Riders < 2 || cfg.Riders > maxRiders {
		return nil, fmt.Errorf("arena: rider count %d outside [2,%d]", cfg.Riders, maxRiders)
	}
	if cfg.TickInterval <= 0 || cfg.AccelInterval <= 0 {
		return nil, fmt.Errorf("arena: non-positive tick interval")
	}
	if cfg.MaxTicksPerAdvance < 1 {
		return nil, fmt.Errorf("arena: max ticks per advance must be at least 1")
	}
	return &Session{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}, nil
}

// Start resets the grid and (re)creates the riders at the given starting
// cells and headings, pre-claiming each starting cell so no rider may start
// inside another's reserved cell. Personalities are drawn from the fixed set,
// shuffled per session. Fails fast on inconsistent configuration.
func (s *Session) Start(positions []Cell, headings []Direction) error {
	if len(positions) != s.cfg.Riders || len(headings) != s.cfg.Riders {
		return fmt.Errorf("arena: got %d positions and %d headings for %d riders",
			len(positions), len(headings), s.cfg.Riders)
	}

	grid := NewGrid(s.cfg.GridSize)
	seen := make(map[Cell]bool)
	for _, p := range positions {
		if !grid.InBounds(p) {
			return fmt.Errorf("arena: starting cell (%d,%d) out of bounds", p.X, p.Z)
		}
		if seen[p] {
			return fmt.Errorf("arena: starting cell (%d,%d) claimed twice", p.X, p.Z)
		}
		seen[p] = true
	}

	personalities := []Personality{Avoidant, Engaging, Aggressive}
	s.rng.Shuffle(len(personalities), func(i, j int) {
		personalities[i], personalities[j] = personalities[j], personalities[i]
	})

	s.grid = grid
	s.bikes = make([]*Bike, 0, s.cfg.Riders)
	for i := 0; i < s.cfg.Riders; i++ {
		id := ControlledID + i
		b := NewBike(id, positions[i], headings[i], s.cfg.JumpCharges)
		if id != ControlledID {
			b.Personality = personalities[(i-1)%len(personalities)]
		}
		s.grid.Claim(positions[i], id)
		s.bikes = append(s.bikes, b)
	}

	s.engine = NewEngine(s.grid, s.bikes, ControlledID, s.cfg.Tuning)
	s.running = true
	s.over = false
	s.winner = 0
	s.tick = 0
	s.acc = 0
	s.deaths = nil
	return nil
}

// StartDefault starts the session with riders spread around the arena edge,
// each heading toward the center.
func (s *Session) StartDefault() error {
	positions, headings := DefaultSpawns(s.cfg.GridSize, s.cfg.Riders)
	return s.Start(positions, headings)
}

// DefaultSpawns returns up to maxRiders starting cells along the arena edges
// with inward headings. Slot 0 belongs to the controlled rider.
func DefaultSpawns(gridSize, riders int) ([]Cell, []Direction) {
	margin := gridSize / 8
	mid := gridSize / 2
	far := gridSize - 1 - margin

	slots := []struct {
		c Cell
		h Direction
	}{
		{Cell{X: margin, Z: mid}, East},
		{Cell{X: far, Z: mid}, West},
		{Cell{X: mid, Z: margin}, South},
		{Cell{X: mid, Z: far}, North},
		{Cell{X: margin, Z: margin}, South},
		{Cell{X: far, Z: far}, North},
		{Cell{X: far, Z: margin}, West},
		{Cell{X: margin, Z: far}, East},
	}

	if riders > len(slots) {
		riders = len(slots)
	}
	positions := make([]Cell, riders)
	headings := make([]Direction, riders)
	for i := 0; i < riders; i++ {
		positions[i] = slots[i].c
		headings[i] = slots[i].h
	}
	return positions, headings
}

// AdvanceTime accumulates elapsed wall-clock time and runs zero or more fixed
// ticks as the accumulator crosses the timestep boundary. Once the controlled
// rider is dead, the accelerated timestep fast-resolves the remaining
// autonomous contest. The burst is clamped so a stalled host cannot produce
// an unbounded number of ticks; excess backlog is dropped.
func (s *Session) AdvanceTime(elapsed time.Duration) []StepResult {
	if !s.running || s.over || elapsed < 0 {
		return nil
	}
	s.acc += elapsed

	var results []StepResult
	for i := 0; i < s.cfg.MaxTicksPerAdvance; i++ {
		interval := s.currentInterval()
		if s.acc < interval {
			break
		}
		s.acc -= interval
		r := s.step()
		results = append(results, r)
		if r.Over {
			break
		}
	}
	if s.acc >= s.currentInterval() {
		// Out of ticks for this call with backlog left: drop it.
		s.acc = 0
	}
	return results
}

// currentInterval returns the active timestep.
func (s *Session) currentInterval() time.Duration {
	if c := s.controlled(); c == nil || !c.Alive {
		return s.cfg.AccelInterval
	}
	return s.cfg.TickInterval
}

// step runs exactly one tick and records its outcome.
func (s *Session) step() StepResult {
	s.tick++
	r := s.engine.Step()
	s.deaths = append(s.deaths, r.Deaths...)
	if r.Over {
		s.over = true
		s.winner = r.Winner
	}
	return r
}

// controlled returns the externally driven bike, or nil before Start.
func (s *Session) controlled() *Bike {
	for _, b := range s.bikes {
		if b.ID == ControlledID {
			return b
		}
	}
	return nil
}

// QueueControlledTurn queues a steering intent for the controlled rider.
// No-op if the rider is dead or the session is not running.
func (s *Session) QueueControlledTurn(t Turn) {
	if !s.running || s.over {
		return
	}
	if c := s.controlled(); c != nil && c.Alive {
		c.QueueTurn(t)
	}
}

// QueueControlledJump spends one of the controlled rider's jump charges.
// No-op if the rider is dead, airborne, out of charges, or the session is
// not running.
func (s *Session) QueueControlledJump() {
	if !s.running || s.over {
		return
	}
	if c := s.controlled(); c != nil && c.Alive {
		c.Jump(s.cfg.AirborneTicks)
	}
}

// Riders returns read-only views of every rider, in id order.
func (s *Session) Riders() []RiderView {
	views := make([]RiderView, 0, len(s.bikes))
	for _, b := range s.bikes {
		views = append(views, RiderView{
			ID:          b.ID,
			Pos:         b.Pos,
			Heading:     b.Heading,
			Alive:       b.Alive,
			Airborne:    b.Airborne(),
			JumpCharges: b.JumpCharges,
			Personality: b.Personality,
		})
	}
	return views
}

// AliveCount returns the number of riders still alive.
func (s *Session) AliveCount() int {
	count := 0
	for _, b := range s.bikes {
		if b.Alive {
			count++
		}
	}
	return count
}

// Running reports whether the session has started and not been torn down.
func (s *Session) Running() bool {
	return s.running
}

// Ended returns whether the match is over and the winner's id (0 for a draw).
func (s *Session) Ended() (bool, int) {
	return s.over, s.winner
}

// Tick returns the number of committed ticks.
func (s *Session) Tick() uint64 {
	return s.tick
}

// GridSize returns the arena side length.
func (s *Session) GridSize() int {
	return s.cfg.GridSize
}

// Owner returns the rider id claiming a cell, or 0. Used by the renderer to
// draw trails without reaching into the grid.
func (s *Session) Owner(c Cell) int {
	if s.grid == nil {
		return 0
	}
	return s.grid.Owner(c)
}

// Teardown discards all session state. Allowed only between ticks, which
// holds trivially because the caller drives ticks from the same goroutine.
func (s *Session) Teardown() {
	s.running = false
	s.over = false
	s.grid = nil
	s.bikes = nil
	s.engine = nil
}

package arena

import (
	"fmt"
	"strings"
)

// RiderSnapshot captures one rider's state for determinism testing and the
// debug overlay.
type RiderSnapshot struct {
	ID          int
	X, Z        int
	Heading     Direction
	Alive       bool
	Airborne    bool
	JumpCharges int
	TrailLen    int
	Personality Personality
}

// Snapshot captures the complete session state.
type Snapshot struct {
	Tick    uint64
	Running bool
	Over    bool
	Winner  int
	Claimed int // Total claimed grid cells
	Riders  []RiderSnapshot
}

// Snapshot returns the current session snapshot for determinism verification.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    s.tick,
		Running: s.running,
		Over:    s.over,
		Winner:  s.winner,
	}
	if s.grid != nil {
		snap.Claimed = s.grid.ClaimedCount()
	}
	for _, b := range s.bikes {
		snap.Riders = append(snap.Riders, RiderSnapshot{
			ID:          b.ID,
			X:           b.Pos.X,
			Z:           b.Pos.Z,
			Heading:     b.Heading,
			Alive:       b.Alive,
			Airborne:    b.Airborne(),
			JumpCharges: b.JumpCharges,
			TrailLen:    b.TrailLen(),
			Personality: b.Personality,
		})
	}
	return snap
}

// DebugState returns a string representation of the session state.
func (s *Session) DebugState() string {
	var b strings.Builder
	over, winner := s.Ended()
	b.WriteString(fmt.Sprintf("Tick: %d, Running: %v, Over: %v, Winner: %d\n", s.Tick(), s.Running(), over, winner))
	for _, r := range s.Riders() {
		b.WriteString(fmt.Sprintf("Rider %d (%s): (%d,%d) %s alive=%v airborne=%v jumps=%d\n",
			r.ID, r.Personality, r.Pos.X, r.Pos.Z, r.Heading, r.Alive, r.Airborne, r.JumpCharges))
	}
	return b.String()
}

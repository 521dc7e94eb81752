package arena

import "time"

// Config holds the session-level simulation parameters.
type Config struct {
	GridSize    int // Arena side length in cells
	Riders      int // Total riders: 1 controlled + the rest autonomous
	JumpCharges int // Jump charges each rider starts with
	AirborneTicks int // Ticks a jump keeps the bike off the grid

	TickInterval  time.Duration // Fixed simulation timestep
	AccelInterval time.Duration // Timestep once the controlled rider is dead
	MaxTicksPerAdvance int      // Burst clamp for a stalled host

	Tuning Tuning
}

// Tuning holds the heuristic weights, caps and gates for the autonomous
// rider personalities. The defaults are the balanced values the game ships
// with; the YAML config layer may override them.
type Tuning struct {
	// Avoidant: maximize personal survival space.
	AvoidantFloodCap    int
	AvoidantFloodWeight float64
	AvoidantLookSteps   int

	// Engaging: favor long straight cuts across open space.
	EngagingLookSteps   int
	EngagingLookWeight  float64
	EngagingFloodCap    int
	EngagingFloodWeight float64

	// Aggressive: pursuit blended with self-preservation.
	AggroRange            int     // Beyond this Manhattan distance, hunt is off
	PredictTicks          int     // Straight-line extrapolation of the opponent
	MinClearance          int     // Options with less look-ahead are rejected
	PursuitScale          float64 // Constant the intercept distance is subtracted from
	PursuitWeight         float64
	AggressiveFloodCap    int
	AggressiveFloodWeight float64
}

// DefaultConfig returns the standard 80×80 four-rider setup.
func DefaultConfig() Config {
	return Config{
		GridSize:           80,
		Riders:             4,
		JumpCharges:        2,
		AirborneTicks:      2,
		TickInterval:       100 * time.Millisecond,
		AccelInterval:      25 * time.Millisecond,
		MaxTicksPerAdvance: 8,
		Tuning:             DefaultTuning(),
	}
}

// DefaultTuning returns the shipped heuristic parameters.
func DefaultTuning() Tuning {
	return Tuning{
		AvoidantFloodCap:    300,
		AvoidantFloodWeight: 10,
		AvoidantLookSteps:   12,

		EngagingLookSteps:   20,
		EngagingLookWeight:  5,
		EngagingFloodCap:    200,
		EngagingFloodWeight: 0.8,

		AggroRange:            30,
		PredictTicks:          3,
		MinClearance:          4,
		PursuitScale:          100,
		PursuitWeight:         0.6,
		AggressiveFloodCap:    150,
		AggressiveFloodWeight: 0.4,
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/lightcycle.yaml
var defaultLightcycleYAML []byte

// DefaultGameConfig returns the hardcoded default configuration, used as the
// last fallback when even the embedded YAML cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Arena: ArenaConfig{
			GridSize: 80,
			Riders:   4,
		},
		Timing: TimingConfig{
			TickMs:            100,
			AcceleratedTickMs: 25,
			MaxTicksPerFrame:  8,
		},
		Jump: JumpConfig{
			Charges:       2,
			AirborneTicks: 2,
		},
		AI: AIConfig{
			Avoidant: AvoidantConfig{
				FloodCap:    300,
				FloodWeight: 10,
				LookSteps:   12,
			},
			Engaging: EngagingConfig{
				LookSteps:   20,
				LookWeight:  5,
				FloodCap:    200,
				FloodWeight: 0.8,
			},
			Aggressive: AggressiveConfig{
				AggroRange:    30,
				PredictTicks:  3,
				MinClearance:  4,
				PursuitScale:  100,
				PursuitWeight: 0.6,
				FloodCap:      150,
				FloodWeight:   0.4,
			},
		},
	}
}

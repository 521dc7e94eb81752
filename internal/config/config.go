// Package config provides YAML-based game configuration loading and
// difficulty presets for the lightcycle arena.
package config

import (
	"time"

	"github.com/vovakirdan/tui-lightcycle/internal/arena"
)

// GameConfig contains all tunable parameters for a match.
type GameConfig struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Timing TimingConfig `yaml:"timing"`
	Jump   JumpConfig   `yaml:"jump"`
	AI     AIConfig     `yaml:"ai"`
}

// ArenaConfig defines the board and rider counts.
type ArenaConfig struct {
	GridSize int `yaml:"grid_size"`
	Riders   int `yaml:"riders"`
}

// TimingConfig defines the fixed timestep and its accelerated variant.
type TimingConfig struct {
	TickMs            int `yaml:"tick_ms"`
	AcceleratedTickMs int `yaml:"accelerated_tick_ms"`
	MaxTicksPerFrame  int `yaml:"max_ticks_per_frame"`
}

// JumpConfig defines jump charges and flight duration.
type JumpConfig struct {
	Charges       int `yaml:"charges"`
	AirborneTicks int `yaml:"airborne_ticks"`
}

// AIConfig defines the heuristic tuning for the three rider personalities.
type AIConfig struct {
	Avoidant   AvoidantConfig   `yaml:"avoidant"`
	Engaging   EngagingConfig   `yaml:"engaging"`
	Aggressive AggressiveConfig `yaml:"aggressive"`
}

// AvoidantConfig tunes the survival-space maximizer.
type AvoidantConfig struct {
	FloodCap    int     `yaml:"flood_cap"`
	FloodWeight float64 `yaml:"flood_weight"`
	LookSteps   int     `yaml:"look_steps"`
}

// EngagingConfig tunes the area-denial rider.
type EngagingConfig struct {
	LookSteps   int     `yaml:"look_steps"`
	LookWeight  float64 `yaml:"look_weight"`
	FloodCap    int     `yaml:"flood_cap"`
	FloodWeight float64 `yaml:"flood_weight"`
}

// AggressiveConfig tunes the hunter.
type AggressiveConfig struct {
	AggroRange    int     `yaml:"aggro_range"`
	PredictTicks  int     `yaml:"predict_ticks"`
	MinClearance  int     `yaml:"min_clearance"`
	PursuitScale  float64 `yaml:"pursuit_scale"`
	PursuitWeight float64 `yaml:"pursuit_weight"`
	FloodCap      int     `yaml:"flood_cap"`
	FloodWeight   float64 `yaml:"flood_weight"`
}

// ToArena converts the YAML configuration into the simulation config.
func (c GameConfig) ToArena() arena.Config {
	return arena.Config{
		GridSize:           c.Arena.GridSize,
		Riders:             c.Arena.Riders,
		JumpCharges:        c.Jump.Charges,
		AirborneTicks:      c.Jump.AirborneTicks,
		TickInterval:       time.Duration(c.Timing.TickMs) * time.Millisecond,
		AccelInterval:      time.Duration(c.Timing.AcceleratedTickMs) * time.Millisecond,
		MaxTicksPerAdvance: c.Timing.MaxTicksPerFrame,
		Tuning: arena.Tuning{
			AvoidantFloodCap:    c.AI.Avoidant.FloodCap,
			AvoidantFloodWeight: c.AI.Avoidant.FloodWeight,
			AvoidantLookSteps:   c.AI.Avoidant.LookSteps,

			EngagingLookSteps:   c.AI.Engaging.LookSteps,
			EngagingLookWeight:  c.AI.Engaging.LookWeight,
			EngagingFloodCap:    c.AI.Engaging.FloodCap,
			EngagingFloodWeight: c.AI.Engaging.FloodWeight,

			AggroRange:            c.AI.Aggressive.AggroRange,
			PredictTicks:          c.AI.Aggressive.PredictTicks,
			MinClearance:          c.AI.Aggressive.MinClearance,
			PursuitScale:          c.AI.Aggressive.PursuitScale,
			PursuitWeight:         c.AI.Aggressive.PursuitWeight,
			AggressiveFloodCap:    c.AI.Aggressive.FloodCap,
			AggressiveFloodWeight: c.AI.Aggressive.FloodWeight,
		},
	}
}

// DifficultyPreset represents a named match setup.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// RidersForPreset returns the rider count for a difficulty preset,
// or 0 when the preset is unknown (the config's value then applies).
func RidersForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 3
	case DifficultyNormal:
		return 4
	case DifficultyHard:
		return 6
	default:
		return 0
	}
}

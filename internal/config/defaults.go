package config

import (
	_ "embed"
)

//go:embed defaults/corridor.yaml
var defaultCorridorYAML []byte

//go:embed defaults/topdown.yaml
var defaultTopDownYAML []byte

// CorridorPatterns lists blocked lanes out of 7 for the perspective variant.
// Only lanes 1-5 are used so the edge lanes are always clear. Every row leaves
// a gap the player hitbox can pass through; lanes 1, 3 and 5 together would
// not, since the gaps between them are narrower than the player.
var CorridorPatterns = [][]int{
	{2, 4},
	{1, 2, 5},
	{3},
	{1, 4},
	{2, 5},
	{1, 5},
	{2, 3, 4},
	{4},
	{1, 2},
	{3, 5},
	{1, 3},
	{2},
	{4, 5},
	{1, 2, 4},
	{3, 4},
}

// TopDownPatterns lists blocked lanes out of 7 for the top-down variant.
// Edge lanes may be blocked; every row leaves at least one lane open.
var TopDownPatterns = [][]int{
	{0, 1, 2},
	{4, 5, 6},
	{0, 1, 2, 3},
	{3, 4, 5, 6},
	{0, 1, 5, 6},
	{1, 2, 4, 5},
	{0, 2, 4, 6},
	{1, 3, 5},
	{2, 3, 4},
	{0, 6},
	{0, 1, 3, 4},
	{2, 3, 5, 6},
	{1, 2, 3, 4, 5},
	{0, 3, 6},
}

// DefaultCorridorConfig returns the perspective corridor configuration.
func DefaultCorridorConfig() DodgeConfig {
	return DodgeConfig{
		World: DodgeWorld{
			LaneCount: 7,
			HalfWidth: 3.5,
		},
		Player: DodgePlayer{
			HalfWidth: 0.7,
			HalfDepth: 1.2,
			Speed:     5,
			Depth:     0,
		},
		Obstacles: DodgeObstacles{
			Size:          0.85,
			BaseSpeed:     16,
			SpawnInterval: 1.35,
			SpawnDepth:    -45,
			RemovalDepth:  15,
		},
		Scoring: DodgeScoring{
			Rate: 40,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Growth:       0.015,
			Cap:          1.5,
		},
		Timing: DodgeTiming{
			MaxStep: 0.05,
		},
		Patterns: clonePatterns(CorridorPatterns),
	}
}

// DefaultTopDownConfig returns the top-down configuration.
func DefaultTopDownConfig() DodgeConfig {
	return DodgeConfig{
		World: DodgeWorld{
			LaneCount: 7,
			HalfWidth: 210,
		},
		Player: DodgePlayer{
			HalfWidth: 16,
			HalfDepth: 16,
			Speed:     330,
			Depth:     560,
		},
		Obstacles: DodgeObstacles{
			Size:          48,
			BaseSpeed:     240,
			SpawnInterval: 0.9,
			SpawnDepth:    -48,
			RemovalDepth:  688,
		},
		Scoring: DodgeScoring{
			Rate: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Growth:       0.025,
			Cap:          2.0,
		},
		Timing: DodgeTiming{
			MaxStep: 0.05,
		},
		Patterns: clonePatterns(TopDownPatterns),
	}
}

// Default returns the hardcoded configuration for a variant.
func Default(variant string) (DodgeConfig, bool) {
	switch variant {
	case VariantCorridor:
		return DefaultCorridorConfig(), true
	case VariantTopDown:
		return DefaultTopDownConfig(), true
	default:
		return DodgeConfig{}, false
	}
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case VariantCorridor:
		return defaultCorridorYAML
	case VariantTopDown:
		return defaultTopDownYAML
	default:
		return nil
	}
}

func clonePatterns(src [][]int) [][]int {
	out := make([][]int, len(src))
	for i, p := range src {
		out[i] = append([]int(nil), p...)
	}
	return out
}

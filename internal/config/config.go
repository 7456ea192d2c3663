// Package config provides YAML-based game configuration loading and
// difficulty management for the lane dodger variants.
package config

import (
	"errors"
	"fmt"
	"math"
)

// Variant names. They double as game IDs and config file base names.
const (
	VariantCorridor = "corridor"
	VariantTopDown  = "topdown"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// DodgeConfig contains everything that distinguishes one variant from another.
// The simulation is parameterized entirely by this structure.
type DodgeConfig struct {
	World      DodgeWorld       `yaml:"world"`
	Player     DodgePlayer      `yaml:"player"`
	Obstacles  DodgeObstacles   `yaml:"obstacles"`
	Scoring    DodgeScoring     `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Timing     DodgeTiming      `yaml:"timing"`
	Patterns   [][]int          `yaml:"patterns"` // Blocked lane indices per row
}

// DodgeWorld defines the lateral extent of the playfield.
type DodgeWorld struct {
	LaneCount int     `yaml:"lane_count"`
	HalfWidth float64 `yaml:"half_width"`
}

// DodgePlayer defines the player hitbox and movement.
type DodgePlayer struct {
	HalfWidth float64 `yaml:"half_width"` // Lateral hitbox half-size
	HalfDepth float64 `yaml:"half_depth"` // Depth hitbox half-size
	Speed     float64 `yaml:"speed"`      // Lateral units per second
	Depth     float64 `yaml:"depth"`      // Depth coordinate of the player plane
}

// DodgeObstacles defines obstacle size, motion and lifetime.
type DodgeObstacles struct {
	Size          float64 `yaml:"size"`           // Edge length of the square hitbox
	BaseSpeed     float64 `yaml:"base_speed"`     // Depth units per second at 1x
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between rows
	SpawnDepth    float64 `yaml:"spawn_depth"`
	RemovalDepth  float64 `yaml:"removal_depth"` // Obstacles beyond this depth are dropped
}

// DodgeScoring defines score accrual.
type DodgeScoring struct {
	Rate float64 `yaml:"rate"` // Points per second at 1x
}

// DodgeTiming bounds the per-tick delta.
type DodgeTiming struct {
	MaxStep float64 `yaml:"max_step"` // Largest dt accepted by one tick, in seconds
}

// DifficultyConfig defines how the speed multiplier grows with survival time.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialLevel float64 `yaml:"initial_level"` // 0.0 starts at 1x, 1.0 starts at the cap
	Growth       float64 `yaml:"growth"`        // Multiplier gained per second survived
	Cap          float64 `yaml:"cap"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// The empty string means "keep the config's own difficulty".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// LaneWidth returns the lateral width of a single lane.
func (c DodgeConfig) LaneWidth() float64 {
	return 2 * c.World.HalfWidth / float64(c.World.LaneCount)
}

// LaneCenter returns the lateral coordinate of the center of a lane.
func (c DodgeConfig) LaneCenter(lane int) float64 {
	return -c.World.HalfWidth + (float64(lane)+0.5)*c.LaneWidth()
}

// Validate checks that the configuration describes a playable game.
func (c DodgeConfig) Validate() error {
	switch {
	case c.World.LaneCount <= 0:
		return fmt.Errorf("%w: world.lane_count must be positive", ErrInvalid)
	case c.World.HalfWidth <= 0:
		return fmt.Errorf("%w: world.half_width must be positive", ErrInvalid)
	case c.Player.HalfWidth <= 0 || c.Player.HalfDepth <= 0:
		return fmt.Errorf("%w: player hitbox must be positive", ErrInvalid)
	case c.Player.HalfWidth >= c.World.HalfWidth:
		return fmt.Errorf("%w: player.half_width must be smaller than world.half_width", ErrInvalid)
	case c.Player.Speed <= 0:
		return fmt.Errorf("%w: player.speed must be positive", ErrInvalid)
	case c.Obstacles.Size <= 0:
		return fmt.Errorf("%w: obstacles.size must be positive", ErrInvalid)
	case c.Obstacles.BaseSpeed <= 0:
		return fmt.Errorf("%w: obstacles.base_speed must be positive", ErrInvalid)
	case c.Obstacles.SpawnInterval <= 0:
		return fmt.Errorf("%w: obstacles.spawn_interval must be positive", ErrInvalid)
	case c.Obstacles.RemovalDepth <= c.Player.Depth:
		return fmt.Errorf("%w: obstacles.removal_depth must lie past player.depth", ErrInvalid)
	case c.Obstacles.SpawnDepth >= c.Player.Depth:
		return fmt.Errorf("%w: obstacles.spawn_depth must lie before player.depth", ErrInvalid)
	case c.Scoring.Rate < 0:
		return fmt.Errorf("%w: scoring.rate must not be negative", ErrInvalid)
	case c.Timing.MaxStep <= 0:
		return fmt.Errorf("%w: timing.max_step must be positive", ErrInvalid)
	case c.Difficulty.Cap < 1:
		return fmt.Errorf("%w: difficulty.cap must be at least 1", ErrInvalid)
	case c.Difficulty.Growth < 0:
		return fmt.Errorf("%w: difficulty.growth must not be negative", ErrInvalid)
	case len(c.Patterns) == 0:
		return fmt.Errorf("%w: patterns must not be empty", ErrInvalid)
	}

	for i, p := range c.Patterns {
		if len(p) == 0 {
			return fmt.Errorf("%w: pattern %d is empty", ErrInvalid, i)
		}
		seen := make(map[int]bool, len(p))
		for _, lane := range p {
			if lane < 0 || lane >= c.World.LaneCount {
				return fmt.Errorf("%w: pattern %d uses lane %d outside [0, %d)", ErrInvalid, i, lane, c.World.LaneCount)
			}
			seen[lane] = true
		}
		if len(seen) >= c.World.LaneCount {
			return fmt.Errorf("%w: pattern %d blocks every lane", ErrInvalid, i)
		}
		if !c.rowPassable(p) {
			return fmt.Errorf("%w: pattern %d %v leaves no gap wide enough for the player", ErrInvalid, i, p)
		}
	}
	return nil
}

// rowPassable reports whether some lateral player position inside the
// movement bounds clears every obstacle of the row. Touching edges do not
// collide, so the ends of each blocked span are themselves safe. The 1e-9
// slack keeps rounding in LaneCenter from closing an exact-fit gap.
func (c DodgeConfig) rowPassable(lanes []int) bool {
	reach := c.World.HalfWidth - c.Player.HalfWidth
	clearance := c.Player.HalfWidth + c.Obstacles.Size/2

	candidates := []float64{-reach, reach}
	for _, lane := range lanes {
		x := c.LaneCenter(lane)
		candidates = append(candidates, x-clearance, x+clearance)
	}

	for _, x := range candidates {
		if x < -reach || x > reach {
			continue
		}
		blocked := false
		for _, lane := range lanes {
			if math.Abs(x-c.LaneCenter(lane)) < clearance-1e-9 {
				blocked = true
				break
			}
		}
		if !blocked {
			return true
		}
	}
	return false
}

package config

import "math"

// DifficultyManager derives the speed multiplier from survival time.
// The same multiplier scales obstacle speed and score accrual.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether the multiplier grows over time.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Growth > 0
}

// Cap returns the maximum multiplier.
func (d *DifficultyManager) Cap() float64 {
	return math.Max(1, d.cfg.Cap)
}

// Start returns the multiplier at elapsed time zero.
func (d *DifficultyManager) Start() float64 {
	return 1 + d.initialLevel*(d.Cap()-1)
}

// Multiplier returns the speed multiplier after elapsed seconds.
// It is non-decreasing in elapsed and always within [1, Cap].
func (d *DifficultyManager) Multiplier(elapsed float64) float64 {
	m := d.Start()
	if d.IsEnabled() && elapsed > 0 {
		m += d.cfg.Growth * elapsed
	}
	return clampF(m, 1, d.Cap())
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

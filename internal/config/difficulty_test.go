package config

import (
	"math"
	"testing"
)

func TestMultiplierMatchesLinearGrowth(t *testing.T) {
	d := NewDifficultyManager(DefaultCorridorConfig().Difficulty)

	tests := []struct {
		elapsed, expected float64
	}{
		{0, 1.0},
		{10, 1.15},
		{20, 1.3},
		{33.3333, 1.5},
		{100, 1.5},
	}
	for _, tc := range tests {
		got := d.Multiplier(tc.elapsed)
		if math.Abs(got-tc.expected) > 1e-3 {
			t.Errorf("Multiplier(%f) = %f, expected %f", tc.elapsed, got, tc.expected)
		}
	}
}

func TestMultiplierMonotonicAndCapped(t *testing.T) {
	for _, level := range []float64{0, 0.3, 0.7, 1} {
		cfg := DefaultTopDownConfig().Difficulty
		cfg.InitialLevel = level
		d := NewDifficultyManager(cfg)

		prev := 0.0
		for i := 0; i <= 2000; i++ {
			m := d.Multiplier(float64(i) * 0.1)
			if m < prev {
				t.Fatalf("level %.1f: multiplier decreased at %d: %f < %f", level, i, m, prev)
			}
			if m > d.Cap() || m < 1 {
				t.Fatalf("level %.1f: multiplier %f outside [1, %f]", level, m, d.Cap())
			}
			prev = m
		}
	}
}

func TestMultiplierDisabledStaysAtStart(t *testing.T) {
	cfg := DefaultCorridorConfig().Difficulty
	cfg.Enabled = false
	cfg.InitialLevel = 0.5
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if got := d.Multiplier(500); got != 1.25 {
		t.Errorf("Multiplier() = %f, expected fixed 1.25", got)
	}
}

func TestInitialLevelClamps(t *testing.T) {
	cfg := DefaultCorridorConfig().Difficulty

	cfg.InitialLevel = 5
	d := NewDifficultyManager(cfg)
	if d.Start() != d.Cap() {
		t.Errorf("Start() = %f, expected cap %f", d.Start(), d.Cap())
	}

	cfg.InitialLevel = -1
	d = NewDifficultyManager(cfg)
	if d.Start() != 1 {
		t.Errorf("Start() = %f, expected 1", d.Start())
	}
}

package dodge

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/lane-dodger/internal/config"
)

func TestRunHeadlessQuiet(t *testing.T) {
	s := newTestSim(t, quietCorridor())

	res := RunHeadless(s, nil, 2, 0.01)
	if res.Crashed {
		t.Fatal("empty road should not crash")
	}
	if res.Ticks != 200 {
		t.Errorf("ticks = %d, want 200", res.Ticks)
	}
	if math.Abs(res.Elapsed-2) > 1e-9 {
		t.Errorf("elapsed = %v, want 2", res.Elapsed)
	}
	if res.Rows != 0 {
		t.Errorf("rows = %d, want 0", res.Rows)
	}
}

func TestRunHeadlessStopsOnCrash(t *testing.T) {
	// Every row blocks the centre lane and nobody steers
	cfg := config.DefaultCorridorConfig()
	cfg.Patterns = [][]int{{3}}
	s := newTestSim(t, cfg)

	res := RunHeadless(s, nil, 60, 1.0/60)
	if !res.Crashed {
		t.Fatal("standing still in a blocked lane should crash")
	}
	if res.Elapsed >= 60 {
		t.Errorf("run should end early, elapsed %v", res.Elapsed)
	}
	if res.Rows == 0 {
		t.Error("expected at least one row")
	}
}

func TestRunHeadlessAutopilotSidesteps(t *testing.T) {
	for _, variant := range []string{config.VariantCorridor, config.VariantTopDown} {
		t.Run(variant, func(t *testing.T) {
			cfg, _ := config.Default(variant)
			cfg.Patterns = [][]int{{3}}
			s, err := NewSim(cfg, rand.New(rand.NewSource(11)))
			if err != nil {
				t.Fatalf("NewSim: %v", err)
			}

			res := RunHeadless(s, NewAutopilot(s), 20, 1.0/60)
			if res.Crashed {
				t.Fatalf("autopilot crashed after %.2fs", res.Elapsed)
			}
			if res.Rows < 5 {
				t.Errorf("rows = %d, expected steady spawning", res.Rows)
			}
		})
	}
}

func TestRunHeadlessIgnoresBadStep(t *testing.T) {
	s := newTestSim(t, quietCorridor())
	if res := RunHeadless(s, nil, 5, 0); res.Ticks != 0 || res.Elapsed != 0 {
		t.Errorf("zero dt should not advance, got %+v", res)
	}
}

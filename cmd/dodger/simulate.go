package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-dodger/internal/config"
	"github.com/vovakirdan/lane-dodger/internal/games/dodge"
	"github.com/vovakirdan/lane-dodger/internal/registry"
)

var (
	flagSimSeconds   float64
	flagSimDt        float64
	flagSimAutopilot bool
)

// maxSimDt is the longest step simulate accepts. Longer steps would only be
// split into timing.max_step sub-steps anyway.
const maxSimDt = 1.0

var simulateCmd = &cobra.Command{
	Use:   "simulate <track>",
	Short: "Run a headless simulation and print a summary",
	Long: `Run the simulation without any display, stepping a fixed dt until the
time limit or a crash, then print what happened.

With --autopilot the player steers toward the nearest gap; without it the
player never moves.

Examples:
  dodger simulate corridor
  dodger simulate topdown --autopilot --seconds 120 --seed 7
  dodger simulate corridor --dt 0.1 --difficulty hard`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Float64Var(&flagSimSeconds, "seconds", 60, "Simulated seconds")
	simulateCmd.Flags().Float64Var(&flagSimDt, "dt", 1.0/60, "Seconds per step")
	simulateCmd.Flags().BoolVar(&flagSimAutopilot, "autopilot", false, "Steer automatically")
	simulateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom track config YAML")
	simulateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSimulate(_ *cobra.Command, args []string) error {
	variant := args[0]
	if !registry.Exists(variant) {
		return fmt.Errorf("unknown track %q (run 'dodger list' to see available tracks)", variant)
	}
	if err := validateSimulateFlags(flagSimSeconds, flagSimDt); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	dodge.SetConfigPath(flagConfig)
	dodge.SetDifficultyPreset(flagDifficulty)

	cfg, err := dodge.LoadConfig(variant)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sim, err := dodge.NewSim(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	var pilot *dodge.Autopilot
	if flagSimAutopilot {
		pilot = dodge.NewAutopilot(sim)
	}

	logger.Debug("simulating", "track", variant, "seed", seed, "dt", flagSimDt, "seconds", flagSimSeconds)
	start := time.Now()
	res := dodge.RunHeadless(sim, pilot, flagSimSeconds, flagSimDt)
	logger.Debug("simulation finished", "wall", time.Since(start))

	outcome := "survived"
	if res.Crashed {
		outcome = "crashed"
	}

	fmt.Printf("Track:       %s\n", variant)
	fmt.Printf("Seed:        %d\n", seed)
	fmt.Printf("Autopilot:   %v\n", flagSimAutopilot)
	fmt.Printf("Outcome:     %s after %.2fs\n", outcome, res.Elapsed)
	fmt.Printf("Score:       %d\n", int(res.Score))
	fmt.Printf("Speed:       %.2fx\n", res.Multiplier)
	fmt.Printf("Rows:        %d\n", res.Rows)
	fmt.Printf("Ticks:       %d\n", res.Ticks)
	return nil
}

func validateSimulateFlags(seconds, dt float64) error {
	if !(dt > 0) || !(seconds > 0) || math.IsInf(seconds, 1) {
		return fmt.Errorf("--dt and --seconds must be positive")
	}
	if dt > maxSimDt {
		return fmt.Errorf("--dt must be at most %gs, got %g", maxSimDt, dt)
	}
	return nil
}

// Package dodge implements the lane dodging game: the player slides between
// lanes to avoid rows of obstacles that scroll toward it. One simulation core
// backs two registered variants, a perspective corridor and a top-down field.
package dodge

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/lane-dodger/internal/config"
	"github.com/vovakirdan/lane-dodger/internal/core"
	"github.com/vovakirdan/lane-dodger/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back to
// the config default.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// LoadConfig resolves the configuration for a variant using the CLI overrides.
// Errors come only from an explicit config path; the defaults are returned
// alongside them.
func LoadConfig(variant string) (config.DodgeConfig, error) {
	cfg, err := config.Load(variant, configPath)
	config.ApplyPreset(&cfg, difficultyPreset)
	return cfg, err
}

// Game adapts a Sim to the registry.Game interface used by the frontends.
type Game struct {
	variant string
	title   string
	blurb   string
	runtime core.RuntimeConfig
	cfg     config.DodgeConfig
	sim     *Sim
	paused  bool
	loadErr error
}

// NewCorridor creates the perspective corridor variant.
func NewCorridor() *Game {
	return &Game{
		variant: config.VariantCorridor,
		title:   "Corridor Run",
		blurb:   "Chase camera down a seven-lane corridor",
	}
}

// NewTopDown creates the top-down variant.
func NewTopDown() *Game {
	return &Game{
		variant: config.VariantTopDown,
		title:   "Lane Rush",
		blurb:   "Overhead view, rows fall toward the player",
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Blurb returns a one-line description for listings.
func (g *Game) Blurb() string {
	return g.blurb
}

// Reset loads the variant configuration and starts a fresh run.
// A broken custom config falls back to the built-in defaults; the error is
// kept for the caller to report via LoadErr.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := LoadConfig(g.variant)
	g.loadErr = err

	sim, err := NewSim(cfg, rand.New(rand.NewSource(runtime.Seed)))
	if err != nil {
		g.loadErr = err
		cfg, _ = config.Default(g.variant)
		config.ApplyPreset(&cfg, difficultyPreset)
		sim, _ = NewSim(cfg, rand.New(rand.NewSource(runtime.Seed)))
	}

	g.cfg = cfg
	g.sim = sim
	g.paused = false
}

// LoadErr returns the configuration error from the last Reset, if any.
func (g *Game) LoadErr() error {
	return g.loadErr
}

// Sim exposes the simulation for frontends that draw it directly.
func (g *Game) Sim() *Sim {
	return g.sim
}

// Step applies input edges, then advances the simulation by the wall-clock
// delta dt unless paused.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	var res core.StepResult
	if !in.Empty() {
		res.Restarted = g.applyEdges(in)
	}

	if !g.paused {
		wasOver := g.sim.Over()
		g.sim.Frame(dt)
		res.Crashed = !wasOver && g.sim.Over()
	}

	res.State = g.State()
	return res
}

// applyEdges handles one frame of input edges and reports whether the run
// was restarted.
func (g *Game) applyEdges(in core.InputFrame) (restarted bool) {
	if in.Has(core.ActionRestart) {
		g.sim.Restart()
		g.paused = false
		restarted = true
	}

	if in.Has(core.ActionPause) && !g.sim.Over() {
		g.paused = !g.paused
	}

	// Press before release so a key that went down and up within one frame
	// ends the frame released.
	if in.Has(core.ActionLeft) {
		g.sim.SetMoveLeft(true)
	}
	if in.Has(core.ActionRight) {
		g.sim.SetMoveRight(true)
	}
	if in.WasReleased(core.ActionLeft) {
		g.sim.SetMoveLeft(false)
	}
	if in.WasReleased(core.ActionRight) {
		g.sim.SetMoveRight(false)
	}
	return restarted
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      int(math.Floor(g.sim.Score())),
		Elapsed:    g.sim.Elapsed(),
		Multiplier: g.sim.Multiplier(),
		GameOver:   g.sim.Over(),
		Paused:     g.paused,
	}
}

// Register the variants with the registry
func init() {
	registry.Register(config.VariantCorridor, func() registry.Game {
		return NewCorridor()
	})
	registry.Register(config.VariantTopDown, func() registry.Game {
		return NewTopDown()
	})
}

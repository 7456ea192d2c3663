package dodge

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/lane-dodger/internal/config"
	"github.com/vovakirdan/lane-dodger/internal/core"
)

// spawnEpsilon absorbs float drift when a long tick is split into sub-steps
// whose sum lands a hair below the spawn interval.
const spawnEpsilon = 1e-9

// maxSubSteps bounds the work one Advance call may do. Deltas beyond
// maxSubSteps*timing.max_step are clamped to that span.
const maxSubSteps = 4096

// Sim is the lane dodging simulation: one player, rows of obstacles, score and
// a time-based speed multiplier. It is a single-writer state machine with two
// states, running and over. It never touches a renderer.
type Sim struct {
	cfg        config.DodgeConfig
	difficulty *config.DifficultyManager
	rng        RandSource

	running    bool
	over       bool
	score      float64
	elapsed    float64
	spawnTimer float64
	moveLeft   bool
	moveRight  bool
	playerX    float64
	obstacles  []Obstacle

	tick uint64 // Sub-steps integrated since restart
	rows uint64 // Rows spawned since restart
}

// NewSim validates cfg and returns a running simulation.
// The pattern table is copied and never modified afterwards.
func NewSim(cfg config.DodgeConfig, rng RandSource) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dodge: %w", err)
	}
	if rng == nil {
		return nil, errors.New("dodge: nil random source")
	}

	patterns := make([][]int, len(cfg.Patterns))
	for i, p := range cfg.Patterns {
		patterns[i] = append([]int(nil), p...)
	}
	cfg.Patterns = patterns

	s := &Sim{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rng,
		obstacles:  make([]Obstacle, 0, 32),
	}
	s.Restart()
	return s, nil
}

// Restart reinitializes to a fresh running game. Safe to call at any time.
// Movement intents are kept since they mirror physical key state.
func (s *Sim) Restart() {
	s.running = true
	s.over = false
	s.score = 0
	s.elapsed = 0
	s.spawnTimer = 0
	s.playerX = 0
	s.tick = 0
	s.rows = 0
	for i := range s.obstacles {
		s.obstacles[i] = Obstacle{}
	}
	s.obstacles = s.obstacles[:0]
}

// SetMoveLeft sets the left movement intent.
func (s *Sim) SetMoveLeft(active bool) {
	s.moveLeft = active
}

// SetMoveRight sets the right movement intent.
func (s *Sim) SetMoveRight(active bool) {
	s.moveRight = active
}

// Frame is the host entry point: dt is the measured wall-clock delta, clamped
// to timing.max_step so a long pause (window defocus) does not fast-forward
// the game.
func (s *Sim) Frame(dt float64) {
	s.Advance(math.Min(dt, s.cfg.Timing.MaxStep))
}

// Advance integrates dt seconds. It is a no-op unless running.
// Deltas larger than timing.max_step are split into equal sub-steps so a large
// delta cannot tunnel obstacles through the player. Negative or NaN deltas are
// treated as zero; deltas longer than maxSubSteps sub-steps are clamped.
func (s *Sim) Advance(dt float64) {
	if !s.running {
		return
	}
	if math.IsNaN(dt) || dt <= 0 {
		return
	}

	steps := 1
	if maxStep := s.cfg.Timing.MaxStep; dt > maxStep {
		dt = math.Min(dt, maxSubSteps*maxStep)
		steps = int(math.Ceil(dt/maxStep - spawnEpsilon))
	}
	h := dt / float64(steps)

	for i := 0; i < steps && s.running; i++ {
		s.step(h)
	}
}

// step advances the world by exactly one tick of h seconds.
func (s *Sim) step(h float64) {
	s.tick++

	s.elapsed += h
	m := s.difficulty.Multiplier(s.elapsed)
	s.score += h * s.cfg.Scoring.Rate * m

	interval := s.cfg.Obstacles.SpawnInterval
	s.spawnTimer += h
	for s.spawnTimer >= interval-spawnEpsilon {
		s.spawnTimer -= interval
		s.spawnRow()
	}

	s.movePlayer(h)
	s.moveObstacles(s.cfg.Obstacles.BaseSpeed * m * h)
	s.pruneObstacles()

	if s.CheckCollision() {
		s.over = true
		s.running = false
	}
}

// movePlayer applies the signed intent velocity and clamps to bounds.
func (s *Sim) movePlayer(h float64) {
	dir := 0.0
	if s.moveLeft {
		dir--
	}
	if s.moveRight {
		dir++
	}
	minX, maxX := s.Bounds()
	s.playerX = core.ClampF(s.playerX+dir*s.cfg.Player.Speed*h, minX, maxX)
}

// SpeedMultiplier returns the multiplier for a given elapsed time.
// It is pure, non-decreasing and never exceeds the configured cap.
func (s *Sim) SpeedMultiplier(elapsed float64) float64 {
	return s.difficulty.Multiplier(elapsed)
}

// Multiplier returns the multiplier in effect at the current elapsed time.
func (s *Sim) Multiplier() float64 {
	return s.difficulty.Multiplier(s.elapsed)
}

// Bounds returns the lateral range the player center is clamped to.
func (s *Sim) Bounds() (minX, maxX float64) {
	edge := s.cfg.World.HalfWidth - s.cfg.Player.HalfWidth
	return -edge, edge
}

// PlayerBox returns the player's hitbox, independent of its drawn shape.
func (s *Sim) PlayerBox() core.Box {
	return core.NewBox(s.playerX, s.cfg.Player.Depth, s.cfg.Player.HalfWidth, s.cfg.Player.HalfDepth)
}

// Running reports whether the simulation is advancing.
func (s *Sim) Running() bool { return s.running }

// Over reports whether the run ended in a collision.
func (s *Sim) Over() bool { return s.over }

// Score returns the accumulated score.
func (s *Sim) Score() float64 { return s.score }

// Elapsed returns seconds simulated since the last restart.
func (s *Sim) Elapsed() float64 { return s.elapsed }

// PlayerX returns the player's lateral position.
func (s *Sim) PlayerX() float64 { return s.playerX }

// Intents returns the current movement intents.
func (s *Sim) Intents() (left, right bool) { return s.moveLeft, s.moveRight }

// RowsSpawned returns the number of rows spawned since the last restart.
func (s *Sim) RowsSpawned() uint64 { return s.rows }

// Config returns the configuration the simulation was built with.
func (s *Sim) Config() config.DodgeConfig { return s.cfg }

// Obstacles returns a copy of the live obstacles. Order carries no meaning.
func (s *Sim) Obstacles() []Obstacle {
	out := make([]Obstacle, len(s.obstacles))
	copy(out, s.obstacles)
	return out
}

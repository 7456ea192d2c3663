package dodge

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/lane-dodger/internal/config"
)

// scriptedRand replays a fixed sequence of choices.
type scriptedRand struct {
	seq []int
	i   int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.seq[r.i%len(r.seq)] % n
	r.i++
	return v
}

func newTestSim(t *testing.T, cfg config.DodgeConfig, picks ...int) *Sim {
	t.Helper()
	if len(picks) == 0 {
		picks = []int{0}
	}
	s, err := NewSim(cfg, &scriptedRand{seq: picks})
	if err != nil {
		t.Fatalf("NewSim() failed: %v", err)
	}
	return s
}

// quietCorridor never spawns on its own.
func quietCorridor() config.DodgeConfig {
	cfg := config.DefaultCorridorConfig()
	cfg.Obstacles.SpawnInterval = 1000
	return cfg
}

func TestNewSimStartsRunning(t *testing.T) {
	s := newTestSim(t, config.DefaultCorridorConfig())

	if !s.Running() || s.Over() {
		t.Errorf("Running=%v Over=%v, expected running", s.Running(), s.Over())
	}
	if s.Score() != 0 || s.Elapsed() != 0 || s.PlayerX() != 0 {
		t.Errorf("fresh sim not zeroed: score=%f elapsed=%f x=%f", s.Score(), s.Elapsed(), s.PlayerX())
	}
	if len(s.Obstacles()) != 0 {
		t.Errorf("fresh sim has %d obstacles", len(s.Obstacles()))
	}
}

func TestNewSimRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultCorridorConfig()
	cfg.Patterns = [][]int{{0, 1, 2, 3, 4, 5, 6}}
	if _, err := NewSim(cfg, rand.New(rand.NewSource(1))); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("NewSim() = %v, expected ErrInvalid", err)
	}

	if _, err := NewSim(config.DefaultCorridorConfig(), nil); err == nil {
		t.Error("NewSim() should reject a nil random source")
	}
}

func TestNewSimCopiesPatterns(t *testing.T) {
	cfg := config.DefaultCorridorConfig()
	cfg.Patterns = [][]int{{3}}
	s := newTestSim(t, cfg)

	cfg.Patterns[0][0] = 0
	if got := s.Config().Patterns[0][0]; got != 3 {
		t.Errorf("pattern mutated through caller's slice: lane %d", got)
	}
}

func TestScoreNonDecreasingAndElapsedExact(t *testing.T) {
	for _, cfg := range []config.DodgeConfig{config.DefaultCorridorConfig(), config.DefaultTopDownConfig()} {
		s := newTestSim(t, cfg)
		dt := 0.016
		prevScore := s.Score()

		for i := 1; i <= 100 && s.Running(); i++ {
			before := s.Elapsed()
			s.Advance(dt)
			if s.Score() < prevScore {
				t.Fatalf("tick %d: score decreased %f -> %f", i, prevScore, s.Score())
			}
			if math.Abs(s.Elapsed()-before-dt) > 1e-12 {
				t.Fatalf("tick %d: elapsed advanced by %f, expected %f", i, s.Elapsed()-before, dt)
			}
			prevScore = s.Score()
		}
	}
}

func TestScoreUsesTickMultiplier(t *testing.T) {
	s := newTestSim(t, quietCorridor())
	s.Advance(0.05)

	m := s.SpeedMultiplier(0.05)
	want := 0.05 * 40 * m
	if math.Abs(s.Score()-want) > 1e-12 {
		t.Errorf("Score() = %f, expected %f", s.Score(), want)
	}
}

func TestPlayerClampedToBounds(t *testing.T) {
	s := newTestSim(t, quietCorridor())
	minX, maxX := s.Bounds()

	s.SetMoveRight(true)
	for i := 0; i < 500; i++ {
		s.Advance(0.05)
		if s.PlayerX() > maxX {
			t.Fatalf("player x %f beyond max %f", s.PlayerX(), maxX)
		}
	}
	if s.PlayerX() != maxX {
		t.Errorf("player x = %f, expected pinned at %f", s.PlayerX(), maxX)
	}

	s.SetMoveRight(false)
	s.SetMoveLeft(true)
	for i := 0; i < 500; i++ {
		s.Advance(0.05)
		if s.PlayerX() < minX {
			t.Fatalf("player x %f beyond min %f", s.PlayerX(), minX)
		}
	}
	if s.PlayerX() != minX {
		t.Errorf("player x = %f, expected pinned at %f", s.PlayerX(), minX)
	}
}

func TestOpposingIntentsCancel(t *testing.T) {
	s := newTestSim(t, quietCorridor())
	s.SetMoveLeft(true)
	s.SetMoveRight(true)
	s.Advance(0.05)

	if s.PlayerX() != 0 {
		t.Errorf("player moved to %f with both intents held", s.PlayerX())
	}
}

// crash places an obstacle on the player and advances until the run ends.
func crash(t *testing.T, s *Sim) {
	t.Helper()
	s.obstacles = append(s.obstacles, Obstacle{
		X:     s.PlayerX(),
		Depth: s.cfg.Player.Depth,
		Size:  s.cfg.Obstacles.Size,
		Lane:  3,
	})
	s.Advance(0.001)
	if !s.Over() {
		t.Fatal("expected collision")
	}
}

func TestCollisionAtZeroDistance(t *testing.T) {
	for _, cfg := range []config.DodgeConfig{config.DefaultCorridorConfig(), config.DefaultTopDownConfig()} {
		s := newTestSim(t, cfg)
		crash(t, s)

		if s.Running() {
			t.Error("Running() should be false after a collision")
		}
	}
}

func TestNoCollisionOutsideDepthBand(t *testing.T) {
	s := newTestSim(t, quietCorridor())
	s.obstacles = append(s.obstacles, Obstacle{X: 0, Depth: -10, Size: 0.85})

	if s.CheckCollision() {
		t.Error("obstacle far ahead should not collide")
	}
}

func TestEdgeContactIsNotCollision(t *testing.T) {
	s := newTestSim(t, quietCorridor())
	// Lateral distance exactly equal to the summed half widths.
	s.obstacles = append(s.obstacles, Obstacle{X: 0.7 + 0.425, Depth: 0, Size: 0.85})

	if s.CheckCollision() {
		t.Error("touching boxes should not collide")
	}
}

func TestDepthEdgeContactIsNotCollision(t *testing.T) {
	s := newTestSim(t, quietCorridor())
	// Depth distance exactly equal to the summed half depths.
	s.obstacles = append(s.obstacles, Obstacle{X: 0, Depth: -(1.2 + 0.425), Size: 0.85})

	if s.CheckCollision() {
		t.Error("boxes touching along depth should not collide")
	}
}

func TestDefaultPatternsArePassable(t *testing.T) {
	for _, base := range []config.DodgeConfig{config.DefaultCorridorConfig(), config.DefaultTopDownConfig()} {
		for i, pattern := range base.Patterns {
			cfg := base
			cfg.Obstacles.SpawnInterval = 1000
			s := newTestSim(t, cfg)
			for _, lane := range pattern {
				s.obstacles = append(s.obstacles, Obstacle{
					X:     cfg.LaneCenter(lane),
					Depth: cfg.Player.Depth,
					Size:  cfg.Obstacles.Size,
					Lane:  lane,
				})
			}

			minX, maxX := s.Bounds()
			const samples = 560
			safe := false
			for k := 0; k <= samples && !safe; k++ {
				s.playerX = minX + (maxX-minX)*float64(k)/samples
				safe = !s.CheckCollision()
			}
			if !safe {
				t.Errorf("pattern %d %v: no safe lateral position in [%.2f, %.2f]", i, pattern, minX, maxX)
			}
		}
	}
}

func TestFrozenAfterGameOver(t *testing.T) {
	s := newTestSim(t, config.DefaultCorridorConfig())
	crash(t, s)

	before := s.Snapshot()
	s.SetMoveLeft(true)
	for i := 0; i < 50; i++ {
		s.Advance(0.05)
	}
	after := s.Snapshot()

	if !reflect.DeepEqual(before, after) {
		t.Errorf("state changed after game over:\nbefore %+v\nafter  %+v", before, after)
	}
	if !s.Over() || s.Running() {
		t.Error("game over should persist until restart")
	}
}

func TestRestartPostconditions(t *testing.T) {
	s := newTestSim(t, config.DefaultCorridorConfig(), 1)

	check := func(label string) {
		t.Helper()
		s.Restart()
		if !s.Running() || s.Over() {
			t.Errorf("%s: Running=%v Over=%v", label, s.Running(), s.Over())
		}
		if s.Score() != 0 || s.Elapsed() != 0 {
			t.Errorf("%s: score=%f elapsed=%f", label, s.Score(), s.Elapsed())
		}
		if len(s.Obstacles()) != 0 {
			t.Errorf("%s: %d obstacles remain", label, len(s.Obstacles()))
		}
		if s.PlayerX() != 0 {
			t.Errorf("%s: player x = %f", label, s.PlayerX())
		}
		if s.RowsSpawned() != 0 {
			t.Errorf("%s: rows = %d", label, s.RowsSpawned())
		}
	}

	// While running, mid-game
	s.SetMoveRight(true)
	s.Advance(1.4)
	check("running")

	// After a crash
	crash(t, s)
	check("over")

	// Twice in a row
	check("idempotent")
}

func TestRestartKeepsIntents(t *testing.T) {
	s := newTestSim(t, quietCorridor())
	s.SetMoveLeft(true)
	s.Restart()

	if left, right := s.Intents(); !left || right {
		t.Errorf("Intents() = %v, %v, expected held left to survive restart", left, right)
	}
}

func TestSpeedMultiplierMonotonicAndCapped(t *testing.T) {
	for _, cfg := range []config.DodgeConfig{config.DefaultCorridorConfig(), config.DefaultTopDownConfig()} {
		s := newTestSim(t, cfg)
		prev := s.SpeedMultiplier(0)
		for e := 0.0; e < 300; e += 0.25 {
			m := s.SpeedMultiplier(e)
			if m < prev {
				t.Fatalf("multiplier decreased at %f: %f < %f", e, m, prev)
			}
			if m > cfg.Difficulty.Cap {
				t.Fatalf("multiplier %f above cap %f", m, cfg.Difficulty.Cap)
			}
			prev = m
		}
		if prev != cfg.Difficulty.Cap {
			t.Errorf("multiplier = %f after 300s, expected cap %f", prev, cfg.Difficulty.Cap)
		}
	}
}

func TestAdvanceSpawnIntervalSpawnsOneRow(t *testing.T) {
	for i, pattern := range config.CorridorPatterns {
		s := newTestSim(t, config.DefaultCorridorConfig(), i)
		s.Advance(1.35)

		if s.RowsSpawned() != 1 {
			t.Fatalf("pattern %d: rows = %d, expected 1", i, s.RowsSpawned())
		}
		obs := s.Obstacles()
		if len(obs) != len(pattern) {
			t.Errorf("pattern %d: %d obstacles, expected %d", i, len(obs), len(pattern))
		}
		if len(obs) < 1 || len(obs) > 3 {
			t.Errorf("pattern %d: %d obstacles, expected 1-3", i, len(obs))
		}
		for j, o := range obs {
			if o.Lane != pattern[j] {
				t.Errorf("pattern %d: obstacle %d in lane %d, expected %d", i, j, o.Lane, pattern[j])
			}
			if o.X != s.cfg.LaneCenter(o.Lane) {
				t.Errorf("pattern %d: obstacle x = %f, expected lane center", i, o.X)
			}
		}
	}
}

func TestNoSpawnBeforeInterval(t *testing.T) {
	s := newTestSim(t, config.DefaultCorridorConfig())
	s.Advance(1.3)
	if n := len(s.Obstacles()); n != 0 {
		t.Errorf("%d obstacles before the first interval", n)
	}
}

func TestLongTickSpawnsEveryElapsedRow(t *testing.T) {
	cfg := config.DefaultTopDownConfig()
	cfg.Timing.MaxStep = 10
	cfg.Patterns = [][]int{{0}}
	s := newTestSim(t, cfg)

	s.Advance(cfg.Obstacles.SpawnInterval * 3)
	if s.RowsSpawned() != 3 {
		t.Errorf("rows = %d, expected 3 from one long tick", s.RowsSpawned())
	}
}

func TestLargeDeltaDoesNotTunnel(t *testing.T) {
	s := newTestSim(t, quietCorridor())
	// One 0.5 s step would carry this obstacle from well ahead of the
	// player to well behind it.
	s.obstacles = append(s.obstacles, Obstacle{X: 0, Depth: -4, Size: 0.85})

	s.Advance(0.5)
	if !s.Over() {
		t.Error("obstacle passed through the player during a long tick")
	}
}

func TestHugeDeltaIsClamped(t *testing.T) {
	cfg := config.DefaultCorridorConfig()
	cfg.Patterns = [][]int{{0}}
	limit := maxSubSteps * cfg.Timing.MaxStep

	for _, dt := range []float64{1e12, math.Inf(1)} {
		s := newTestSim(t, cfg)
		s.Advance(dt)

		if math.Abs(s.Elapsed()-limit) > 1e-6 {
			t.Errorf("Advance(%g): Elapsed() = %f, expected clamp to %f", dt, s.Elapsed(), limit)
		}
		if s.tick != maxSubSteps {
			t.Errorf("Advance(%g): ran %d sub-steps, expected %d", dt, s.tick, maxSubSteps)
		}
		if s.Over() {
			t.Errorf("Advance(%g): crashed on a row that never blocks the centre lane", dt)
		}
	}
}

func TestFrameClampsWallDelta(t *testing.T) {
	s := newTestSim(t, quietCorridor())
	s.Frame(10)

	if s.Elapsed() != s.cfg.Timing.MaxStep {
		t.Errorf("Elapsed() = %f, expected clamp to %f", s.Elapsed(), s.cfg.Timing.MaxStep)
	}
}

func TestAdvanceIgnoresBadDeltas(t *testing.T) {
	s := newTestSim(t, quietCorridor())
	s.Advance(-1)
	s.Advance(math.NaN())
	s.Advance(0)

	if s.Elapsed() != 0 || s.Score() != 0 {
		t.Errorf("bad deltas advanced the sim: elapsed=%f score=%f", s.Elapsed(), s.Score())
	}
}

func TestObstacleRemovedPastThreshold(t *testing.T) {
	for _, base := range []config.DodgeConfig{config.DefaultCorridorConfig(), config.DefaultTopDownConfig()} {
		cfg := base
		cfg.Patterns = [][]int{{0}}
		s := newTestSim(t, cfg)

		sawFirst := false
		for i := 0; i < 2000 && s.Running(); i++ {
			s.Advance(0.016)
			first := false
			for _, o := range s.Obstacles() {
				if o.Depth > cfg.Obstacles.RemovalDepth {
					t.Fatalf("tick %d: obstacle at %f past removal depth %f", i, o.Depth, cfg.Obstacles.RemovalDepth)
				}
				if o.Row == 1 {
					first = true
				}
			}
			if first {
				sawFirst = true
			} else if sawFirst {
				break
			}
		}

		if !s.Running() {
			t.Fatal("player in the center lane should not hit lane 0 obstacles")
		}
		if !sawFirst {
			t.Fatal("first row never spawned")
		}
		for _, o := range s.Obstacles() {
			if o.Row == 1 {
				t.Errorf("first row still present at depth %f", o.Depth)
			}
		}
	}
}

func TestObstaclesMoveAtMultipliedSpeed(t *testing.T) {
	s := newTestSim(t, quietCorridor())
	s.obstacles = append(s.obstacles, Obstacle{X: -3, Depth: -40, Size: 0.85, Lane: 0})

	s.Advance(0.05)
	want := -40 + 16*s.SpeedMultiplier(0.05)*0.05
	if got := s.Obstacles()[0].Depth; math.Abs(got-want) > 1e-12 {
		t.Errorf("depth = %f, expected %f", got, want)
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	run := func() Snapshot {
		s, err := NewSim(config.DefaultTopDownConfig(), rand.New(rand.NewSource(42)))
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 600 && s.Running(); i++ {
			s.SetMoveLeft(i%120 < 60)
			s.SetMoveRight(i%120 >= 60)
			s.Advance(1.0 / 60)
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("identical seeds and inputs produced different runs")
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	s := newTestSim(t, config.DefaultCorridorConfig())
	s.Advance(1.35)

	snap := s.Snapshot()
	if len(snap.Obstacles) == 0 {
		t.Fatal("expected obstacles")
	}
	snap.Obstacles[0].Depth = 999
	if s.Obstacles()[0].Depth == 999 {
		t.Error("snapshot shares obstacle storage with the sim")
	}
	if snap.Rows != 1 || snap.Tick == 0 {
		t.Errorf("snapshot counters: rows=%d tick=%d", snap.Rows, snap.Tick)
	}
}

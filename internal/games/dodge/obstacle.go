package dodge

import (
	"github.com/vovakirdan/lane-dodger/internal/core"
)

// RandSource picks pattern rows. *rand.Rand satisfies it; tests inject
// scripted sequences to get exact spawn outcomes.
type RandSource interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Obstacle is a single blocked lane cell travelling toward the player.
type Obstacle struct {
	X     float64 // Lateral position (lane center)
	Depth float64 // Depth position, grows toward and past the player plane
	Size  float64 // Edge length of the square hitbox
	Lane  int     // Lane index the obstacle occupies
	Row   uint64  // Sequence number of the row it was spawned with
}

// Box returns the collision box for this obstacle.
func (o Obstacle) Box() core.Box {
	half := o.Size / 2
	return core.NewBox(o.X, o.Depth, half, half)
}

// spawnRow draws one pattern and appends an obstacle per blocked lane.
func (s *Sim) spawnRow() {
	pattern := s.cfg.Patterns[s.rng.Intn(len(s.cfg.Patterns))]
	s.rows++
	for _, lane := range pattern {
		s.obstacles = append(s.obstacles, Obstacle{
			X:     s.cfg.LaneCenter(lane),
			Depth: s.cfg.Obstacles.SpawnDepth,
			Size:  s.cfg.Obstacles.Size,
			Lane:  lane,
			Row:   s.rows,
		})
	}
}

// moveObstacles advances every obstacle by the same depth delta.
func (s *Sim) moveObstacles(delta float64) {
	for i := range s.obstacles {
		s.obstacles[i].Depth += delta
	}
}

// pruneObstacles drops obstacles past the removal threshold, filtering in place.
func (s *Sim) pruneObstacles() {
	limit := s.cfg.Obstacles.RemovalDepth
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.Depth <= limit {
			kept = append(kept, o)
		}
	}
	// Zero the tail so dropped obstacles don't linger in the backing array.
	for i := len(kept); i < len(s.obstacles); i++ {
		s.obstacles[i] = Obstacle{}
	}
	s.obstacles = kept
}

// CheckCollision reports whether the player hitbox overlaps any obstacle.
// Obstacles outside the depth band around the player plane are skipped
// before the full box test.
func (s *Sim) CheckCollision() bool {
	player := s.PlayerBox()
	band := s.cfg.Player.HalfDepth + s.cfg.Obstacles.Size/2
	for _, o := range s.obstacles {
		if core.AbsF(o.Depth-player.Z) > band {
			continue
		}
		if player.Intersects(o.Box()) {
			return true
		}
	}
	return false
}

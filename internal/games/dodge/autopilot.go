package dodge

import (
	"math"
	"sort"
)

// Autopilot steers toward the nearest safe lateral position for the closest
// unpassed row. It drives headless runs and soak tests; it is not meant to be
// unbeatable.
type Autopilot struct {
	// Deadband is the distance from the target within which no key is held.
	Deadband float64
	// Margin is added to the clearance around each obstacle.
	Margin float64
}

// NewAutopilot returns an autopilot scaled to the variant's lane width.
func NewAutopilot(s *Sim) *Autopilot {
	lane := s.cfg.LaneWidth()
	return &Autopilot{
		Deadband: lane * 0.05,
		Margin:   lane * 0.05,
	}
}

// Drive sets the simulation's movement intents for the next tick.
func (a *Autopilot) Drive(s *Sim) {
	left, right := a.Decide(s)
	s.SetMoveLeft(left)
	s.SetMoveRight(right)
}

// Decide returns the intents the autopilot would hold.
func (a *Autopilot) Decide(s *Sim) (left, right bool) {
	target, ok := a.Target(s)
	if !ok {
		return false, false
	}
	x := s.PlayerX()
	switch {
	case target > x+a.Deadband:
		return false, true
	case target < x-a.Deadband:
		return true, false
	}
	return false, false
}

// Target returns the safe lateral position closest to the player for the
// nearest row that has not yet passed the player plane. ok is false when
// nothing is approaching or the row leaves no reachable gap.
func (a *Autopilot) Target(s *Sim) (float64, bool) {
	row := a.threatRow(s)
	if len(row) == 0 {
		return 0, false
	}

	clearance := s.cfg.Player.HalfWidth + s.cfg.Obstacles.Size/2 + a.Margin
	minX, maxX := s.Bounds()

	blocked := func(x float64) bool {
		for _, o := range row {
			if math.Abs(x-o.X) < clearance {
				return true
			}
		}
		return false
	}

	x := s.PlayerX()
	if !blocked(x) {
		return x, true
	}

	candidates := []float64{minX, maxX}
	for _, o := range row {
		candidates = append(candidates, o.X-clearance, o.X+clearance)
	}

	best, found := 0.0, false
	for _, c := range candidates {
		if c < minX || c > maxX || blocked(c) {
			continue
		}
		if !found || math.Abs(c-x) < math.Abs(best-x) {
			best, found = c, true
		}
	}
	return best, found
}

// threatRow returns the obstacles of the closest row still ahead of or level
// with the player.
func (a *Autopilot) threatRow(s *Sim) []Obstacle {
	passed := s.cfg.Player.Depth + s.cfg.Player.HalfDepth + s.cfg.Obstacles.Size/2

	ahead := make([]Obstacle, 0, len(s.obstacles))
	for _, o := range s.obstacles {
		if o.Depth < passed {
			ahead = append(ahead, o)
		}
	}
	if len(ahead) == 0 {
		return nil
	}

	sort.Slice(ahead, func(i, j int) bool {
		return ahead[i].Depth > ahead[j].Depth
	})
	nearest := ahead[0].Row

	row := ahead[:0]
	for _, o := range ahead {
		if o.Row == nearest {
			row = append(row, o)
		}
	}
	return row
}

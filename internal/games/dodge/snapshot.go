package dodge

// Snapshot is an immutable view of the simulation for one frame.
// Renderers and HUDs draw from it without touching the Sim.
type Snapshot struct {
	Tick       uint64
	Rows       uint64
	Running    bool
	Over       bool
	Score      float64
	Elapsed    float64
	Multiplier float64
	PlayerX    float64
	MinX, MaxX float64
	SteerLeft  bool
	SteerRight bool
	Obstacles  []Obstacle
}

// Snapshot captures the current state. The obstacle slice is a copy.
func (s *Sim) Snapshot() Snapshot {
	minX, maxX := s.Bounds()
	left, right := s.Intents()
	return Snapshot{
		Tick:       s.tick,
		Rows:       s.rows,
		Running:    s.running,
		Over:       s.over,
		Score:      s.score,
		Elapsed:    s.elapsed,
		Multiplier: s.Multiplier(),
		PlayerX:    s.playerX,
		MinX:       minX,
		MaxX:       maxX,
		SteerLeft:  left,
		SteerRight: right,
		Obstacles:  s.Obstacles(),
	}
}

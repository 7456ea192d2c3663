package dodge

import "math"

// RunResult summarizes a headless run.
type RunResult struct {
	Ticks      int
	Rows       uint64
	Elapsed    float64
	Score      float64
	Multiplier float64
	Crashed    bool
}

// RunHeadless advances s in fixed steps of dt until it has simulated the
// given number of seconds or the run ends. A non-nil pilot steers before
// every step.
func RunHeadless(s *Sim, pilot *Autopilot, seconds, dt float64) RunResult {
	var res RunResult
	if dt > 0 && seconds > 0 {
		steps := int(math.Ceil(seconds/dt - spawnEpsilon))
		for ; res.Ticks < steps && s.Running(); res.Ticks++ {
			if pilot != nil {
				pilot.Drive(s)
			}
			s.Advance(dt)
		}
	}

	res.Rows = s.RowsSpawned()
	res.Elapsed = s.Elapsed()
	res.Score = s.Score()
	res.Multiplier = s.Multiplier()
	res.Crashed = s.Over()
	return res
}

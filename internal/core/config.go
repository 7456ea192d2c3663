package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for seeded obstacle patterns.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the host loop (default 60)
	Seed     int64 // RNG seed for pattern selection
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score      int     // Current score, floored
	Elapsed    float64 // Seconds survived since the last restart
	Multiplier float64 // Current speed multiplier
	GameOver   bool    // Whether the run has ended
	Paused     bool    // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Crashed is true only on the tick the run ended.
	Crashed bool

	// Restarted is true when this tick began a fresh run.
	Restarted bool
}

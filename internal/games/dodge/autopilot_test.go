package dodge

import (
	"testing"

	"github.com/vovakirdan/lane-dodger/internal/config"
)

func TestAutopilotIdleWithoutThreat(t *testing.T) {
	s := newTestSim(t, quietCorridor())
	ap := NewAutopilot(s)

	if left, right := ap.Decide(s); left || right {
		t.Errorf("Decide() = %v, %v with an empty road", left, right)
	}
}

func TestAutopilotStaysWhenSafe(t *testing.T) {
	s := newTestSim(t, quietCorridor())
	s.obstacles = append(s.obstacles, Obstacle{X: -3, Depth: -10, Size: 0.85, Lane: 0, Row: 1})
	ap := NewAutopilot(s)

	if left, right := ap.Decide(s); left || right {
		t.Errorf("Decide() = %v, %v while already clear", left, right)
	}
}

func TestAutopilotDodgesBlockedLane(t *testing.T) {
	s := newTestSim(t, quietCorridor())
	s.obstacles = append(s.obstacles,
		Obstacle{X: 0, Depth: -10, Size: 0.85, Lane: 3, Row: 1},
		Obstacle{X: -1, Depth: -10, Size: 0.85, Lane: 2, Row: 1},
	)
	ap := NewAutopilot(s)

	target, ok := ap.Target(s)
	if !ok {
		t.Fatal("expected a reachable gap")
	}
	if target <= 0 {
		t.Errorf("target = %f, expected the open right side", target)
	}
	if left, right := ap.Decide(s); left || !right {
		t.Errorf("Decide() = %v, %v, expected right", left, right)
	}
}

func TestAutopilotFocusesOnNearestRow(t *testing.T) {
	s := newTestSim(t, quietCorridor())
	s.obstacles = append(s.obstacles,
		Obstacle{X: -3, Depth: -5, Size: 0.85, Lane: 0, Row: 2},
		Obstacle{X: 0, Depth: -30, Size: 0.85, Lane: 3, Row: 3},
	)
	ap := NewAutopilot(s)

	// Row 3 blocks the center but row 2 arrives first and leaves it open.
	if left, right := ap.Decide(s); left || right {
		t.Errorf("Decide() = %v, %v, expected to hold position", left, right)
	}
}

func TestAutopilotIgnoresPassedRows(t *testing.T) {
	s := newTestSim(t, quietCorridor())
	s.obstacles = append(s.obstacles, Obstacle{X: 0, Depth: 5, Size: 0.85, Lane: 3, Row: 1})
	ap := NewAutopilot(s)

	if _, ok := ap.Target(s); ok {
		t.Error("rows behind the player should not be targeted")
	}
}

func TestAutopilotDriveSetsIntents(t *testing.T) {
	cfg := config.DefaultTopDownConfig()
	s := newTestSim(t, cfg)
	s.obstacles = append(s.obstacles, Obstacle{X: 0, Depth: 300, Size: 48, Lane: 3, Row: 1})
	ap := NewAutopilot(s)

	ap.Drive(s)
	left, right := s.Intents()
	if left == right {
		t.Errorf("Intents() = %v, %v, expected one direction", left, right)
	}
}

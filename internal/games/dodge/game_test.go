package dodge

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/lane-dodger/internal/core"
	"github.com/vovakirdan/lane-dodger/internal/registry"
)

func newTestGame(t *testing.T, g *Game) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	SetConfigPath("")
	SetDifficultyPreset("")

	cfg := core.DefaultConfig()
	cfg.Seed = 7
	g.Reset(cfg)
	return g
}

func press(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func release(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Release(a)
	}
	return f
}

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{"corridor", "topdown"} {
		if !registry.Exists(id) {
			t.Errorf("variant %q not registered", id)
			continue
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestRegistryListing(t *testing.T) {
	games := registry.List()
	if len(games) != 2 {
		t.Fatalf("List() returned %d variants, expected 2", len(games))
	}
	if games[0].ID != "corridor" || games[1].ID != "topdown" {
		t.Errorf("List() order = %q, %q", games[0].ID, games[1].ID)
	}
	for _, g := range games {
		if g.Blurb == "" {
			t.Errorf("variant %q has no blurb", g.ID)
		}
	}
	if _, err := registry.Create("pong"); err == nil {
		t.Error("Create of unknown variant should fail")
	}
}

func TestTitles(t *testing.T) {
	if got := NewCorridor().Title(); got != "Corridor Run" {
		t.Errorf("corridor title = %q", got)
	}
	if got := NewTopDown().Title(); got != "Lane Rush" {
		t.Errorf("topdown title = %q", got)
	}
}

func TestStepMapsPressAndReleaseEdges(t *testing.T) {
	g := newTestGame(t, NewCorridor())

	g.Step(press(core.ActionRight), 0.016)
	if _, right := g.Sim().Intents(); !right {
		t.Fatal("right press should set intent")
	}

	// Holding produces no edges; intent persists.
	g.Step(core.NewInputFrame(), 0.016)
	if _, right := g.Sim().Intents(); !right {
		t.Fatal("intent should persist while held")
	}
	if g.Sim().PlayerX() <= 0 {
		t.Errorf("player x = %f, expected movement to the right", g.Sim().PlayerX())
	}

	g.Step(release(core.ActionRight), 0.016)
	if _, right := g.Sim().Intents(); right {
		t.Error("release should clear intent")
	}
}

func TestStepPressAndReleaseInOneFrameEndsReleased(t *testing.T) {
	g := newTestGame(t, NewTopDown())

	f := press(core.ActionLeft)
	f.Release(core.ActionLeft)
	g.Step(f, 0.016)

	if left, _ := g.Sim().Intents(); left {
		t.Error("tap within one frame should leave the intent cleared")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, NewCorridor())
	g.Step(core.NewInputFrame(), 0.016)

	res := g.Step(press(core.ActionPause), 0.016)
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}
	elapsed := g.Sim().Elapsed()
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame(), 0.016)
	}
	if g.Sim().Elapsed() != elapsed {
		t.Error("simulation advanced while paused")
	}

	g.Step(press(core.ActionPause), 0.016)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestCrashAndRestartFlags(t *testing.T) {
	g := newTestGame(t, NewCorridor())
	s := g.Sim()
	s.obstacles = append(s.obstacles, Obstacle{X: 0, Depth: 0, Size: 0.85, Lane: 3})

	res := g.Step(core.NewInputFrame(), 0.016)
	if !res.Crashed || !res.State.GameOver {
		t.Fatalf("expected crash, got %+v", res)
	}

	res = g.Step(core.NewInputFrame(), 0.016)
	if res.Crashed {
		t.Error("Crashed should be reported only on the tick the run ended")
	}

	res = g.Step(press(core.ActionRestart), 0.016)
	if !res.Restarted || res.State.GameOver {
		t.Errorf("expected fresh run after restart, got %+v", res)
	}
}

func TestRestartWhileRunning(t *testing.T) {
	g := newTestGame(t, NewTopDown())
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame(), 1.0/60)
	}

	res := g.Step(press(core.ActionRestart), 0.016)
	if !res.Restarted {
		t.Fatal("restart should be accepted while running")
	}
	if res.State.Elapsed > 0.017 {
		t.Errorf("elapsed = %f after restart", res.State.Elapsed)
	}
}

func TestStateFloorsScore(t *testing.T) {
	g := newTestGame(t, NewCorridor())
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame(), 0.016)
	}
	if got, want := g.State().Score, int(g.Sim().Score()); got != want {
		t.Errorf("Score = %d, expected %d", got, want)
	}
}

func TestResetFallsBackOnBrokenConfig(t *testing.T) {
	g := NewCorridor()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("patterns: [[0, 1, 2, 3, 4, 5, 6]]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	defer SetConfigPath("")

	g.Reset(core.DefaultConfig())
	if g.LoadErr() == nil {
		t.Error("expected a config error to be reported")
	}
	if g.Sim() == nil || !g.Sim().Running() {
		t.Error("game should still start with defaults")
	}
}

func TestDifficultyPresetApplies(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	SetDifficultyPreset("hard")
	defer SetDifficultyPreset("")

	g := NewCorridor()
	g.Reset(core.DefaultConfig())
	if m := g.Sim().Multiplier(); m <= 1.3 {
		t.Errorf("hard preset multiplier = %f, expected head start", m)
	}
}

func TestRenderCorridor(t *testing.T) {
	g := newTestGame(t, NewCorridor())
	g.Sim().Advance(2)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score:") || !strings.Contains(screen.Row(0), "Speed:") {
		t.Errorf("HUD missing: %q", screen.Row(0))
	}
	out := screen.String()
	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("player not drawn")
	}
	if !strings.ContainsRune(out, WallChar) {
		t.Error("corridor walls not drawn")
	}
}

func TestRenderPlayerLeansWhileSteering(t *testing.T) {
	g := newTestGame(t, NewTopDown())
	screen := core.NewScreen(80, 24)

	g.Step(press(core.ActionRight), 0.01)
	g.Render(screen)
	if !strings.ContainsRune(screen.String(), SteerRight) {
		t.Error("player should lean right while right is held")
	}

	g.Step(release(core.ActionRight), 0.01)
	g.Render(screen)
	if out := screen.String(); !strings.ContainsRune(out, PlayerChar) || strings.ContainsRune(out, SteerRight) {
		t.Error("player should stand upright once released")
	}
}

func TestRenderTopDown(t *testing.T) {
	g := newTestGame(t, NewTopDown())
	g.Sim().Advance(1.5)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.ContainsRune(out, '┌') {
		t.Error("field border not drawn")
	}
	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("player not drawn")
	}
	if !strings.ContainsRune(out, ObstacleChar) {
		t.Error("obstacles not drawn")
	}
}

func TestRenderCrashOverlay(t *testing.T) {
	g := newTestGame(t, NewTopDown())
	crash(t, g.Sim())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "CRASH!") || !strings.Contains(out, "Press R to restart") {
		t.Error("crash overlay missing")
	}
}

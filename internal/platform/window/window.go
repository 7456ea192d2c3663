// Package window runs the game in a desktop window with ebiten.
// It shares the simulation and scene layout with the terminal frontend and
// differs only in how input is read and pixels are painted.
package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/lane-dodger/internal/core"
	"github.com/vovakirdan/lane-dodger/internal/games/dodge"
	"github.com/vovakirdan/lane-dodger/internal/registry"
	"github.com/vovakirdan/lane-dodger/internal/storage"
)

// Game is a registered game whose simulation the window can draw directly.
type Game interface {
	registry.Game
	Sim() *dodge.Sim
}

// Sounds plays effects for game events.
type Sounds interface {
	PlayCrash()
	PlayRestart()
}

// Options configures a window session. Every field is optional.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger
	Sounds Sounds
	Scale  float64 // Initial window size relative to 640x480
}

// App implements ebiten.Game for one game.
type App struct {
	game    Game
	opts    Options
	logger  *log.Logger
	input   *inputTracker
	frame   core.InputFrame
	state   core.GameState
	last    time.Time
	now     func() time.Time
	saved   bool
	focused bool
}

// NewApp creates an App and starts a fresh run.
func NewApp(game Game, cfg core.RuntimeConfig, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("game", game.ID(), "frontend", "window")

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)
	if r, ok := game.(interface{ LoadErr() error }); ok && r.LoadErr() != nil {
		logger.Warn("using default config", "error", r.LoadErr())
	}

	return &App{
		game:    game,
		opts:    opts,
		logger:  logger,
		input:   newInputTracker(),
		frame:   core.NewInputFrame(),
		state:   game.State(),
		now:     time.Now,
		focused: true,
	}
}

// Update polls input and advances the game by the wall-clock time since
// the previous Update.
func (a *App) Update() error {
	focused := ebiten.IsFocused()
	if focused {
		a.input.poll(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed, &a.frame)
	} else if a.focused {
		a.input.releaseAll(&a.frame)
	}
	a.focused = focused

	if a.frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	a.advance(a.now())
	return nil
}

// advance steps the game with the pending input edges.
func (a *App) advance(now time.Time) {
	dt := 0.0
	if !a.last.IsZero() {
		dt = now.Sub(a.last).Seconds()
	}
	a.last = now

	res := a.game.Step(a.frame, dt)
	a.frame.Clear()
	a.state = res.State

	if res.Restarted {
		a.saved = false
		a.logger.Debug("run restarted")
		if a.opts.Sounds != nil {
			a.opts.Sounds.PlayRestart()
		}
	}
	if res.Crashed && a.opts.Sounds != nil {
		a.opts.Sounds.PlayCrash()
	}
	if a.state.GameOver && !a.saved {
		a.saveRun()
	}
}

func (a *App) saveRun() {
	a.saved = true
	st := a.state
	a.logger.Info("run ended", "score", st.Score, "elapsed", fmt.Sprintf("%.1fs", st.Elapsed), "multiplier", st.Multiplier)

	if a.opts.Store == nil || st.Score <= 0 {
		return
	}
	if _, err := a.opts.Store.SaveRun(storage.Run{
		GameID:         a.game.ID(),
		Score:          st.Score,
		ElapsedSecs:    st.Elapsed,
		PeakMultiplier: st.Multiplier,
	}); err != nil {
		a.logger.Warn("could not save run", "error", err)
	}
}

// Draw paints the current frame.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	sim := a.game.Sim()
	b := screen.Bounds()
	f := planFrame(a.game.ID(), sim.Config(), sim.Snapshot(), b.Dx(), b.Dy())
	f.Paused = a.state.Paused

	fl := f.Field
	vector.DrawFilledRect(screen, float32(fl.X), float32(fl.Y), float32(fl.W), float32(fl.H), colorField, false)

	for _, seg := range f.Lanes {
		c, width := colorDivider, float32(1)
		if seg.Edge {
			c, width = colorWall, 2
		}
		vector.StrokeLine(screen, float32(seg.X0), float32(seg.Y0), float32(seg.X1), float32(seg.Y1), width, c, true)
	}

	for _, s := range f.Sprites {
		r, ok := clip(s, fl)
		if !ok {
			continue
		}
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), spriteColor(f.Variant, s), false)
	}

	ebitenutil.DebugPrint(screen, hudText(f))

	if msg := overlayText(f); msg != "" {
		vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), colorOverlay, false)
		ebitenutil.DebugPrintAt(screen, msg, b.Dx()/2-60, b.Dy()/2-16)
	}
}

// Layout draws at the window's native size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func hudText(f frame) string {
	return fmt.Sprintf("Score: %d   Speed: %.1fx   Time: %.1fs\nArrows/AD steer  P pause  R restart  Q quit",
		f.Score, f.Speed, f.Elapsed)
}

func overlayText(f frame) string {
	switch {
	case f.Over:
		return fmt.Sprintf("CRASH!\nScore: %d\nPress R to restart", f.Score)
	case f.Paused:
		return "PAUSED\nPress P to resume"
	}
	return ""
}

// Run opens a window and plays until it is closed or Q is pressed.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1.5
	}

	ebiten.SetWindowSize(int(640*scale), int(480*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(NewApp(game, cfg, opts)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

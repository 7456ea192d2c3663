package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-dodger/internal/core"
	"github.com/vovakirdan/lane-dodger/internal/registry"
	"github.com/vovakirdan/lane-dodger/internal/storage"
)

// Sounds plays effects for game events. *audio.SoundManager satisfies it.
type Sounds interface {
	PlayCrash()
	PlayRestart()
}

// Options carries the collaborators a game model reports to.
// Every field is optional.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger
	Sounds Sounds
	User   string // Player name attached to log entries

	// ExitOnBack ends the program when the player backs out of a finished
	// or paused game, instead of leaving the decision to a parent model.
	ExitOnBack bool
}

// Model is the Bubble Tea model for running one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	hold       *HoldTracker
	input      core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	now        func() time.Time
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the run has been saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("game", game.ID())
	if opts.User != "" {
		logger = logger.With("user", opts.User)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:   opts,
		logger: logger,
		config: cfg,
		keys:   NewKeyMapper(),
		hold:   NewHoldTracker(DefaultInitialHold, DefaultRepeatHold),
		input:  core.NewInputFrame(),
		now:    time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if r, ok := m.game.(interface{ LoadErr() error }); ok && r.LoadErr() != nil {
		m.logger.Warn("using default config", "error", r.LoadErr())
	}
	m.logger.Debug("game started", "seed", m.config.Seed)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.BlurMsg:
		m.hold.ReleaseAll(&m.input)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionBack:
		// Back to menu only when nothing is in flight
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.opts.ExitOnBack {
				return m, tea.Quit
			}
		}
	case IsHeld(action):
		m.hold.Press(action, m.now(), &m.input)
	case action != core.ActionNone:
		m.input.Set(action)
	}

	return m, nil
}

// handleTick advances the game by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	m.hold.Expire(now, &m.input)

	result := m.game.Step(m.input, dt)
	m.gameState = result.State

	if result.Restarted {
		m.scoreSaved = false
		m.logger.Debug("run restarted")
		if m.opts.Sounds != nil {
			m.opts.Sounds.PlayRestart()
		}
	}
	if result.Crashed && m.opts.Sounds != nil {
		m.opts.Sounds.PlayCrash()
	}

	// Save run on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Storage failures are logged; the game
// continues regardless.
func (m *Model) saveRun() {
	m.scoreSaved = true
	st := m.gameState
	m.logger.Info("run ended", "score", st.Score, "elapsed", fmt.Sprintf("%.1fs", st.Elapsed), "multiplier", st.Multiplier)

	if m.opts.Store == nil || st.Score <= 0 {
		return
	}
	_, err := m.opts.Store.SaveRun(storage.Run{
		GameID:         m.game.ID(),
		Score:          st.Score,
		ElapsedSecs:    st.Elapsed,
		PeakMultiplier: st.Multiplier,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".dodger", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Result describes how a standalone game session ended.
type Result struct {
	BackToMenu bool
	Config     core.RuntimeConfig // Possibly resized
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (Result, error) {
	opts.ExitOnBack = true
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{Config: cfg}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Result{Config: cfg}, nil
	}
	return Result{BackToMenu: m.BackToMenu(), Config: m.config}, nil
}

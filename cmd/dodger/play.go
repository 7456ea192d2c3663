package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lane-dodger/internal/audio"
	"github.com/vovakirdan/lane-dodger/internal/config"
	"github.com/vovakirdan/lane-dodger/internal/core"
	"github.com/vovakirdan/lane-dodger/internal/games/dodge"
	"github.com/vovakirdan/lane-dodger/internal/platform/tui"
	"github.com/vovakirdan/lane-dodger/internal/registry"
	"github.com/vovakirdan/lane-dodger/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play <track>",
	Short: "Play a track in the terminal",
	Long: `Start playing the specified track in the terminal.

Controls:
  Left/A/H   - Steer left
  Right/D/L  - Steer right
  P/Esc      - Pause
  R          - Restart
  B          - Back (when paused or crashed)
  Q/Ctrl+C   - Quit
  Ctrl+S     - Save a text screenshot

Terminals do not report key releases, so a tap steers briefly and a held key
keeps steering while the terminal repeats it.

Difficulty options:
  easy   - Start at base speed, speed up over time
  normal - Start at 30% of the speed-up range
  hard   - Start at 70% of the speed-up range
  fixed  - Never speed up

Examples:
  dodger play corridor
  dodger play topdown --difficulty hard
  dodger play corridor --config ./my-corridor.yaml --sound`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, windowCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom track config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		cmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound effects")
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := prepareGame(args[0])
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{Store: store, Logger: logger}
	if sounds := startSounds(logger); sounds != nil {
		defer sounds.Cleanup()
		opts.Sounds = sounds
	}

	if _, err := tui.Run(game, terminalConfig(), opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// prepareGame applies the track flags and creates the game.
func prepareGame(id string) (registry.Game, error) {
	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown track %q (run 'dodger list' to see available tracks)", id)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return nil, err
	}
	if flagConfig != "" {
		if _, err := config.Load(id, flagConfig); err != nil {
			return nil, err
		}
	}

	dodge.SetConfigPath(flagConfig)
	dodge.SetDifficultyPreset(flagDifficulty)

	return registry.Create(id)
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Failure is logged and play continues
// without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// startSounds returns an initialized sound manager, or nil when sound is
// disabled or no audio device is available.
func startSounds(logger *log.Logger) *audio.SoundManager {
	if !flagSound {
		return nil
	}
	sm := audio.NewSoundManager(0.8)
	if err := sm.Initialize(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil
	}
	return sm
}

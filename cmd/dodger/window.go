package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-dodger/internal/core"
	"github.com/vovakirdan/lane-dodger/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window <track>",
	Short: "Play a track in a desktop window",
	Long: `Open a desktop window and play the specified track.

Unlike the terminal, a window reports real key releases: steering lasts
exactly as long as the key is held.

Controls:
  Left/A     - Steer left
  Right/D    - Steer right
  P/Esc      - Pause
  R          - Restart
  Q          - Quit

Examples:
  dodger window corridor
  dodger window topdown --scale 2 --sound`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1.5, "Window size relative to 640x480")
}

func runWindow(_ *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := prepareGame(args[0])
	if err != nil {
		return err
	}
	wg, ok := game.(window.Game)
	if !ok {
		return fmt.Errorf("track %q cannot be drawn in a window", args[0])
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := window.Options{Store: store, Logger: logger, Scale: flagScale}
	if sounds := startSounds(logger); sounds != nil {
		defer sounds.Cleanup()
		opts.Sounds = sounds
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	return window.Run(wg, cfg, opts)
}

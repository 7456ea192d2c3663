package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-dodger/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick tracks from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a track.
After a run, press B to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select track
  Tab          - High scores
  Q            - Quit

Examples:
  dodger menu
  dodger menu --fps 30 --difficulty hard
  dodger menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound effects")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{Store: store, Logger: logger}
	if sounds := startSounds(logger); sounds != nil {
		defer sounds.Cleanup()
		opts.Sounds = sounds
	}

	cfg := terminalConfig()
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		if menuResult.GameID == "" {
			return nil
		}

		game, err := prepareGame(menuResult.GameID)
		if err != nil {
			return err
		}

		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		result, err := tui.Run(game, runCfg, opts)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		cfg.ScreenW, cfg.ScreenH = result.Config.ScreenW, result.Config.ScreenH
		if !result.BackToMenu {
			return nil
		}
	}
}


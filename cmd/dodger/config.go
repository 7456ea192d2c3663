package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-dodger/internal/config"
	"github.com/vovakirdan/lane-dodger/internal/games/dodge"
	"github.com/vovakirdan/lane-dodger/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config <track>",
	Short: "Print the effective track settings as YAML",
	Long: `Print the settings a run of the track would use, after the config file
search and the difficulty preset are applied. The output is a valid custom
config and can be saved, edited and passed back with --config.

Examples:
  dodger config corridor
  dodger config topdown --difficulty hard > ~/.dodger/configs/topdown.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom track config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(_ *cobra.Command, args []string) error {
	variant := args[0]
	if !registry.Exists(variant) {
		return fmt.Errorf("unknown track %q (run 'dodger list' to see available tracks)", variant)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	dodge.SetConfigPath(flagConfig)
	dodge.SetDifficultyPreset(flagDifficulty)

	return writeTrackConfig(os.Stdout, variant)
}

// writeTrackConfig renders the effective config for variant.
func writeTrackConfig(w io.Writer, variant string) error {
	cfg, err := dodge.LoadConfig(variant)
	if err != nil {
		return err
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// dodger is a lane dodging arcade game for the terminal and the desktop.
//
// Usage:
//
//	dodger list                 - List available tracks
//	dodger play <track>         - Play a track in the terminal
//	dodger window <track>       - Play a track in a desktop window
//	dodger menu                 - Pick tracks interactively
//	dodger serve                - Start SSH server for remote play
//	dodger scores <track>       - Show high scores for a track
//	dodger simulate <track>     - Run a headless simulation
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--db <path>         - Set database path (default: ~/.dodger/scores.db)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register the tracks
	_ "github.com/vovakirdan/lane-dodger/internal/games/dodge"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodger",
	Short: "Lane Dodger - slide between lanes, dodge what comes at you",
	Long: `Lane Dodger is an endless dodging game. Rows of obstacles rush toward
you; steer left and right through the gaps for as long as you can.

Two tracks are available:
  corridor - a 3D corridor seen from a chase camera
  topdown  - a flat field seen from above

Examples:
  dodger list
  dodger play corridor
  dodger window topdown --scale 2
  dodger menu
  dodger serve --ssh :2222
  dodger scores corridor
  dodger simulate topdown --autopilot`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dodger/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger for a command. Logs go to --log-file when set,
// otherwise to fallback. The returned close function is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q", flagLogLevel)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		path, err := expandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "dodger",
	})
	return logger, closeFn, nil
}

func expandHome(path string) (string, error) {
	if len(path) < 2 || path[:2] != "~/" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}

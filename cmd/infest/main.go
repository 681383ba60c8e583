// infest is a top-down bug-extermination shooter that runs in the terminal.
//
// Usage:
//
//	infest list              - List available levels
//	infest play [level]      - Play a level (no level opens the picker)
//	infest sim [level]       - Run a level headless under the autopilot
//	infest runs [level]      - Show run history
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.infestation/runs.db)
//	--level-file <path>  - Load the level layout from a YAML file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/infestation/internal/core"
	"github.com/vovakirdan/infestation/internal/game"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagLevelFile string
	flagLogLevel  string
	flagLogFile   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "infest",
	Short: "Infestation - clear bug nests in your terminal",
	Long: `Infestation is a top-down shooter played in the terminal. Destroy every
nest on the level while rats, bedbugs, mites, flies and roaches swarm you.

Available commands:
  list     - Show all available levels
  play     - Play a level
  sim      - Run a level headless under the autopilot
  runs     - View run history

Examples:
  infest list
  infest play apartment
  infest sim sewer --seed 42 --ticks 7200
  infest runs apartment --best`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		game.SetLevelPath(flagLevelFile)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.infestation/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLevelFile, "level-file", "", "Path to a custom level YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (play logs nowhere by default)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
}

// newLogger creates the process logger writing to fallback unless
// --log-file is set. The returned closer releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "infest",
		Level:           level,
	})
	game.SetLogger(logger)
	return logger, closer, nil
}

// runtimeConfig builds the simulation config for a width x height view.
// A zero --seed picks one from the clock so it can still be reported.
func runtimeConfig(width, height int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

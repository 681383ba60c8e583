package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/infestation/internal/core"
	"github.com/vovakirdan/infestation/internal/platform/tui"
	"github.com/vovakirdan/infestation/internal/registry"
	"github.com/vovakirdan/infestation/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level. Without a level, a picker opens and
you return to it after each session.

Controls:
  W/A/S/D        - Move
  Arrows/I/J/K/L - Aim (the mouse aims too)
  Space/Click    - Fire (F toggles a held trigger)
  Q/Tab          - Switch weapon
  R              - Reload
  P/Esc          - Pause
  Enter          - Restart (after game over)
  Ctrl+C         - Quit

Examples:
  infest play
  infest play apartment
  infest play sewer --seed 42
  infest play apartment --level-file ./my-level.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	if len(args) == 1 && !registry.Exists(args[0]) {
		return fmt.Errorf("unknown level %q (run 'infest list' to see available levels)", args[0])
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	// A zero seed lets the viewer pick a fresh one per session.
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if len(args) == 1 {
		_, err := playLevel(args[0], store, logger, cfg)
		return err
	}
	return runMenu(store, logger, cfg)
}

// playLevel runs one level in the viewer and reports the outcome.
func playLevel(id string, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (core.GameState, error) {
	scenario, err := registry.Create(id)
	if err != nil {
		return core.GameState{}, err
	}

	m, err := tui.Run(scenario, store, logger, cfg)
	if err != nil {
		return core.GameState{}, fmt.Errorf("running level: %w", err)
	}

	st := m.State()
	logger.Info("session ended", "level", id, "outcome", st.Outcome, "tick", st.Tick, "run", m.LastRunID())
	return st, nil
}

// runMenu loops between the level picker, the run history and the game.
func runMenu(store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	for {
		res, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil
		case res.WantsRuns:
			back, err := tui.RunRunsBrowser(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}
		default:
			if _, err := playLevel(res.ScenarioID, store, logger, cfg); err != nil {
				return err
			}
		}
	}
}

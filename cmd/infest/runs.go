package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/infestation/internal/platform/tui"
	"github.com/vovakirdan/infestation/internal/registry"
	"github.com/vovakirdan/infestation/internal/storage"
)

var (
	flagBest   bool
	flagLimit  int
	flagBrowse bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [level]",
	Short: "Show run history",
	Long: `Display recorded runs, newest first. With a level and --best, runs are
ranked: cleared runs first, then nests destroyed, kills and time.
Without a level, per-level totals are shown as well.

Examples:
  infest runs
  infest runs apartment --best
  infest runs --browse`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagBest, "best", false, "Rank runs instead of listing the newest (needs a level)")
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive run browser")
}

func runRuns(cmd *cobra.Command, args []string) error {
	level := ""
	if len(args) == 1 {
		level = args[0]
		if !registry.Exists(level) {
			return fmt.Errorf("unknown level %q (run 'infest list' to see available levels)", level)
		}
	}
	if flagBest && level == "" {
		return errors.New("--best needs a level")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagBrowse {
		fd := int(os.Stdout.Fd())
		if !term.IsTerminal(fd) {
			return errors.New("--browse needs a terminal")
		}
		width, height := 80, 24
		if w, h, err := term.GetSize(fd); err == nil {
			width, height = w, h
		}
		_, err = tui.RunRunsBrowser(store, width, height)
		return err
	}

	var runs []storage.Run
	if flagBest {
		runs, err = store.BestRuns(level, flagLimit)
	} else {
		runs, err = store.RecentRuns(level, flagLimit)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	title := "Recent runs"
	if flagBest {
		title = "Best runs"
	}
	if level != "" {
		title += " - " + level
	}
	fmt.Fprintln(out, title)
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'infest play' or 'infest sim --save' to record one!")
		return nil
	}
	printRuns(out, runs)

	if level == "" {
		stats, err := store.Stats()
		if err != nil {
			return err
		}
		printStats(out, stats)
	}
	return nil
}

func printRuns(out io.Writer, runs []storage.Run) {
	fmt.Fprintf(out, "  %-4s  %-10s  %-8s  %5s  %5s  %7s  %4s  %s\n",
		"#", "Level", "Outcome", "Nests", "Kills", "Ticks", "HP", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-8s  %5s  %5s  %7s  %4s  %s\n",
		"--", "-----", "-------", "-----", "-----", "-----", "--", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-10s  %-8s  %5d  %5d  %7d  %4.0f  %s\n",
			i+1, r.Scenario, r.Outcome, r.NestsDestroyed, r.Kills, r.Ticks, r.Health,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printStats(out io.Writer, stats map[string]*storage.ScenarioStats) {
	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-10s  %5s  %5s  %7s  %5s\n", "Level", "Runs", "Wins", "Kills", "Best")
	for _, id := range ids {
		s := stats[id]
		fmt.Fprintf(out, "  %-10s  %5d  %5d  %7d  %5d\n", id, s.Runs, s.Wins, s.Kills, s.BestKills)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/infestation/internal/config"
	"github.com/vovakirdan/infestation/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows every registered level with its size, nest count and barricades.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	levels := registry.List()
	out := cmd.OutOrStdout()

	if len(levels) == 0 {
		fmt.Fprintln(out, "No levels available.")
		return nil
	}

	fmt.Fprintln(out, "Available levels:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range levels {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Fprintf(out, "  %-*s  %-28s  %s\n", maxIDLen, "ID", "Title", "Layout")
	fmt.Fprintf(out, "  %-*s  %-28s  %s\n", maxIDLen, "--", "-----", "------")

	for _, l := range levels {
		layout := "?"
		if cfg, err := config.LoadLevel(l.ID, ""); err == nil {
			layout = fmt.Sprintf("%.0fx%.0f, %d nests, %d barricades",
				cfg.Width, cfg.Height, len(cfg.Nests), len(cfg.Barricades))
		}
		fmt.Fprintf(out, "  %-*s  %-28s  %s\n", maxIDLen, l.ID, l.Title, layout)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'infest play <id>' to play a level.")
	return nil
}

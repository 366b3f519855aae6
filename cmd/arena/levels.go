package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-arena/internal/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows the built-in levels and any level files found under --dir.
A level file with the ID of a built-in level replaces it.`,
	Run: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	levels, err := level.Catalog(flagLevelsDir, newLogger())
	if err != nil {
		exitf("cannot load levels: %v", err)
	}

	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, l := range levels {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Printf("  %-*s  %-*s  %-7s  %-6s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Size", "Bricks", "Source")
	fmt.Printf("  %-*s  %-*s  %-7s  %-6s  %s\n", maxIDLen, "--", maxNameLen, "----", "----", "------", "------")

	for _, l := range levels {
		cols, rows := l.Size()
		bricks := "?"
		if g, err := level.ParseGrid(l.Map, 1, 1); err == nil {
			bricks = fmt.Sprint(g.Len())
		}
		source := "built-in"
		if l.FilePath != "" {
			source = l.FilePath
		}
		fmt.Printf("  %-*s  %-*s  %-7s  %-6s  %s\n",
			maxIDLen, l.ID, maxNameLen, l.Name, fmt.Sprintf("%dx%d", cols, rows), bricks, source)
	}

	fmt.Println()
	fmt.Println("Run 'arena play <id>' to play a level.")
}

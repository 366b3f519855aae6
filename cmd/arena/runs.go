package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-arena/internal/level"
	"github.com/vovakirdan/brick-arena/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsBest  bool
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [level]",
	Short: "Show recorded runs",
	Long: `Shows recorded runs for a level, or per-level statistics when no
level is given.

Examples:
  arena runs              - Statistics for every level
  arena runs classic      - Latest runs on classic
  arena runs classic --best
  arena runs classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVarP(&flagRunsLimit, "limit", "n", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsBest, "best", false, "Show the fastest wins instead of the latest runs")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete the recorded runs of the level")
}

func runRuns(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("cannot open database: %v", err)
	}
	defer store.Close()

	if len(args) == 0 {
		showAllStats(store)
		return
	}
	id := args[0]

	if flagRunsClear {
		if err := store.ClearRuns(id); err != nil {
			exitf("cannot clear runs: %v", err)
		}
		fmt.Printf("Cleared runs for %s.\n", id)
		return
	}

	var runs []storage.Run
	title := "Latest runs"
	if flagRunsBest {
		title = "Fastest wins"
		runs, err = store.BestRuns(id, flagRunsLimit)
	} else {
		runs, err = store.RecentRuns(id, flagRunsLimit)
	}
	if err != nil {
		exitf("cannot get runs: %v", err)
	}

	name := id
	if l, ok := level.BuiltinByID(id); ok {
		name = l.Name
	}
	fmt.Printf("%s: %s\n\n", title, name)

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-3s  %-16s  %-10s  %-6s  %-7s  %8s  %6s  %s\n", "#", "When", "Player", "Diff", "Outcome", "Time", "Bricks", "Hash")
	fmt.Printf("  %-3s  %-16s  %-10s  %-6s  %-7s  %8s  %6s  %s\n", "-", "----", "------", "----", "-------", "----", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-3d  %-16s  %-10s  %-6s  %-7s  %8s  %6d  %016x\n",
			i+1,
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			truncate(r.Player, 10),
			r.Difficulty,
			r.Outcome,
			fmt.Sprintf("%.1fs", float64(r.SimMS)/1000),
			r.BricksDestroyed,
			r.SnapshotHash,
		)
	}
}

func showAllStats(store *storage.Store) {
	stats, err := store.GetAllLevelStats()
	if err != nil {
		exitf("cannot get stats: %v", err)
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	levels, err := level.Catalog(flagLevelsDir, newLogger())
	if err != nil {
		exitf("cannot load levels: %v", err)
	}

	fmt.Println("Level statistics:")
	fmt.Println()
	fmt.Printf("  %-16s  %5s  %5s  %8s  %s\n", "Level", "Runs", "Wins", "Best", "Last played")
	fmt.Printf("  %-16s  %5s  %5s  %8s  %s\n", "-----", "----", "----", "----", "-----------")

	seen := make(map[string]bool)
	printStats := func(id string, st *storage.LevelStats) {
		best := "-"
		if st.BestWinMS > 0 {
			best = fmt.Sprintf("%.1fs", float64(st.BestWinMS)/1000)
		}
		fmt.Printf("  %-16s  %5d  %5d  %8s  %s\n",
			truncate(id, 16), st.Runs, st.Wins, best, st.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	for _, l := range levels {
		if st, ok := stats[l.ID]; ok {
			printStats(l.ID, st)
			seen[l.ID] = true
		}
	}
	// Runs of levels that are no longer in the catalog
	for id, st := range stats {
		if !seen[id] {
			printStats(id, st)
		}
	}
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagBrowse bool
	flagBest   bool
	flagLimit  int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded runs",
	Long: `Display the most recently recorded runs.

With --browse, opens an interactive table where Enter watches the selected
run and D deletes it.

Examples:
  flappy runs
  flappy runs --best --limit 5
  flappy runs -i`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVarP(&flagBrowse, "browse", "i", false, "Browse runs interactively")
	runsCmd.Flags().BoolVar(&flagBest, "best", false, "Order by best score instead of date")
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
}

func runRuns(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagBrowse {
		width, height := terminalSize()
		id, ok, err := tui.RunRunsBrowser(store, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if ok {
			if err := watchRun(store, id); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
		return
	}

	var runs []storage.Run
	if flagBest {
		runs, err = store.TopRuns(flagLimit)
	} else {
		runs, err = store.RecentRuns(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play' to record the first one!")
		return
	}

	fmt.Printf("  %-5s  %-5s  %-8s  %-7s  %-10s  %-20s  %s\n", "ID", "Best", "Attempts", "Ticks", "Ended", "Seed", "Date")
	fmt.Printf("  %-5s  %-5s  %-8s  %-7s  %-10s  %-20s  %s\n", "--", "----", "--------", "-----", "-----", "----", "----")
	for _, r := range runs {
		fmt.Printf("  %-5d  %-5d  %-8d  %-7d  %-10s  %-20d  %s\n",
			r.ID, r.Best, r.Attempts, r.Ticks, r.FinalPhase, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.BestScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}

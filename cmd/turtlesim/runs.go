package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/turtlesim/internal/platform/tui"
	"github.com/vovakirdan/turtlesim/internal/registry"
	"github.com/vovakirdan/turtlesim/internal/storage"
)

var (
	flagRunsLimit  int
	flagRunsBrowse bool
	flagRunsClear  bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [scenario]",
	Short: "Show run history and stats",
	Long: `Display recent runs and per-scenario statistics.

Examples:
  turtlesim runs
  turtlesim runs tunnel --limit 50
  turtlesim runs --browse
  turtlesim runs walled --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsBrowse, "browse", false, "Open the interactive history browser")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete the stored runs of the scenario")
}

func runRuns(cmd *cobra.Command, args []string) {
	scenario := ""
	if len(args) == 1 {
		scenario = args[0]
		if !registry.Exists(scenario) {
			fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", scenario)
			fmt.Fprintln(os.Stderr, "Run 'turtlesim list' to see available scenarios.")
			os.Exit(1)
		}
	}
	if flagRunsClear && scenario == "" {
		fmt.Fprintln(os.Stderr, "Error: --clear needs a scenario")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	exitOnError("opening run history", err)
	defer store.Close()

	switch {
	case flagRunsClear:
		exitOnError("clearing runs", store.ClearRuns(scenario))
		fmt.Printf("Cleared run history of %s.\n", scenario)
	case flagRunsBrowse:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		exitOnError("browsing runs", tui.RunHistory(store, scenario, width, height))
	default:
		printRuns(store, scenario)
	}
}

func printRuns(store *storage.Store, scenario string) {
	var (
		runs []storage.Run
		err  error
	)
	if scenario == "" {
		fmt.Println("Recent runs")
		runs, err = store.RecentRuns(flagRunsLimit)
	} else {
		fmt.Printf("Recent runs - %s\n", scenario)
		runs, err = store.RunsForScenario(scenario, flagRunsLimit)
	}
	exitOnError("retrieving runs", err)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'turtlesim run <scenario>' to record the first one!")
		return
	}

	fmt.Printf("  %-16s  %-8s  %-8s  %5s  %5s  %5s  %-8s  %s\n",
		"Date", "Scenario", "Outcome", "Upd", "Turns", "Moves", "Final", "Seed")
	fmt.Printf("  %-16s  %-8s  %-8s  %5s  %5s  %5s  %-8s  %s\n",
		"----", "--------", "-------", "---", "-----", "-----", "-----", "----")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-8s  %-8s  %5d  %5d  %5d  %-8s  %d\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Scenario, r.Outcome,
			r.Updates, r.Turns, r.Moves, r.Final, r.Seed)
	}

	fmt.Println()
	printStats(store, scenario)
}

func printStats(store *storage.Store, scenario string) {
	all, err := store.AllStats()
	if err != nil {
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		if scenario == "" || id == scenario {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	for _, id := range ids {
		st := all[id]
		best := "-"
		if st.BestUpdates > 0 {
			best = fmt.Sprintf("%d", st.BestUpdates)
		}
		fmt.Printf("%s: %d runs, %d arrived, %d stalled, %d aborted, avg %.1f updates, best %s\n",
			id, st.Runs, st.Arrived, st.Stalled, st.Aborted, st.AvgUpdates, best)
	}
}

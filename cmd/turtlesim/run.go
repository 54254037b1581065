package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/turtlesim/internal/core"
	"github.com/vovakirdan/turtlesim/internal/platform/tui"
	"github.com/vovakirdan/turtlesim/internal/registry"
	"github.com/vovakirdan/turtlesim/internal/sim"
	"github.com/vovakirdan/turtlesim/internal/storage"
)

var (
	flagConfig     string
	flagHeadless   bool
	flagAutoExit   bool
	flagMaxUpdates int
	flagCompact    bool
)

var runCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run a scenario",
	Long: `Generate the scenario's world and watch the turtle walk to its destination.

Controls:
  Space/P    - Pause / resume
  N          - Single turtle update while paused
  R          - Restart with a new seed
  D          - Show / hide the trail and destination marker
  ?          - Full help
  Q/Ctrl+C   - Quit

With --headless the frame is printed to stdout every time the world
changes, and the command exits when the turtle arrives or stalls.

Examples:
  turtlesim run tunnel
  turtlesim run walled --headless
  turtlesim run open --seed 42 --auto-exit
  turtlesim run tunnel --config ./my-tunnel.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom scenario config YAML")
	runCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Print frames to stdout instead of running the TUI")
	runCmd.Flags().BoolVar(&flagAutoExit, "auto-exit", false, "Exit the TUI as soon as the run finishes")
	runCmd.Flags().IntVar(&flagMaxUpdates, "max-updates", 0, "Abort after this many turtle updates (0 = config value)")
	runCmd.Flags().BoolVar(&flagCompact, "compact", false, "Headless: one character per cell")
}

func runRun(cmd *cobra.Command, args []string) {
	id := args[0]

	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'turtlesim list' to see available scenarios.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(!flagHeadless)
	exitOnError("logging", err)
	defer closeLog()

	s, err := sim.Open(id, flagConfig, logger)
	exitOnError("loading scenario", err)

	if flagMaxUpdates > 0 {
		cfg := s.Config()
		cfg.Timing.MaxUpdates = flagMaxUpdates
		exitOnError("applying --max-updates", s.Configure(cfg))
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := tui.RuntimeFor(s, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	})

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		// Continue without storage - the simulation still works
		store = nil
	}

	var runErr error
	if flagHeadless {
		runErr = runHeadless(s, rc, store)
	} else {
		var runID string
		runID, runErr = tui.Run(s, rc, tui.Options{
			Store:    store,
			Logger:   logger,
			AutoExit: flagAutoExit,
		})
		if runErr == nil && runID != "" {
			printSavedRun(store, runID)
		}
	}

	if store != nil {
		store.Close()
	}
	exitOnError("running scenario", runErr)
}

func runHeadless(s *sim.Simulation, rc core.RuntimeConfig, store *storage.Store) error {
	if err := s.Reset(rc); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	res, err := tui.RunHeadless(ctx, s, tui.HeadlessOptions{
		Out:     os.Stdout,
		Color:   isTTY,
		Clear:   isTTY,
		Compact: flagCompact,
		Store:   store,
	})
	if err != nil {
		return err
	}
	if res.RunID != "" {
		fmt.Printf("Saved run %s (seed %d)\n", res.RunID, s.Seed())
	}
	return nil
}

func printSavedRun(store *storage.Store, id string) {
	r, err := store.RunByID(id)
	if err != nil || r == nil {
		return
	}
	fmt.Printf("%s: %s after %d updates (%d turns, %d moves), final %s\n",
		r.Scenario, r.Outcome, r.Updates, r.Turns, r.Moves, r.Final)
	fmt.Printf("Saved run %s (seed %d)\n", r.ID, r.Seed)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/turtlesim/internal/core"
	"github.com/vovakirdan/turtlesim/internal/platform/tui"
	"github.com/vovakirdan/turtlesim/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start turtlesim with a scenario picker",
	Long: `Start turtlesim in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to run a scenario and Tab to
browse the run history. Esc leaves a running scenario and returns to the
picker.

Examples:
  turtlesim menu
  turtlesim menu --fps 60
  turtlesim menu --db ./runs.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(true)
	exitOnError("logging", err)
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		store = nil
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	runErr := tui.RunSession(store, cfg, logger)
	if store != nil {
		store.Close()
	}
	exitOnError("running menu", runErr)
}

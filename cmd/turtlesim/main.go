// turtlesim watches a nearly blind turtle find its way to a destination
// through a generated world, in the terminal.
//
// Usage:
//
//	turtlesim list               - List available scenarios
//	turtlesim run <scenario>     - Run a scenario
//	turtlesim menu               - Pick scenarios interactively
//	turtlesim runs [scenario]    - Show run history and stats
//	turtlesim serve              - Start SSH server for remote viewing
//	turtlesim schema             - Print the JSON Schema of scenario files
//
// Global flags:
//
//	--fps <rate>        - Frame rate (default: scenario tick_rate)
//	--seed <value>      - RNG seed for reproducible runs
//	--db <path>         - Run history database (default: ~/.turtlesim/runs.db)
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import scenarios to register them
	_ "github.com/vovakirdan/turtlesim/internal/sim"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "turtlesim",
	Short: "Turtlesim - watch a turtle find its way in your terminal",
	Long: `Turtlesim runs a grid world with a single turtle that only senses the
cells next to it and walks toward a destination one step at a time.

Available commands:
  list     - Show all available scenarios
  run      - Run a specific scenario
  menu     - Interactive scenario picker
  runs     - View run history and stats
  serve    - Start SSH server for remote viewing
  schema   - Print the scenario file JSON Schema

Examples:
  turtlesim list
  turtlesim run tunnel
  turtlesim run walled --headless
  turtlesim menu
  turtlesim serve --ssh :2222
  turtlesim runs tunnel`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = scenario tick_rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.turtlesim/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(schemaCmd)
}

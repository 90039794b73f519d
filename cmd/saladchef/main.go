// saladchef is a two-chef kitchen game for the terminal.
//
// Usage:
//
//	saladchef list              - List available modes
//	saladchef play [mode]       - Play a round (versus unless --solo)
//	saladchef menu              - Start menu to pick a mode interactively
//	saladchef serve             - Start SSH server for remote play
//	saladchef scores            - Show the high score table and recent rounds
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--db <path>     - Set database path (default: ~/.saladchef/scores.db)
//	--log <path>    - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import the kitchen to register its modes
	_ "github.com/vovakirdan/salad-chef/internal/games/salad"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "saladchef",
	Short: "Salad Chef - race a friend to serve the most salads",
	Long: `Salad Chef is a terminal kitchen game for two chefs sharing one keyboard.
Grab vegetables, chop them, and serve salads to impatient customers
before your time runs out.

Available commands:
  list     - Show the available modes
  play     - Start a round directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View the high score table

Examples:
  saladchef play
  saladchef play --solo --difficulty hard
  saladchef menu
  saladchef serve --ssh :2222
  saladchef scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.saladchef/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (the terminal belongs to the game)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// openLogger returns the logger for a terminal session. Without --log every
// record is discarded because the alt screen owns stdout.
func openLogger() (*log.Logger, func()) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "saladchef",
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger, func() { f.Close() }
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/salad-chef/internal/core"
	"github.com/vovakirdan/salad-chef/internal/games/salad"
	"github.com/vovakirdan/salad-chef/internal/platform/tui"
	"github.com/vovakirdan/salad-chef/internal/registry"
	"github.com/vovakirdan/salad-chef/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSolo       bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a round",
	Long: `Start a round in the given mode (default: salad, two chefs).

Controls:
  Player1    - WASD to move, E to use a station
  Player2    - Arrows to move, 0 or Enter to use a station
  P          - Pause
  R          - Restart (after the round)
  Esc/B      - Back (while paused or after the round)
  Q/Ctrl+C   - Quit

In solo mode both key sets drive the single chef.

Difficulty options (default: no progression, the configured interval only):
  easy   - Patient customers, arrivals speed up slowly over the round
  normal - Arrivals start a little faster and speed up over the round
  hard   - Impatient customers, arrivals start fast and speed up further
  fixed  - No progression, the configured interval only

Examples:
  saladchef play
  saladchef play --solo
  saladchef play salad_solo --difficulty easy
  saladchef play --config ./my-kitchen.yaml --log ./salad.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom kitchen config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagSolo, "solo", false, "One chef instead of two")
}

// applyKitchenFlags hands the config path and difficulty preset to the
// kitchen before any round is created.
func applyKitchenFlags() error {
	salad.SetConfigPath(flagConfig)
	return salad.SetDifficultyPreset(flagDifficulty)
}

// mustApplyKitchenFlags exits when the kitchen flags are invalid.
func mustApplyKitchenFlags() {
	if err := applyKitchenFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "salad"
	if flagSolo {
		gameID = "salad_solo"
	}
	if len(args) == 1 {
		gameID = args[0]
	}

	mustApplyKitchenFlags()

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'saladchef list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger, closeLog := openLogger()
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	var store storage.ScoreStore
	db, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the round still works
	} else {
		store = db
	}

	runErr := tui.Run(game, store, cfg, logger)

	// Close store before potential exit
	if db != nil {
		db.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

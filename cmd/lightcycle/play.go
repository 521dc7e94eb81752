package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lightcycle/internal/config"
	"github.com/vovakirdan/tui-lightcycle/internal/core"
	"github.com/vovakirdan/tui-lightcycle/internal/platform/tui"
	"github.com/vovakirdan/tui-lightcycle/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRiders     int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Ride a match",
	Long: `Start a match directly, skipping the menu.

Controls:
  Left/A     - Turn left
  Right/D    - Turn right
  Space      - Jump over trails
  P          - Pause
  R          - Restart (after the match ends)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - 3 riders
  normal - 4 riders
  hard   - 6 riders

Examples:
  lightcycle play
  lightcycle play --difficulty hard
  lightcycle play --riders 8
  lightcycle play --config ./my-arena.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagRiders, "riders", 0, "Rider count override (2-8)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Difficulty picks the rider count; --riders wins over both
	if flagDifficulty != "" {
		riders := config.RidersForPreset(config.DifficultyPreset(flagDifficulty))
		if riders == 0 {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, normal, or hard)\n", flagDifficulty)
			os.Exit(1)
		}
		gameCfg.Arena.Riders = riders
	}
	if flagRiders > 0 {
		gameCfg.Arena.Riders = flagRiders
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		FrameRate: flagFPS,
		Seed:      flagSeed,
	}

	// Open match storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		// Continue without storage - the match still works
		store = nil
	}

	runErr := tui.RunGame(gameCfg, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", runErr)
		os.Exit(1)
	}
}

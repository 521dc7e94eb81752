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

var flagMenuConfig string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with an interactive match picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a match.
After a match ends, press q to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start match
  Tab          - Match history
  Q            - Quit

Examples:
  lightcycle menu
  lightcycle menu --fps 30
  lightcycle menu --db ./matches.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagMenuConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg, err := config.Load(flagMenuConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open match storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
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

	runErr := tui.RunSession(store, gameCfg, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

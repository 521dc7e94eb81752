// lightcycle is a TUI light-trail survival game played in the terminal.
//
// Usage:
//
//	lightcycle play          - Ride a match directly
//	lightcycle menu          - Start with an interactive match picker
//	lightcycle serve         - Start SSH server for remote play
//	lightcycle scores        - Show the match history
//
// Global flags:
//
//	--fps <rate>    - Set render frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible matches
//	--db <path>     - Set database path (default: ~/.lightcycle/matches.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lightcycle",
	Short: "Lightcycle - light-trail survival in your terminal",
	Long: `Lightcycle is a terminal-based grid survival game. Every rider leaves
a solid trail behind; touch a trail, a wall, or another head and you
are out. Last rider moving wins. Jumps carry you over trails.

Available commands:
  play     - Ride a match directly
  menu     - Interactive match picker
  serve    - Start SSH server for remote play
  scores   - View the match history

Examples:
  lightcycle play
  lightcycle play --difficulty hard
  lightcycle menu
  lightcycle serve --ssh :2222
  lightcycle scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lightcycle/matches.db", "Path to match database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

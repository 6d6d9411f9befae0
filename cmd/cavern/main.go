// cavern is a terminal cave-map editor with cellular automaton and
// drunkard's-walk generators.
//
// Usage:
//
//	cavern edit              - Open the interactive editor
//	cavern gen               - Generate a map headlessly and print it
//	cavern seeds             - Show the seed journal
//	cavern serve             - Start SSH server for remote editing
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible maps
//	--db <path>     - Set seed journal path (default: ~/.cavern/seeds.db)
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
	Use:   "cavern",
	Short: "Cavern - edit cave maps in your terminal",
	Long: `Cavern is a terminal-based cave-map editor. Paint walls by hand, run
Conway's Game of Life over the grid, or carve tunnels with a drunkard's
walk. Every layout is reproducible from its seed.

Available commands:
  edit     - Open the interactive editor
  gen      - Generate a map headlessly and print it
  seeds    - Show bookmarked seeds
  serve    - Start SSH server for remote editing

Examples:
  cavern edit
  cavern edit --seed 42
  cavern gen --algo walk --width 60 --height 30
  cavern seeds --browse
  cavern serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cavern/seeds.db", "Path to seed journal database")

	// Add subcommands
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(seedsCmd)
	rootCmd.AddCommand(serveCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cavern-tui/cavern/internal/cave"
	"github.com/cavern-tui/cavern/internal/config"
	"github.com/cavern-tui/cavern/internal/core"
	"github.com/cavern-tui/cavern/internal/platform/tui"
	"github.com/cavern-tui/cavern/internal/storage"
)

var flagConfig string

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the interactive editor",
	Long: `Open the cave editor in the current terminal.

Controls:
  Arrows/hjkl - Move cursor
  Space       - Toggle wall under cursor
  1/2/3       - Paint / Life / Walk mode
  P           - Run/pause the active generator
  .           - Single step
  G           - Regenerate with current seed
  N           - New seed and regenerate
  C           - Clear the grid
  M           - Bookmark current seed
  Q/Ctrl+C    - Quit

Examples:
  cavern edit
  cavern edit --seed 42
  cavern edit --config ./my-cave.yaml`,
	Run: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom cave config YAML")
}

func runEdit(cmd *cobra.Command, args []string) {
	caveCfg, err := config.LoadCave(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	editor := cave.New(caveCfg)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open seed journal: %v\n", err)
		// Continue without storage - the editor still works
		store = nil
	}

	runErr := tui.Run(editor, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", runErr)
		os.Exit(1)
	}
}

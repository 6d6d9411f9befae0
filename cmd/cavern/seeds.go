package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cavern-tui/cavern/internal/cave"
	"github.com/cavern-tui/cavern/internal/platform/tui"
	"github.com/cavern-tui/cavern/internal/storage"
)

var (
	flagSeedsMode   string
	flagSeedsLimit  int
	flagSeedsBrowse bool
	flagSeedsClear  bool
)

var seedsCmd = &cobra.Command{
	Use:   "seeds",
	Short: "Show the seed journal",
	Long: `Display seeds bookmarked with M in the editor. A bookmarked seed plus
its mode and parameter is enough to reproduce the exact layout.

Examples:
  cavern seeds
  cavern seeds --mode walk
  cavern seeds --browse
  cavern seeds --clear --mode life`,
	RunE: runSeeds,
}

func init() {
	seedsCmd.Flags().StringVar(&flagSeedsMode, "mode", "", "Filter by mode: paint, life or walk")
	seedsCmd.Flags().IntVar(&flagSeedsLimit, "limit", 20, "Maximum number of entries to show")
	seedsCmd.Flags().BoolVar(&flagSeedsBrowse, "browse", false, "Open the interactive journal browser")
	seedsCmd.Flags().BoolVar(&flagSeedsClear, "clear", false, "Delete journal entries (scoped by --mode)")
}

func runSeeds(cmd *cobra.Command, args []string) error {
	if flagSeedsMode != "" {
		if _, ok := cave.ModeByName(flagSeedsMode); !ok {
			return fmt.Errorf("unknown mode %q (want paint, life or walk)", flagSeedsMode)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening seed journal: %w", err)
	}
	defer store.Close()

	if flagSeedsClear {
		if err := store.ClearSeeds(flagSeedsMode); err != nil {
			return fmt.Errorf("clearing journal: %w", err)
		}
		if flagSeedsMode == "" {
			fmt.Println("Journal cleared.")
		} else {
			fmt.Printf("Journal cleared for mode %s.\n", flagSeedsMode)
		}
		return nil
	}

	if flagSeedsBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunSeedBrowser(store, width, height)
	}

	var entries []storage.SeedEntry
	if flagSeedsMode == "" {
		entries, err = store.RecentSeeds(flagSeedsLimit)
	} else {
		entries, err = store.SeedsForMode(flagSeedsMode, flagSeedsLimit)
	}
	if err != nil {
		return fmt.Errorf("reading journal: %w", err)
	}

	fmt.Println("Seed Journal")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No bookmarks recorded yet.")
		fmt.Println()
		fmt.Println("Press M in 'cavern edit' to bookmark the current seed.")
		return nil
	}

	fmt.Printf("  %-6s  %-20s  %-9s  %-5s  %s\n", "Mode", "Seed", "World", "Param", "Date")
	fmt.Printf("  %-6s  %-20s  %-9s  %-5s  %s\n", "----", "----", "-----", "-----", "----")
	for _, e := range entries {
		fmt.Println(tui.FormatSeedEntry(e))
	}
	return nil
}

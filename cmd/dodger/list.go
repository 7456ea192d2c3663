package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-dodger/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available tracks",
	Long:  `Shows a list of all registered tracks.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No tracks available.")
		return
	}

	fmt.Println("Available tracks:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	maxTitleLen := 5 // "Title" header
	for _, g := range games {
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "About")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, g.Blurb)
	}

	fmt.Println()
	fmt.Println("Run 'dodger play <id>' to play in the terminal or 'dodger window <id>' for a window.")
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	modes := registry.List()
	if len(modes) == 0 {
		fmt.Println("No game modes available.")
		return
	}

	idWidth, titleWidth := len("ID"), len("Title")
	for _, m := range modes {
		idWidth = max(idWidth, len(m.ID))
		titleWidth = max(titleWidth, len(m.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", idWidth, "ID", titleWidth, "Title", "Description")
	for _, m := range modes {
		fmt.Printf("  %-*s  %-*s  %s\n", idWidth, m.ID, titleWidth, m.Title, m.Description)
	}

	fmt.Println()
	fmt.Println("Run 'asteroids play <id>' to play a mode.")
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chromapulse/internal/core"
	"github.com/vovakirdan/chromapulse/internal/platform/tui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show color keys and difficulty presets",
	Long:  `Shows the palette keys you answer with and the available difficulty presets.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	fmt.Println("Color keys:")
	fmt.Println()
	fmt.Printf("  %-4s  %-8s  %s\n", "Key", "Color", "Hex")
	fmt.Printf("  %-4s  %-8s  %s\n", "---", "-----", "---")
	for _, c := range core.DefaultPalette {
		fmt.Printf("  %-4s  %-8s  %s\n", c.Key, c.Name, c.Hex)
	}

	fmt.Println()
	fmt.Println("Difficulty presets:")
	fmt.Println()
	for _, item := range tui.DefaultMenuItems() {
		fmt.Printf("  %-8s  %s\n", item.Preset, item.Description)
	}

	fmt.Println()
	fmt.Println("Run 'chromapulse play --difficulty <preset>' to play.")
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sheetsCmd = &cobra.Command{
	Use:   "sheets",
	Short: "List loaded sprite sheets",
	Long: `Shows every sprite sheet the game would load with the current --assets
flag, with frame counts and pixel sizes. Useful for checking an export
directory before playing with it.`,
	Run: runSheets,
}

func runSheets(cmd *cobra.Command, args []string) {
	store := loadStore()

	maxNameLen := 4 // "Name" header
	for _, name := range store.Names() {
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "Name", "Frames", "Size")
	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "----", "------", "----")

	for i := 0; i < store.Count(); i++ {
		sheet := store.ByIndex(i)
		w, h := sheet.SourceSize()
		fmt.Printf("  %-*s  %-6d  %dx%d\n", maxNameLen, sheet.Name, sheet.FrameCount(), w, h)
	}
}

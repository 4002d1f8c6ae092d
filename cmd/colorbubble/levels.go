package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorbubble/internal/level"
	"github.com/vovakirdan/colorbubble/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List level packs and the levels of the selected one",
	Long: `Shows the registered level packs, then the levels of --pack (or --levels)
with their size, entry point, portal and pixel class counts.

Examples:
  colorbubble levels
  colorbubble levels --levels ./my-levels`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	packs := registry.List()
	fmt.Println("Packs:")
	for _, p := range packs {
		marker := " "
		if p.ID == flagPack && flagLevelsDir == "" {
			marker = "*"
		}
		fmt.Printf(" %s %-10s %s\n", marker, p.ID, p.Title)
	}
	fmt.Println()

	source, err := loadLevels()
	if err != nil {
		return err
	}

	fmt.Printf("Levels in %s:\n\n", source.title)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, name := range source.levels.Names() {
		maxNameLen = max(maxNameLen, len(name))
	}

	fmt.Printf("  %-3s  %-*s  %-9s  %-11s  %-11s  %7s  %7s\n", "#", maxNameLen, "Name", "Size", "Entry", "Portal", "Solid", "Hazard")
	fmt.Printf("  %-3s  %-*s  %-9s  %-11s  %-11s  %7s  %7s\n", "-", maxNameLen, "----", "----", "-----", "------", "-----", "------")

	for i := range source.levels.Len() {
		l := source.levels.At(i)
		size := l.Size()
		entry, portal := l.EntryPoint(), l.Portal()
		counts := l.Count()
		fmt.Printf("  %-3d  %-*s  %-9s  %-11s  %-11s  %7d  %7d\n",
			i+1, maxNameLen, l.Name(),
			fmt.Sprintf("%dx%d", size.X, size.Y),
			fmt.Sprintf("(%d,%d)", entry.X, entry.Y),
			fmt.Sprintf("(%d,%d)", portal.X, portal.Y),
			counts[level.Solid], counts[level.Hazard],
		)
	}

	fmt.Println()
	fmt.Println("Run 'colorbubble play --level <#>' to start from a level.")
	return nil
}

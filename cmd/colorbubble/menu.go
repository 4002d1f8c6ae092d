package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorbubble/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a level interactively",
	Long: `Start colorbubble in interactive menu mode.

The menu lists every level of the pack with its best time. Picking a level
plays the campaign from there; quitting the game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play from the selected level
  Tab          - Best runs
  Q            - Quit

Examples:
  colorbubble menu
  colorbubble menu --fps 30
  colorbubble menu --db ./records.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagPlayer, "player", "local", "Name recorded with completed runs")
}

func runMenu(_ *cobra.Command, _ []string) error {
	s, err := newSession(nil, true)
	if err != nil {
		return err
	}
	defer s.close()

	cfg := runtimeConfig(0)
	step := s.tuning.Timing.Timestep()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(s.source.levels, s.source.packID, s.store, cfg, step)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsRecords {
			goBack, recErr := tui.RunRecords(s.source.levels, s.source.packID, s.store, step, cfg.ScreenW, cfg.ScreenH)
			if recErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", recErr)
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from records
		}

		cfg.StartLevel = menuResult.StartLevel
		runErr := tui.Run(tui.Options{
			Levels:  s.source.levels,
			PackID:  s.source.packID,
			Tuning:  s.tuning,
			Runtime: cfg,
			Store:   s.store,
			Player:  flagPlayer,
			Logger:  s.logger,
		})
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		}

		// Loop back to menu
	}
}

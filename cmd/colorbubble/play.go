package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorbubble/internal/platform/tui"
)

var (
	flagLevel  int
	flagPlayer string
	flagScale  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Play the levels of the selected pack in order, starting at --level.

Controls:
  A/D or Left/Right  - Run
  Space/W/Up         - Jump
  E/Q                - Shoot a bubble
  R                  - Restart level
  P                  - Pause
  ?                  - Help
  Esc/Ctrl+C         - Quit

Terminals do not report key releases, so a direction stays held for a
short moment after its key stops repeating.

Examples:
  colorbubble play
  colorbubble play --level 3
  colorbubble play --levels ./my-levels --scale 2
  colorbubble play --config ./floaty.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level number to start from (1-based)")
	playCmd.Flags().StringVar(&flagPlayer, "player", "local", "Name recorded with completed runs")
	playCmd.Flags().IntVar(&flagScale, "scale", tui.DefaultScale, "Level pixels per half-block pixel")
}

func runPlay(_ *cobra.Command, _ []string) error {
	s, err := newSession(nil, true)
	if err != nil {
		return err
	}
	defer s.close()

	start := flagLevel - 1
	if start < 0 || start >= s.source.levels.Len() {
		return fmt.Errorf("level %d out of range (pack has %d levels)", flagLevel, s.source.levels.Len())
	}

	opts := tui.Options{
		Levels:  s.source.levels,
		PackID:  s.source.packID,
		Tuning:  s.tuning,
		Runtime: runtimeConfig(start),
		Store:   s.store,
		Player:  flagPlayer,
		Logger:  s.logger,
		Scale:   flagScale,
	}

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

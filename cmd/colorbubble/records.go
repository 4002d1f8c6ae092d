package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorbubble/internal/config"
	"github.com/vovakirdan/colorbubble/internal/storage"
)

var (
	flagRecordsLevel int
	flagRecent       bool
	flagClear        bool
	flagLimit        int
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show best runs",
	Long: `Display per-level statistics for the selected pack, or the best runs
of one level with --level.

Examples:
  colorbubble records
  colorbubble records --level 2
  colorbubble records --recent
  colorbubble records --clear`,
	Args: cobra.NoArgs,
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().IntVar(&flagRecordsLevel, "level", 0, "Show the best runs of this level (1-based)")
	recordsCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead")
	recordsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every run of the pack")
	recordsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runRecords(_ *cobra.Command, _ []string) error {
	source, err := loadLevels()
	if err != nil {
		return err
	}
	tuning, _, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	step := tuning.Timing.Timestep()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening records database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRuns(source.packID); err != nil {
			return err
		}
		fmt.Printf("Cleared all runs of %s.\n", source.title)
		return nil

	case flagRecent:
		runs, err := store.RecentRuns(source.packID, flagLimit)
		if err != nil {
			return err
		}
		fmt.Printf("Recent runs - %s\n\n", source.title)
		printRuns(runs, step, true)
		return nil

	case flagRecordsLevel > 0:
		index := flagRecordsLevel - 1
		if index >= source.levels.Len() {
			return fmt.Errorf("level %d out of range (pack has %d levels)", flagRecordsLevel, source.levels.Len())
		}
		runs, err := store.BestRuns(source.packID, index, flagLimit)
		if err != nil {
			return err
		}
		fmt.Printf("Best runs - %s / %s\n\n", source.title, source.levels.At(index).Name())
		printRuns(runs, step, false)
		return nil
	}

	stats, err := store.PackStats(source.packID)
	if err != nil {
		return err
	}

	fmt.Printf("Records - %s\n\n", source.title)
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'colorbubble play' and reach the portal to set the first time!")
		return nil
	}

	fmt.Printf("  %-3s  %-22s  %5s  %10s  %10s  %7s  %s\n", "#", "Level", "Runs", "Best", "Average", "Deaths", "Last played")
	fmt.Printf("  %-3s  %-22s  %5s  %10s  %10s  %7s  %s\n", "-", "-----", "----", "----", "-------", "------", "-----------")
	for _, st := range stats {
		fmt.Printf("  %-3d  %-22s  %5d  %10s  %10s  %7d  %s\n",
			st.LevelIndex+1, st.LevelName, st.Completions,
			fmtDuration(time.Duration(st.BestTicks)*step),
			fmtDuration(time.Duration(st.AvgTicks*float64(step))),
			st.TotalDeaths,
			st.LastPlayed.Format("2006-01-02 15:04"),
		)
	}

	if last, err := store.LastRun(); err == nil {
		fmt.Println()
		fmt.Printf("Last run: %s level %d by %s in %s\n",
			last.PackID, last.LevelIndex+1, last.Player, fmtDuration(last.Duration(step)))
	} else if !errors.Is(err, storage.ErrNoRuns) {
		return err
	}
	return nil
}

func printRuns(runs []storage.Run, step time.Duration, withLevel bool) {
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-5s  %10s  %6s  %7s  %-12s  %s\n", "Rank", "Level", "Time", "Deaths", "Bubbles", "Player", "Date")
	fmt.Printf("  %-4s  %-5s  %10s  %6s  %7s  %-12s  %s\n", "----", "-----", "----", "------", "-------", "------", "----")
	for i, r := range runs {
		lvl := "-"
		if withLevel {
			lvl = fmt.Sprintf("%d", r.LevelIndex+1)
		}
		fmt.Printf("  %-4d  %-5s  %10s  %6d  %7d  %-12s  %s\n",
			i+1, lvl, fmtDuration(r.Duration(step)), r.Deaths, r.Bubbles, r.Player,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// fmtDuration renders m:ss.cc.
func fmtDuration(d time.Duration) string {
	cs := d.Milliseconds() / 10
	return fmt.Sprintf("%d:%02d.%02d", cs/6000, cs/100%60, cs%100)
}

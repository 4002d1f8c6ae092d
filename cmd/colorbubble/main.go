// colorbubble is a color-splashing platformer for the terminal.
//
// Usage:
//
//	colorbubble play             - Play the campaign from the first (or --level) level
//	colorbubble menu             - Pick a level interactively
//	colorbubble levels           - List the levels of the selected pack
//	colorbubble records          - Show best runs per level
//	colorbubble serve            - Start SSH server for remote play
//	colorbubble config           - Print the default tuning YAML
//
// Global flags:
//
//	--fps <rate>       - Set render rate (default: 60)
//	--db <path>        - Set database path (default: ~/.colorbubble/records.db)
//	--config <path>    - Load simulation tuning from a YAML file
//	--pack <id>        - Play a registered level pack (default: classic)
//	--levels <dir>     - Play the images in a directory instead of a pack
//	--log-level <lvl>  - debug, info, warn or error
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import level packs to register them
	_ "github.com/vovakirdan/colorbubble/internal/levels"
)

var (
	// Global flags
	flagFPS       int
	flagDBPath    string
	flagConfig    string
	flagPack      string
	flagLevelsDir string
	flagLogLevel  string
	flagLogFile   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colorbubble",
	Short: "colorbubble - splash color on the walls of a terminal platformer",
	Long: `colorbubble is a small platformer rendered with half-block characters.
Run, jump and shoot bubbles that burst into paint on the level, then reach
the portal to move on to the next level.

Available commands:
  play     - Play the campaign directly
  menu     - Interactive level picker
  levels   - Show the levels of a pack
  records  - View best runs
  serve    - Start SSH server for remote play
  config   - Print the default tuning

Examples:
  colorbubble play
  colorbubble play --level 2
  colorbubble play --levels ./my-levels
  colorbubble menu --config ./floaty.yaml
  colorbubble serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.colorbubble/records.db", "Path to records database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagPack, "pack", "classic", "Registered level pack to play")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level images (overrides --pack)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

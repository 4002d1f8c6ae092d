package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/colorbubble/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the simulation tuning",
	Long: `Print the default tuning YAML. Save it to ~/.colorbubble/config.yaml or
./configs/colorbubble.yaml, or pass it with --config, to change the physics.

With --effective, prints the tuning that would be used after the search
path and --config are applied.

Examples:
  colorbubble config > ~/.colorbubble/config.yaml
  colorbubble config --effective --config ./floaty.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the resolved tuning instead of the defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagEffective {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	tuning, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(tuning)
	if err != nil {
		return err
	}
	fmt.Printf("# source: %s\n%s", source, out)
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Resolve the configuration the game would use and print it as YAML.

The first line names where it came from: custom (--config), user
(~/.arcade/configs/crossing.yaml), local (./configs/crossing.yaml),
embedded or builtin. The --difficulty preset is applied on top.

Examples:
  crossing config
  crossing config --difficulty hard
  crossing config --config ./my-crossing.yaml > configs/crossing.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, src, err := crossing.EffectiveConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	fmt.Fprintf(os.Stdout, "# source: %s\n", src)
	_, err = os.Stdout.Write(data)
	return err
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a game would start with, after the config file
search and the difficulty preset are applied. Use it as a starting point
for a custom config file.

Config search order:
  --config <path>, ~/.pong/configs/pong.yaml, ./configs/pong.yaml,
  then the built-in defaults.

Examples:
  pong config > ~/.pong/configs/pong.yaml
  pong config --difficulty hard
  pong config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults verbatim")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, preset, err := loadGameConfig()
	if err != nil {
		return err
	}
	config.ApplyPongPreset(&cfg, preset)

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

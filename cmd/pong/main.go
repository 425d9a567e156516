// pong is a terminal Pong game against a computer opponent.
//
// Usage:
//
//	pong play               - Play in this terminal
//	pong serve              - Start SSH server for remote play
//	pong sim                - Run headless CPU vs CPU matches
//	pong config             - Print the effective configuration
//	pong profiles           - List or delete saved settings
//
// Global flags:
//
//	--fps <rate>          - Set host frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible serves
//	--db <path>           - Set settings database path (default: ~/.pong/pong.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong in your terminal",
	Long: `Pong is the classic paddle game played against a computer opponent,
rendered in the terminal.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  sim       - Run headless CPU vs CPU matches
  config    - Print the effective configuration
  profiles  - List or delete saved settings

Examples:
  pong play
  pong play --difficulty hard
  pong serve --ssh :2222
  pong sim --games 5 --seed 42`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to settings database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(profilesCmd)
}

// loadGameConfig loads and validates the config named by the global flags.
// The difficulty preset is returned, not applied, so sessions can fall back
// to a saved preset when none was given.
func loadGameConfig() (config.PongConfig, config.DifficultyPreset, error) {
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return config.PongConfig{}, "", err
	}

	cfg, err := config.LoadPong(flagConfig)
	if err != nil {
		return config.PongConfig{}, "", err
	}
	if err := cfg.Validate(); err != nil {
		return config.PongConfig{}, "", err
	}
	return cfg, preset, nil
}

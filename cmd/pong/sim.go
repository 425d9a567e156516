package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

var (
	flagSimGames    int
	flagSimMaxTicks int
	flagSimVerbose  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless CPU vs CPU matches",
	Long: `Run complete matches with the computer on both sides and print the
results. No terminal UI is started; steps run as fast as possible.

With --seed the serves, and therefore the results, are reproducible.

Examples:
  pong sim
  pong sim --games 10 --seed 42
  pong sim --difficulty easy --verbose`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimGames, "games", 1, "Number of matches to run")
	simCmd.Flags().IntVar(&flagSimMaxTicks, "max-ticks", 1_000_000, "Give up on a match after this many steps")
	simCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Log engine events to stderr")
}

// simResult summarizes one headless match.
type simResult struct {
	Winner      pong.Side
	Left, Right int
	Ticks       uint64
	Hits        int
	Boosts      int
	LongestRun  int
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, preset, err := loadGameConfig()
	if err != nil {
		return err
	}
	config.ApplyPongPreset(&cfg, preset)
	cfg.Gameplay.HumanSide = config.HumanSideNone

	var logOut io.Writer = io.Discard
	if flagSimVerbose {
		logOut = os.Stderr
	}
	logger := log.NewWithOptions(logOut, log.Options{
		Prefix: "sim",
		Level:  log.DebugLevel,
	})

	out := cmd.OutOrStdout()
	for i := 0; i < flagSimGames; i++ {
		seed := flagSeed
		if seed != 0 {
			seed += int64(i)
		}

		res, err := simulate(cfg, seed, flagSimMaxTicks, logger.With("game", i+1))
		if err != nil {
			return err
		}

		winner := "none (tick limit)"
		if res.Winner != pong.SideNone {
			winner = res.Winner.String()
		}
		fmt.Fprintf(out, "game %d: left %d - %d right, winner %s, %d ticks, %d hits, %d boosts, longest rally %d\n",
			i+1, res.Left, res.Right, winner, res.Ticks, res.Hits, res.Boosts, res.LongestRun)
	}
	return nil
}

// simulate plays one match with fixed steps until it is decided or
// maxTicks steps have run.
func simulate(cfg config.PongConfig, seed int64, maxTicks int, logger *log.Logger) (simResult, error) {
	engine, err := pong.New(cfg, pong.Options{Seed: seed, Logger: logger})
	if err != nil {
		return simResult{}, err
	}

	var res simResult
	engine.Subscribe(func(ev pong.Event) {
		switch e := ev.(type) {
		case pong.PaddleHitEvent:
			res.Hits++
		case pong.RallyBoostEvent:
			res.Boosts++
			res.LongestRun = max(res.LongestRun, e.Hits)
		}
	})

	for i := 0; i < maxTicks && engine.Mode() == pong.ModeActive; i++ {
		engine.Step()
	}

	res.Winner = engine.Winner()
	res.Left, res.Right = engine.Scores()
	res.Ticks = engine.TickCount()
	return res, nil
}

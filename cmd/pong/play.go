package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagProfile string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Pong in this terminal",
	Long: `Start a game against the computer. You play the right paddle
unless gameplay.human_side says otherwise.

Controls:
  W/Up, S/Down  - Move paddle
  P/Space       - Pause
  R             - New game
  +/-           - Ball speed (0.5x to 2.0x, remembered per profile)
  ?             - More keys
  Q/Ctrl+C      - Quit

Difficulty options:
  easy    - Slow computer paddle with a wide dead zone
  normal  - Default computer paddle
  hard    - Fast computer paddle with a narrow dead zone
  fixed   - Rallies never speed the ball up

Examples:
  pong play
  pong play --difficulty hard
  pong play --config ./my-pong.yaml --profile alice`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagProfile, "profile", "local", "Settings profile name")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, preset, err := loadGameConfig()
	if err != nil {
		return err
	}

	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	// The game owns the terminal, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
		Level:           log.DebugLevel,
	})

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("playing without saved settings", "error", err)
	} else {
		defer store.Close()
	}

	sess := tui.Session{
		Config:     gameCfg,
		Difficulty: preset,
		Store:      store,
		Profile:    flagProfile,
		Logger:     logger,
	}
	return tui.Run(sess, rc)
}

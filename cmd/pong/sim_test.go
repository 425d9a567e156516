package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

func simConfig() config.PongConfig {
	cfg := config.DefaultPongConfig()
	cfg.Gameplay.HumanSide = config.HumanSideNone
	cfg.Gameplay.WinScore = 3
	return cfg
}

func TestSimulateIsReproducible(t *testing.T) {
	logger := log.New(io.Discard)

	a, err := simulate(simConfig(), 99, 50_000, logger)
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	b, err := simulate(simConfig(), 99, 50_000, logger)
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}

	if a != b {
		t.Errorf("same seed gave different results:\n%+v\n%+v", a, b)
	}
	if a.Left > 3 || a.Right > 3 {
		t.Errorf("scores %d-%d exceed the winning score", a.Left, a.Right)
	}
	if a.Winner != pong.SideNone && max(a.Left, a.Right) != 3 {
		t.Errorf("winner %v declared at %d-%d", a.Winner, a.Left, a.Right)
	}
	if a.Ticks == 0 || a.Ticks > 50_000 {
		t.Errorf("Ticks = %d, expected between 1 and the limit", a.Ticks)
	}
}

func TestSimulateRejectsBadConfig(t *testing.T) {
	cfg := simConfig()
	cfg.Clock.TickRate = 0

	if _, err := simulate(cfg, 1, 10, log.New(io.Discard)); err == nil {
		t.Error("simulate should fail on an invalid config")
	}
}

func TestPortOf(t *testing.T) {
	for addr, want := range map[string]string{
		":23234":         "23234",
		"localhost:2222": "2222",
		"nonsense":       "nonsense",
	} {
		if got := portOf(addr); got != want {
			t.Errorf("portOf(%q) = %q, expected %q", addr, got, want)
		}
	}
}

package pong

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestScoreKeeperPlaysToMax(t *testing.T) {
	s := NewScoreKeeper(3)

	for i := 1; i < 3; i++ {
		score, finished := s.OnGoalCrossed(SideLeft)
		if score != i || finished {
			t.Fatalf("goal %d: got (%d, %v), expected (%d, false)", i, score, finished, i)
		}
	}
	if s.Mode() != ModeActive {
		t.Errorf("Mode() = %v before the winning point, expected active", s.Mode())
	}

	score, finished := s.OnGoalCrossed(SideLeft)
	if score != 3 || !finished {
		t.Errorf("winning goal: got (%d, %v), expected (3, true)", score, finished)
	}
	if s.Mode() != ModeFinished || s.Winner() != SideLeft {
		t.Errorf("after win: mode %v winner %v, expected finished/left", s.Mode(), s.Winner())
	}

	// No more points once decided
	s.OnGoalCrossed(SideRight)
	s.OnGoalCrossed(SideLeft)
	if s.Score(SideLeft) != 3 || s.Score(SideRight) != 0 {
		t.Errorf("scores changed after finish: %d-%d", s.Score(SideLeft), s.Score(SideRight))
	}
}

func TestScoreKeeperPause(t *testing.T) {
	s := NewScoreKeeper(10)

	if err := s.TogglePause(); err != nil {
		t.Fatalf("TogglePause() error = %v", err)
	}
	if !s.Paused() || s.Mode() != ModePaused {
		t.Error("expected paused after toggle")
	}
	if err := s.SetPaused(false); err != nil {
		t.Fatalf("SetPaused(false) error = %v", err)
	}
	if s.Mode() != ModeActive {
		t.Errorf("Mode() = %v, expected active", s.Mode())
	}
}

func TestScoreKeeperPauseAfterFinish(t *testing.T) {
	s := NewScoreKeeper(1)
	s.OnGoalCrossed(SideRight)

	if err := s.SetPaused(true); !errors.Is(err, ErrGameFinished) {
		t.Errorf("SetPaused after finish error = %v, expected ErrGameFinished", err)
	}
	if err := s.TogglePause(); !errors.Is(err, ErrGameFinished) {
		t.Errorf("TogglePause after finish error = %v, expected ErrGameFinished", err)
	}
	if s.Mode() != ModeFinished {
		t.Errorf("Mode() = %v, expected finished", s.Mode())
	}
}

func TestScoreKeeperReset(t *testing.T) {
	s := NewScoreKeeper(2)
	s.OnGoalCrossed(SideRight)
	s.OnGoalCrossed(SideRight)

	s.Reset()

	if s.Score(SideLeft) != 0 || s.Score(SideRight) != 0 {
		t.Error("Reset should clear scores")
	}
	if s.Mode() != ModeActive || s.Winner() != SideNone {
		t.Errorf("after Reset: mode %v winner %v", s.Mode(), s.Winner())
	}
}

func TestGoalScorer(t *testing.T) {
	bounds := core.NewBounds(800, 600)

	tests := []struct {
		x    float64
		want Side
	}{
		{-0.1, SideRight},
		{0, SideNone},
		{400, SideNone},
		{800, SideNone},
		{800.1, SideLeft},
	}

	for _, tc := range tests {
		if got := GoalScorer(tc.x, bounds); got != tc.want {
			t.Errorf("GoalScorer(%v) = %v, expected %v", tc.x, got, tc.want)
		}
	}
}

func TestModeString(t *testing.T) {
	for mode, want := range map[Mode]string{
		ModeActive:   "active",
		ModePaused:   "paused",
		ModeFinished: "finished",
		Mode(99):     "unknown",
	} {
		if got := mode.String(); got != want {
			t.Errorf("Mode(%d).String() = %q, expected %q", mode, got, want)
		}
	}
}

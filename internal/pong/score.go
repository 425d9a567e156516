package pong

import (
	"errors"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// ErrGameFinished is returned by pause changes once a winner is decided.
var ErrGameFinished = errors.New("pong: game is finished")

// Mode is the game state machine's current state.
type Mode int

const (
	ModeActive   Mode = iota // Ticks run
	ModePaused               // Ticks suspended, resumable
	ModeFinished             // Winner decided, ticks suspended until reset
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeActive:
		return "active"
	case ModePaused:
		return "paused"
	case ModeFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// ScoreKeeper holds the scores and the active/paused/finished state.
type ScoreKeeper struct {
	left, right int
	max         int
	mode        Mode
	winner      Side
}

// NewScoreKeeper creates an active game played to maxScore.
func NewScoreKeeper(maxScore int) *ScoreKeeper {
	return &ScoreKeeper{max: maxScore}
}

// Score returns the score of a side.
func (s *ScoreKeeper) Score(side Side) int {
	switch side {
	case SideLeft:
		return s.left
	case SideRight:
		return s.right
	default:
		return 0
	}
}

// MaxScore returns the winning score.
func (s *ScoreKeeper) MaxScore() int {
	return s.max
}

// Mode returns the current mode.
func (s *ScoreKeeper) Mode() Mode {
	return s.mode
}

// Winner returns the winning side, or SideNone while undecided.
func (s *ScoreKeeper) Winner() Side {
	return s.winner
}

// Paused reports whether the game is paused.
func (s *ScoreKeeper) Paused() bool {
	return s.mode == ModePaused
}

// SetPaused pauses or resumes an undecided game.
func (s *ScoreKeeper) SetPaused(paused bool) error {
	if s.mode == ModeFinished {
		return ErrGameFinished
	}
	if paused {
		s.mode = ModePaused
	} else {
		s.mode = ModeActive
	}
	return nil
}

// TogglePause flips between active and paused.
func (s *ScoreKeeper) TogglePause() error {
	return s.SetPaused(s.mode != ModePaused)
}

// OnGoalCrossed adds one point for scorer and checks the win condition for
// the scoring side. Returns the new score and whether this point ended the game.
// A decided game does not take further points.
func (s *ScoreKeeper) OnGoalCrossed(scorer Side) (score int, finished bool) {
	if s.mode == ModeFinished {
		return s.Score(scorer), false
	}

	switch scorer {
	case SideLeft:
		s.left++
	case SideRight:
		s.right++
	default:
		return 0, false
	}

	score = s.Score(scorer)
	if score >= s.max {
		s.mode = ModeFinished
		s.winner = scorer
		return score, true
	}
	return score, false
}

// Reset clears scores, winner and pause, returning to active.
func (s *ScoreKeeper) Reset() {
	s.left = 0
	s.right = 0
	s.mode = ModeActive
	s.winner = SideNone
}

// GoalScorer returns the side that scores when the ball center is at x:
// past MinX scores for Right, past MaxX scores for Left, otherwise SideNone.
func GoalScorer(x float64, bounds core.Bounds) Side {
	switch {
	case x < bounds.MinX:
		return SideRight
	case x > bounds.MaxX:
		return SideLeft
	default:
		return SideNone
	}
}

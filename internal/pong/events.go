package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Event is a fire-and-forget notification for the presentation layer.
type Event interface {
	pongEvent()
}

// Listener receives events after each Tick, outside the engine lock.
type Listener func(Event)

// PaddleHitEvent is emitted when the ball bounces off a paddle.
type PaddleHitEvent struct {
	Tick   uint64
	Side   Side
	Point  core.Vec2
	Offset float64
}

func (PaddleHitEvent) pongEvent() {}

// WallBounceEvent is emitted when the ball bounces off the top or bottom wall.
type WallBounceEvent struct {
	Tick  uint64
	Wall  Wall
	Point core.Vec2
}

func (WallBounceEvent) pongEvent() {}

// GoalScoredEvent is emitted when a side scores.
type GoalScoredEvent struct {
	Tick  uint64
	Side  Side // Scoring side
	Score int  // Scoring side's new score
}

func (GoalScoredEvent) pongEvent() {}

// RallyBoostEvent is emitted when a rally raises the ball's speed boost.
type RallyBoostEvent struct {
	Tick       uint64
	Multiplier float64
	Hits       int
}

func (RallyBoostEvent) pongEvent() {}

// GameFinishedEvent is emitted once when a side reaches the winning score.
type GameFinishedEvent struct {
	Tick       uint64
	Winner     Side
	LeftScore  int
	RightScore int
}

func (GameFinishedEvent) pongEvent() {}

// GameResetEvent is emitted when Reset starts a new game.
type GameResetEvent struct{}

func (GameResetEvent) pongEvent() {}

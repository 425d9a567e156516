package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Snapshot is a read-only copy of the engine state.
type Snapshot struct {
	Tick       uint64
	Bounds     core.Bounds
	Ball       core.Vec2
	BallVel    core.Vec2
	BallRadius float64
	Left       PaddleView
	Right      PaddleView
	LeftScore  int
	RightScore int
	MaxScore   int
	Mode       Mode
	Winner     Side
	Boost      float64 // Rally boost multiplier
	UserSpeed  float64 // User ball-speed multiplier
	RallyHits  int
}

// PaddleView is the visible state of one paddle.
type PaddleView struct {
	Side       Side
	Controller Controller
	X, Y       float64
	HalfW      float64
	HalfH      float64
}

// Paused reports whether the snapshot was taken while paused.
func (s Snapshot) Paused() bool {
	return s.Mode == ModePaused
}

// Paddle returns the view of the given side's paddle.
func (s Snapshot) Paddle(side Side) PaddleView {
	if side == SideLeft {
		return s.Left
	}
	return s.Right
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s Snapshot) Hash() uint64 {
	h := s.Tick
	for _, f := range []float64{
		s.Ball.X, s.Ball.Y, s.BallVel.X, s.BallVel.Y,
		s.Left.Y, s.Right.Y, s.Boost, s.UserSpeed,
	} {
		h = h*31 + math.Float64bits(f)
	}
	h = h*31 + uint64(s.LeftScore)  //#nosec G115 -- hash computation
	h = h*31 + uint64(s.RightScore) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Mode)       //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Winner)     //#nosec G115 -- hash computation
	h = h*31 + uint64(s.RallyHits)  //#nosec G115 -- hash computation
	return h
}

func paddleView(p *Paddle) PaddleView {
	return PaddleView{
		Side:       p.Side,
		Controller: p.Controller,
		X:          p.X,
		Y:          p.Y,
		HalfW:      p.HalfW,
		HalfH:      p.HalfH,
	}
}

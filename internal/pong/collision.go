package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Hit describes a resolved paddle collision.
type Hit struct {
	Side   Side
	Point  core.Vec2 // Impact point on the paddle face
	Offset float64   // Normalized offset from paddle center, in [-1, 1]
}

// CollisionResolver bounces the ball off paddles.
type CollisionResolver struct {
	Restitution    float64 // Applied to |dx| on every hit
	DeflectionGain float64 // dy added per unit of normalized offset
}

// Resolve checks the ball against one paddle and applies the bounce.
//
// A hit is resolved only while the ball moves toward the paddle, so a ball
// that still overlaps after bouncing is not resolved again on later ticks.
// The overlap test is inclusive: touching edges count.
func (r CollisionResolver) Resolve(b *Ball, p *Paddle) (Hit, bool) {
	if !movingToward(b, p.Side) {
		return Hit{}, false
	}
	if !b.Box().Overlaps(p.Box()) {
		return Hit{}, false
	}

	offset := core.ClampF((b.Pos.Y-p.Y)/p.HalfH, -1, 1)

	b.Vel.X = -b.Vel.X * r.Restitution
	b.Vel.Y += offset * r.DeflectionGain

	// Put the ball back in front of the paddle if it was in front before
	// this tick; a ball coming from behind keeps its position.
	switch p.Side {
	case SideLeft:
		if b.prevX >= p.X {
			b.Place(core.Vec2{X: max(b.Pos.X, p.Face()+b.Radius), Y: b.Pos.Y})
		}
	case SideRight:
		if b.prevX <= p.X {
			b.Place(core.Vec2{X: min(b.Pos.X, p.Face()-b.Radius), Y: b.Pos.Y})
		}
	}

	return Hit{
		Side:   p.Side,
		Point:  core.Vec2{X: p.Face(), Y: core.ClampF(b.Pos.Y, p.Y-p.HalfH, p.Y+p.HalfH)},
		Offset: offset,
	}, true
}

// movingToward reports whether the ball's horizontal velocity points at the
// given paddle's side.
func movingToward(b *Ball, side Side) bool {
	switch side {
	case SideLeft:
		return b.Vel.X < 0
	case SideRight:
		return b.Vel.X > 0
	default:
		return false
	}
}

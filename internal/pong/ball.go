package pong

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Wall identifies a horizontal wall.
type Wall int

const (
	WallNone Wall = iota
	WallTop
	WallBottom
)

// String returns a human-readable name for the wall.
func (w Wall) String() string {
	switch w {
	case WallTop:
		return "top"
	case WallBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Ball owns position and velocity. Velocity is in units per second.
type Ball struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64

	prevX float64 // Center X before the last Advance, for swept paddle tests
}

// Advance moves the ball by Vel * dt * mult.
func (b *Ball) Advance(dt, mult float64) {
	b.prevX = b.Pos.X
	b.Pos = b.Pos.Add(b.Vel.Scale(dt * mult))
}

// BounceWalls reflects the ball off the top and bottom walls.
// The vertical velocity is inverted and scaled by restitution only when the
// ball is moving into the wall, and Y is clamped back inside. X is untouched.
func (b *Ball) BounceWalls(bounds core.Bounds, restitution float64) Wall {
	top := bounds.MinY + b.Radius
	bottom := bounds.MaxY - b.Radius

	switch {
	case b.Pos.Y <= top:
		b.Pos.Y = top
		if b.Vel.Y < 0 {
			b.Vel.Y = -b.Vel.Y * restitution
			return WallTop
		}
	case b.Pos.Y >= bottom:
		b.Pos.Y = bottom
		if b.Vel.Y > 0 {
			b.Vel.Y = -b.Vel.Y * restitution
			return WallBottom
		}
	}
	return WallNone
}

// LimitSpeed caps each velocity component at max units per second.
func (b *Ball) LimitSpeed(max float64) {
	b.Vel.X = core.ClampF(b.Vel.X, -max, max)
	b.Vel.Y = core.ClampF(b.Vel.Y, -max, max)
}

// Box returns the ball's bounding box, stretched horizontally over the
// distance travelled in the last Advance so a fast ball cannot skip a paddle.
func (b *Ball) Box() core.Box {
	return core.Box{
		MinX: math.Min(b.prevX, b.Pos.X) - b.Radius,
		MaxX: math.Max(b.prevX, b.Pos.X) + b.Radius,
		MinY: b.Pos.Y - b.Radius,
		MaxY: b.Pos.Y + b.Radius,
	}
}

// PrevX returns the center X before the last Advance.
func (b *Ball) PrevX() float64 {
	return b.prevX
}

// Place moves the ball to pos without any travel history.
func (b *Ball) Place(pos core.Vec2) {
	b.Pos = pos
	b.prevX = pos.X
}

// Serve centers the ball and gives it speed units/second at a random angle
// within ±maxAngle radians of horizontal, toward a random side.
func (b *Ball) Serve(center core.Vec2, speed, maxAngle float64, rng *rand.Rand) {
	b.Place(center)

	angle := (rng.Float64()*2 - 1) * maxAngle
	dir := 1.0
	if rng.Intn(2) == 0 {
		dir = -1.0
	}
	b.Vel = core.Vec2{
		X: math.Cos(angle) * speed * dir,
		Y: math.Sin(angle) * speed,
	}
}

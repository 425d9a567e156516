package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Paddle is one of the two paddles. Only Y moves; it is always clamped so
// the whole paddle stays inside the playfield.
type Paddle struct {
	Side       Side
	Controller Controller
	X, Y       float64 // Center
	HalfW      float64
	HalfH      float64

	minY, maxY float64 // Allowed range for Y
}

// NewPaddle places a paddle offset from its goal edge, vertically centered.
func NewPaddle(side Side, ctrl Controller, bounds core.Bounds, width, height, offset float64) *Paddle {
	p := &Paddle{
		Side:       side,
		Controller: ctrl,
		HalfW:      width / 2,
		HalfH:      height / 2,
		minY:       bounds.MinY + height/2,
		maxY:       bounds.MaxY - height/2,
	}
	if side == SideLeft {
		p.X = bounds.MinX + offset
	} else {
		p.X = bounds.MaxX - offset
	}
	p.Y = bounds.Center().Y
	return p
}

// MoveTo sets the paddle center to y, clamped to the playfield.
func (p *Paddle) MoveTo(y float64) {
	p.Y = core.ClampF(y, p.minY, p.maxY)
}

// MoveBy shifts the paddle by dy, clamped to the playfield.
func (p *Paddle) MoveBy(dy float64) {
	p.MoveTo(p.Y + dy)
}

// Range returns the lowest and highest allowed center Y.
func (p *Paddle) Range() (minY, maxY float64) {
	return p.minY, p.maxY
}

// Box returns the paddle's bounding box.
func (p *Paddle) Box() core.Box {
	return core.BoxAround(core.Vec2{X: p.X, Y: p.Y}, p.HalfW, p.HalfH)
}

// Face returns the x of the paddle edge facing the center of the field.
func (p *Paddle) Face() float64 {
	if p.Side == SideLeft {
		return p.X + p.HalfW
	}
	return p.X - p.HalfW
}

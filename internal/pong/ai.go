package pong

// OpponentAI moves a paddle toward the ball at a fixed per-tick step.
// It keeps no state of its own: the result depends only on the paddle and
// the ball's Y.
type OpponentAI struct {
	Speed    float64 // Units per tick
	DeadZone float64 // No movement while |paddle.Y - ballY| <= DeadZone
}

// Target returns where a paddle at y moves this tick when tracking ballY,
// before clamping to the playfield.
func (ai OpponentAI) Target(y, ballY float64) float64 {
	switch {
	case y < ballY-ai.DeadZone:
		return y + ai.Speed
	case y > ballY+ai.DeadZone:
		return y - ai.Speed
	default:
		return y
	}
}

// Update moves the paddle one step toward ballY.
func (ai OpponentAI) Update(p *Paddle, ballY float64) {
	p.MoveTo(ai.Target(p.Y, ballY))
}

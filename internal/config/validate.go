package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the config and returns all problems joined into one error.
// Nothing is clamped: a bad value is reported, never silently corrected.
func (c PongConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if !positive(c.Playfield.Width) {
		bad("playfield.width must be positive, got %v", c.Playfield.Width)
	}
	if !positive(c.Playfield.Height) {
		bad("playfield.height must be positive, got %v", c.Playfield.Height)
	}

	if !positive(c.Ball.Speed) {
		bad("ball.speed must be positive, got %v", c.Ball.Speed)
	}
	if !positive(c.Ball.Radius) {
		bad("ball.radius must be positive, got %v", c.Ball.Radius)
	} else if c.Ball.Radius*2 >= c.Playfield.Height {
		bad("ball.radius %v does not fit playfield height %v", c.Ball.Radius, c.Playfield.Height)
	}
	if !(c.Ball.MaxSpeed >= c.Ball.Speed) {
		bad("ball.max_speed must be at least ball.speed, got %v", c.Ball.MaxSpeed)
	}
	if !(c.Ball.MaxServeAngle >= 0 && c.Ball.MaxServeAngle < 90) {
		bad("ball.max_serve_angle_deg must be in [0, 90), got %v", c.Ball.MaxServeAngle)
	}

	if !positive(c.Paddles.Width) {
		bad("paddles.width must be positive, got %v", c.Paddles.Width)
	}
	if !positive(c.Paddles.Height) {
		bad("paddles.height must be positive, got %v", c.Paddles.Height)
	} else if c.Paddles.Height > c.Playfield.Height {
		bad("paddles.height %v exceeds playfield height %v", c.Paddles.Height, c.Playfield.Height)
	}
	if c.Paddles.Offset < c.Paddles.Width/2 || c.Paddles.Offset*2 >= c.Playfield.Width {
		bad("paddles.offset %v must keep both paddles inside the playfield", c.Paddles.Offset)
	}

	if !positive(c.Physics.BounceRestitution) {
		bad("physics.bounce_restitution must be positive, got %v", c.Physics.BounceRestitution)
	}
	if !(c.Physics.PaddleRestitution >= 1) {
		bad("physics.paddle_restitution must be at least 1, got %v", c.Physics.PaddleRestitution)
	}
	if !(c.Physics.DeflectionGain >= 0) {
		bad("physics.deflection_gain must not be negative, got %v", c.Physics.DeflectionGain)
	}

	if c.Rally.HitsPerBoost < 1 {
		bad("rally.hits_per_boost must be at least 1, got %d", c.Rally.HitsPerBoost)
	}
	if !(c.Rally.BoostFactor >= 1) {
		bad("rally.boost_factor must be at least 1, got %v", c.Rally.BoostFactor)
	}

	if !positive(c.CPU.FollowSpeed) {
		bad("cpu.follow_speed must be positive, got %v", c.CPU.FollowSpeed)
	}
	if !(c.CPU.DeadZone >= 0) {
		bad("cpu.dead_zone must not be negative, got %v", c.CPU.DeadZone)
	}

	if c.Gameplay.WinScore <= 0 {
		bad("gameplay.win_score must be positive, got %d", c.Gameplay.WinScore)
	}
	if err := ValidateSpeedMultiplier(c.Gameplay.SpeedMultiplier); err != nil {
		bad("gameplay.speed_multiplier: %v", err)
	}
	switch c.Gameplay.HumanSide {
	case HumanSideLeft, HumanSideRight, HumanSideNone:
	default:
		bad("gameplay.human_side must be left, right or none, got %q", c.Gameplay.HumanSide)
	}

	if c.Clock.TickRate <= 0 {
		bad("clock.tick_rate must be positive, got %d", c.Clock.TickRate)
	}
	if c.Clock.MaxCatchupTicks < 1 {
		bad("clock.max_catchup_ticks must be at least 1, got %d", c.Clock.MaxCatchupTicks)
	}

	return errors.Join(errs...)
}

// ValidateSpeedMultiplier checks a user ball-speed multiplier against the slider range.
func ValidateSpeedMultiplier(v float64) error {
	if math.IsNaN(v) || v < MinSpeedMultiplier || v > MaxSpeedMultiplier {
		return fmt.Errorf("speed multiplier must be in [%.1f, %.1f], got %v", MinSpeedMultiplier, MaxSpeedMultiplier, v)
	}
	return nil
}

// positive reports v > 0, rejecting NaN and infinities.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
// It mirrors defaults/pong.yaml and is used if the embedded file cannot be parsed.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Playfield: PongPlayfield{
			Width:  800,
			Height: 600,
		},
		Ball: PongBall{
			Speed:         400,
			Radius:        10,
			MaxSpeed:      2400,
			MaxServeAngle: 45,
		},
		Paddles: PongPaddles{
			Width:  20,
			Height: 100,
			Offset: 40,
		},
		Physics: PongPhysics{
			BounceRestitution: 1.0,
			PaddleRestitution: 1.05,
			DeflectionGain:    200,
		},
		Rally: PongRally{
			HitsPerBoost: 3,
			BoostFactor:  1.2,
		},
		CPU: PongCPU{
			FollowSpeed: 5,
			DeadZone:    10,
		},
		Gameplay: PongGameplay{
			WinScore:        10,
			SpeedMultiplier: 1.0,
			HumanSide:       HumanSideRight,
		},
		Clock: PongClock{
			TickRate:        60,
			MaxCatchupTicks: 5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}

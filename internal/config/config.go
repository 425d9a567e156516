// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the Pong simulation.
package config

import (
	"fmt"
	"strings"
)

// User ball-speed multiplier range.
const (
	MinSpeedMultiplier  = 0.5
	MaxSpeedMultiplier  = 2.0
	SpeedMultiplierStep = 0.1
)

// Human side values accepted by gameplay.human_side.
const (
	HumanSideLeft  = "left"
	HumanSideRight = "right"
	HumanSideNone  = "none"
)

// PongConfig contains all configuration for a Pong session.
// Values are fixed once an engine is built from them.
type PongConfig struct {
	Playfield PongPlayfield `yaml:"playfield"`
	Ball      PongBall      `yaml:"ball"`
	Paddles   PongPaddles   `yaml:"paddles"`
	Physics   PongPhysics   `yaml:"physics"`
	Rally     PongRally     `yaml:"rally"`
	CPU       PongCPU       `yaml:"cpu"`
	Gameplay  PongGameplay  `yaml:"gameplay"`
	Clock     PongClock     `yaml:"clock"`
}

// PongPlayfield defines the arena size in world units.
type PongPlayfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PongBall defines ball size and speed.
type PongBall struct {
	Speed         float64 `yaml:"speed"`     // Serve speed, units/second
	Radius        float64 `yaml:"radius"`    // Collision half-extent
	MaxSpeed      float64 `yaml:"max_speed"` // Per-component velocity cap
	MaxServeAngle float64 `yaml:"max_serve_angle_deg"`
}

// PongPaddles defines paddle dimensions.
type PongPaddles struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Offset float64 `yaml:"offset"` // Goal edge to paddle center
}

// PongPhysics defines the collision response.
type PongPhysics struct {
	BounceRestitution float64 `yaml:"bounce_restitution"` // Wall bounce, applied to dy
	PaddleRestitution float64 `yaml:"paddle_restitution"` // Paddle hit, applied to dx
	DeflectionGain    float64 `yaml:"deflection_gain"`    // dy added per unit of hit offset
}

// PongRally defines the rally speed-up.
type PongRally struct {
	HitsPerBoost int     `yaml:"hits_per_boost"`
	BoostFactor  float64 `yaml:"boost_factor"`
}

// PongCPU defines the computer opponent.
type PongCPU struct {
	FollowSpeed float64 `yaml:"follow_speed"` // Units per tick
	DeadZone    float64 `yaml:"dead_zone"`
}

// PongGameplay defines scoring and control settings.
type PongGameplay struct {
	WinScore        int     `yaml:"win_score"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Initial user multiplier
	HumanSide       string  `yaml:"human_side"`
}

// PongClock defines the fixed simulation step.
type PongClock struct {
	TickRate        int `yaml:"tick_rate"`
	MaxCatchupTicks int `yaml:"max_catchup_ticks"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // No rally speed-up
)

// ParseDifficultyPreset converts a CLI value to a preset.
// An empty string yields an empty preset, meaning "keep the config as is".
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

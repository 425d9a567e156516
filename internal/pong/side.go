// Package pong implements the fixed-step Pong simulation: ball kinematics,
// paddle and wall collisions, the computer opponent, rally speed-ups,
// scoring and the active/paused/finished state machine.
//
// The package has no rendering or input code. A host feeds real elapsed
// time into Engine.Tick, writes paddle targets and settings through the
// engine's setters, and reads Snapshots and Events back.
package pong

// Side identifies a paddle and the goal it defends.
// The Left paddle defends MinX, the Right paddle defends MaxX.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Opponent returns the other side. SideNone has no opponent.
func (s Side) Opponent() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

// ParseSide converts "left", "right" or "none" to a Side.
func ParseSide(s string) Side {
	switch s {
	case "left":
		return SideLeft
	case "right":
		return SideRight
	default:
		return SideNone
	}
}

// Controller says who moves a paddle.
type Controller int

const (
	ControllerAI Controller = iota
	ControllerHuman
)

// String returns a human-readable name for the controller.
func (c Controller) String() string {
	if c == ControllerHuman {
		return "human"
	}
	return "cpu"
}

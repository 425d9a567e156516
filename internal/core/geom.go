// Package core provides fundamental types and utilities shared by the
// simulation and the terminal host. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector used for positions, velocities and offsets.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Bounds is an axis-aligned playfield rectangle in world units.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// NewBounds creates bounds with origin (0,0) and the given size.
func NewBounds(width, height float64) Bounds {
	return Bounds{MinX: 0, MaxX: width, MinY: 0, MaxY: height}
}

// Width returns MaxX - MinX.
func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns MaxY - MinY.
func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() Vec2 {
	return Vec2{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Box is a float axis-aligned bounding box.
type Box struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// BoxAround returns the box centered at c with the given half extents.
func BoxAround(c Vec2, halfW, halfH float64) Box {
	return Box{
		MinX: c.X - halfW,
		MaxX: c.X + halfW,
		MinY: c.Y - halfH,
		MaxY: c.Y + halfH,
	}
}

// Overlaps reports whether two boxes intersect.
// Bounds are inclusive: boxes that touch on an edge overlap.
func (b Box) Overlaps(o Box) bool {
	if b.MaxX < o.MinX || o.MaxX < b.MinX {
		return false
	}
	if b.MaxY < o.MinY || o.MaxY < b.MinY {
		return false
	}
	return true
}

// Rect represents an integer cell rectangle used when drawing to a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

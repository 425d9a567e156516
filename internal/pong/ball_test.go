package pong

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestBallAdvance(t *testing.T) {
	b := Ball{Radius: 10}
	b.Place(core.Vec2{X: 100, Y: 100})
	b.Vel = core.Vec2{X: 60, Y: -30}

	b.Advance(0.5, 2)

	assert.InDelta(t, 160, b.Pos.X, 1e-9)
	assert.InDelta(t, 70, b.Pos.Y, 1e-9)
	assert.Equal(t, 100.0, b.PrevX())
}

func TestBallBounceWalls(t *testing.T) {
	bounds := core.NewBounds(800, 600)

	tests := []struct {
		name     string
		pos      core.Vec2
		vel      core.Vec2
		wantWall Wall
		wantY    float64
		wantVY   float64
	}{
		{"top moving up", core.Vec2{X: 400, Y: 5}, core.Vec2{X: 0, Y: -100}, WallTop, 10, 100},
		{"bottom moving down", core.Vec2{X: 400, Y: 598}, core.Vec2{X: 0, Y: 100}, WallBottom, 590, -100},
		{"top moving away", core.Vec2{X: 400, Y: 5}, core.Vec2{X: 0, Y: 100}, WallNone, 10, 100},
		{"open field", core.Vec2{X: 400, Y: 300}, core.Vec2{X: 0, Y: -100}, WallNone, 300, -100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Ball{Radius: 10}
			b.Place(tc.pos)
			b.Vel = tc.vel

			wall := b.BounceWalls(bounds, 1.0)

			assert.Equal(t, tc.wantWall, wall)
			assert.Equal(t, tc.wantY, b.Pos.Y)
			assert.Equal(t, tc.wantVY, b.Vel.Y)
			assert.Equal(t, tc.pos.X, b.Pos.X, "wall bounce must not move x")
		})
	}
}

func TestBallBounceRestitution(t *testing.T) {
	b := Ball{Radius: 10}
	b.Place(core.Vec2{X: 400, Y: 0})
	b.Vel = core.Vec2{X: 50, Y: -100}

	b.BounceWalls(core.NewBounds(800, 600), 0.5)

	assert.Equal(t, 50.0, b.Vel.X)
	assert.Equal(t, 50.0, b.Vel.Y)
}

func TestBallLimitSpeed(t *testing.T) {
	b := Ball{Vel: core.Vec2{X: -5000, Y: 300}}
	b.LimitSpeed(2400)

	assert.Equal(t, -2400.0, b.Vel.X)
	assert.Equal(t, 300.0, b.Vel.Y)
}

func TestBallSweptBox(t *testing.T) {
	b := Ball{Radius: 10}
	b.Place(core.Vec2{X: 700, Y: 300})
	b.Vel = core.Vec2{X: 6000, Y: 0}
	b.Advance(1.0/60, 1)

	box := b.Box()
	assert.InDelta(t, 690, box.MinX, 1e-9)
	assert.InDelta(t, 810, box.MaxX, 1e-9)
	assert.Equal(t, 290.0, box.MinY)
	assert.Equal(t, 310.0, box.MaxY)
}

func TestBallServe(t *testing.T) {
	center := core.Vec2{X: 400, Y: 300}
	maxAngle := math.Pi / 4
	rng := rand.New(rand.NewSource(7))

	sawLeft, sawRight := false, false
	for i := 0; i < 200; i++ {
		var b Ball
		b.Serve(center, 400, maxAngle, rng)

		assert.Equal(t, center, b.Pos)
		assert.InDelta(t, 400, b.Vel.Len(), 1e-9, "serve speed")

		angle := math.Atan2(math.Abs(b.Vel.Y), math.Abs(b.Vel.X))
		assert.LessOrEqual(t, angle, maxAngle+1e-9, "serve angle")

		if b.Vel.X < 0 {
			sawLeft = true
		} else {
			sawRight = true
		}
	}
	assert.True(t, sawLeft && sawRight, "serves should go both ways")
}

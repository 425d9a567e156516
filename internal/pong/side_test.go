package pong

import "testing"

func TestSideOpponent(t *testing.T) {
	if SideLeft.Opponent() != SideRight || SideRight.Opponent() != SideLeft {
		t.Error("left and right should be opponents")
	}
	if SideNone.Opponent() != SideNone {
		t.Error("SideNone has no opponent")
	}
}

func TestParseSide(t *testing.T) {
	for in, want := range map[string]Side{
		"left":  SideLeft,
		"right": SideRight,
		"none":  SideNone,
		"":      SideNone,
	} {
		if got := ParseSide(in); got != want {
			t.Errorf("ParseSide(%q) = %v, expected %v", in, got, want)
		}
		if in != "" && want.String() != in {
			t.Errorf("%v.String() = %q, expected %q", want, want.String(), in)
		}
	}
}

func TestSnapshotHashChangesWithState(t *testing.T) {
	a := Snapshot{Tick: 3, LeftScore: 1}
	b := a
	if a.Hash() != b.Hash() {
		t.Error("equal snapshots should hash equally")
	}

	b.RightScore = 1
	if a.Hash() == b.Hash() {
		t.Error("hash should change with the score")
	}

	c := a
	c.Ball.X = 0.5
	if a.Hash() == c.Hash() {
		t.Error("hash should change with the ball position")
	}
}

func TestSnapshotPaddle(t *testing.T) {
	s := Snapshot{
		Left:  PaddleView{Side: SideLeft, Y: 10},
		Right: PaddleView{Side: SideRight, Y: 20},
		Mode:  ModePaused,
	}
	if s.Paddle(SideLeft).Y != 10 || s.Paddle(SideRight).Y != 20 {
		t.Error("Paddle() returned the wrong view")
	}
	if !s.Paused() {
		t.Error("Paused() should follow Mode")
	}
}

package pong

import (
	"testing"
	"time"
)

func TestClockRunsWholeSteps(t *testing.T) {
	c := NewClock(60, 5)
	step := c.Step()

	calls := 0
	n := c.Advance(step/2, func() { calls++ })
	if n != 0 || calls != 0 {
		t.Errorf("half a step ran %d steps, expected 0", n)
	}
	if c.Pending() != step/2 {
		t.Errorf("Pending() = %v, expected %v", c.Pending(), step/2)
	}

	n = c.Advance(step/2, func() { calls++ })
	if n != 1 || calls != 1 {
		t.Errorf("second half ran %d steps, expected 1", n)
	}
	if c.Pending() != 0 {
		t.Errorf("Pending() = %v, expected 0", c.Pending())
	}
}

func TestClockCapsCatchup(t *testing.T) {
	c := NewClock(60, 5)

	calls := 0
	n := c.Advance(time.Second, func() { calls++ })
	if n != 5 || calls != 5 {
		t.Errorf("Advance(1s) ran %d steps, expected the cap of 5", n)
	}
	if want := time.Second - 5*c.Step(); c.Dropped() != want {
		t.Errorf("Dropped() = %v, expected %v", c.Dropped(), want)
	}
	if c.Pending() != 0 {
		t.Errorf("Pending() = %v, expected 0 after catch-up", c.Pending())
	}
}

func TestClockIgnoresNegativeElapsed(t *testing.T) {
	c := NewClock(60, 5)
	if n := c.Advance(-time.Second, func() {}); n != 0 {
		t.Errorf("negative elapsed ran %d steps", n)
	}
	if c.Pending() != 0 {
		t.Errorf("Pending() = %v, expected 0", c.Pending())
	}
}

func TestClockReset(t *testing.T) {
	c := NewClock(60, 5)
	c.Advance(c.Step()/2, func() {})
	c.Reset()
	if c.Pending() != 0 {
		t.Errorf("Pending() after Reset = %v, expected 0", c.Pending())
	}
}

func TestClockStepSeconds(t *testing.T) {
	c := NewClock(50, 5)
	if c.StepSeconds() != 0.02 {
		t.Errorf("StepSeconds() = %v, expected 0.02", c.StepSeconds())
	}
	if c.Step() != 20*time.Millisecond {
		t.Errorf("Step() = %v, expected 20ms", c.Step())
	}
}

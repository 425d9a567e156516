package pong

import "time"

// Clock turns variable real elapsed time into a whole number of fixed steps.
// The backlog is capped at maxCatchup steps per Advance; older time is dropped
// so a stalled host cannot trigger an unbounded burst of catch-up ticks.
type Clock struct {
	rate       int
	step       time.Duration
	maxCatchup int
	acc        time.Duration
	dropped    time.Duration
}

// NewClock creates a clock running tickRate steps per second.
func NewClock(tickRate, maxCatchup int) *Clock {
	return &Clock{
		rate:       tickRate,
		step:       time.Second / time.Duration(tickRate),
		maxCatchup: maxCatchup,
	}
}

// Step returns the fixed step duration.
func (c *Clock) Step() time.Duration {
	return c.step
}

// StepSeconds returns the fixed step as seconds, used as dt for kinematics.
func (c *Clock) StepSeconds() float64 {
	return 1.0 / float64(c.rate)
}

// Advance adds elapsed real time and calls step once per whole fixed step.
// Returns the number of steps run.
func (c *Clock) Advance(elapsed time.Duration, step func()) int {
	if elapsed > 0 {
		c.acc += elapsed
	}

	if limit := c.step * time.Duration(c.maxCatchup); c.acc > limit {
		c.dropped += c.acc - limit
		c.acc = limit
	}

	n := 0
	for c.acc >= c.step {
		c.acc -= c.step
		step()
		n++
	}
	return n
}

// Pending returns the accumulated time not yet consumed by a step.
func (c *Clock) Pending() time.Duration {
	return c.acc
}

// Dropped returns the total real time discarded by the catch-up cap.
func (c *Clock) Dropped() time.Duration {
	return c.dropped
}

// Reset clears the accumulator.
func (c *Clock) Reset() {
	c.acc = 0
}

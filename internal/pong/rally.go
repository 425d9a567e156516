package pong

// RallyTracker counts alternating paddle hits since the last ball reset and
// raises the ball's speed boost every hitsPerBoost hits.
//
// The opening hit of a rally starts the count without being an exchange;
// each following hit from the other side is one exchange. The rally length
// is therefore exchanges+1 hits, and the boost fires when that length reaches
// a positive multiple of hitsPerBoost.
type RallyTracker struct {
	hitsPerBoost int
	boostFactor  float64

	exchanges   int
	lastSide    Side
	boost       float64
	lastBoostAt int // Rally length that fired the most recent boost
}

// NewRallyTracker creates a tracker with a boost multiplier of 1.
func NewRallyTracker(hitsPerBoost int, boostFactor float64) *RallyTracker {
	r := &RallyTracker{
		hitsPerBoost: hitsPerBoost,
		boostFactor:  boostFactor,
	}
	r.Reset()
	return r
}

// OnPaddleHit records a hit by side. Returns true if this hit raised the boost.
func (r *RallyTracker) OnPaddleHit(side Side) bool {
	switch {
	case r.lastSide == SideNone:
		// Rally start, not yet an exchange
		r.exchanges = 0
	case r.lastSide != side:
		r.exchanges++
	default:
		// Same side twice breaks the alternation; this hit opens a new run
		r.exchanges = 0
		r.lastBoostAt = 0
	}
	r.lastSide = side

	hits := r.Hits()
	if hits%r.hitsPerBoost != 0 || hits == r.lastBoostAt {
		return false
	}
	r.lastBoostAt = hits
	r.boost *= r.boostFactor
	return true
}

// Reset clears the rally. Called whenever the ball is reset.
func (r *RallyTracker) Reset() {
	r.exchanges = 0
	r.lastSide = SideNone
	r.boost = 1.0
	r.lastBoostAt = 0
}

// Boost returns the current speed multiplier (≥ 1).
func (r *RallyTracker) Boost() float64 {
	return r.boost
}

// Exchanges returns the number of alternating hits after the opening hit.
func (r *RallyTracker) Exchanges() int {
	return r.exchanges
}

// Hits returns the length of the current alternating run, 0 before the first hit.
func (r *RallyTracker) Hits() int {
	if r.lastSide == SideNone {
		return 0
	}
	return r.exchanges + 1
}

// LastSide returns the side of the most recent hit, or SideNone.
func (r *RallyTracker) LastSide() Side {
	return r.lastSide
}

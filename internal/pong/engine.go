package pong

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

var (
	// ErrInvalidSpeed is returned for a user speed multiplier outside the slider range.
	ErrInvalidSpeed = errors.New("pong: invalid speed multiplier")

	// ErrNotHumanPaddle is returned when writing a target for a CPU paddle.
	ErrNotHumanPaddle = errors.New("pong: paddle is not human-controlled")

	// ErrInvalidTarget is returned for a NaN or infinite paddle target.
	ErrInvalidTarget = errors.New("pong: invalid paddle target")
)

// Options are optional engine settings.
type Options struct {
	Seed   int64       // RNG seed for serves, 0 means time-based
	Logger *log.Logger // nil discards log output
}

// StepResult is returned by Step after one fixed tick.
type StepResult struct {
	Snapshot Snapshot
	Events   []Event
}

// target is a pending human paddle position.
type target struct {
	y   float64
	set bool
}

// Engine owns the whole simulation state. All methods are safe for
// concurrent use: one mutex guards the state bundle, and external writes
// are plain last-write-wins fields read at the start of the next step.
type Engine struct {
	mu sync.Mutex

	cfg      config.PongConfig
	bounds   core.Bounds
	clock    *Clock
	ball     Ball
	left     *Paddle
	right    *Paddle
	rally    *RallyTracker
	score    *ScoreKeeper
	ai       OpponentAI
	resolver CollisionResolver
	rng      *rand.Rand

	humanSide Side
	targets   [3]target // Indexed by Side
	userSpeed float64
	tick      uint64

	pending   []Event
	listeners []Listener
	logger    *log.Logger
}

// New validates cfg and builds an engine with the ball served from center.
func New(cfg config.PongConfig, opts Options) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pong: %w", err)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	bounds := core.NewBounds(cfg.Playfield.Width, cfg.Playfield.Height)
	humanSide := ParseSide(cfg.Gameplay.HumanSide)
	controller := func(side Side) Controller {
		if side == humanSide {
			return ControllerHuman
		}
		return ControllerAI
	}

	e := &Engine{
		cfg:    cfg,
		bounds: bounds,
		clock:  NewClock(cfg.Clock.TickRate, cfg.Clock.MaxCatchupTicks),
		ball:   Ball{Radius: cfg.Ball.Radius},
		left: NewPaddle(SideLeft, controller(SideLeft), bounds,
			cfg.Paddles.Width, cfg.Paddles.Height, cfg.Paddles.Offset),
		right: NewPaddle(SideRight, controller(SideRight), bounds,
			cfg.Paddles.Width, cfg.Paddles.Height, cfg.Paddles.Offset),
		rally: NewRallyTracker(cfg.Rally.HitsPerBoost, cfg.Rally.BoostFactor),
		score: NewScoreKeeper(cfg.Gameplay.WinScore),
		ai: OpponentAI{
			Speed:    cfg.CPU.FollowSpeed,
			DeadZone: cfg.CPU.DeadZone,
		},
		resolver: CollisionResolver{
			Restitution:    cfg.Physics.PaddleRestitution,
			DeflectionGain: cfg.Physics.DeflectionGain,
		},
		rng:       rand.New(rand.NewSource(seed)),
		humanSide: humanSide,
		userSpeed: cfg.Gameplay.SpeedMultiplier,
		logger:    logger,
	}
	e.serve()

	e.logger.Debug("engine ready",
		"width", bounds.Width(),
		"height", bounds.Height(),
		"human", humanSide,
		"seed", seed,
	)
	return e, nil
}

// Tick advances the simulation by real elapsed time, running zero or more
// fixed steps, then delivers the events they produced to subscribers.
func (e *Engine) Tick(elapsed time.Duration) {
	e.mu.Lock()
	e.clock.Advance(elapsed, e.step)
	events, listeners := e.drain()
	e.mu.Unlock()

	dispatch(listeners, events)
}

// Step runs exactly one fixed step regardless of elapsed time.
func (e *Engine) Step() StepResult {
	e.mu.Lock()
	e.step()
	snap := e.snapshot()
	events, listeners := e.drain()
	e.mu.Unlock()

	dispatch(listeners, events)
	return StepResult{Snapshot: snap, Events: events}
}

// step is one fixed tick. Callers hold e.mu.
func (e *Engine) step() {
	if e.score.Mode() != ModeActive {
		return
	}
	e.tick++

	for _, p := range e.paddles() {
		if t := e.targets[p.Side]; t.set && p.Controller == ControllerHuman {
			p.MoveTo(t.y)
		}
	}

	e.ball.Advance(e.clock.StepSeconds(), e.userSpeed*e.rally.Boost())
	if wall := e.ball.BounceWalls(e.bounds, e.cfg.Physics.BounceRestitution); wall != WallNone {
		e.emit(WallBounceEvent{Tick: e.tick, Wall: wall, Point: e.ball.Pos})
	}

	for _, p := range e.paddles() {
		if p.Controller == ControllerAI {
			e.ai.Update(p, e.ball.Pos.Y)
		}
	}

	for _, p := range e.paddles() {
		hit, ok := e.resolver.Resolve(&e.ball, p)
		if !ok {
			continue
		}
		e.emit(PaddleHitEvent{Tick: e.tick, Side: hit.Side, Point: hit.Point, Offset: hit.Offset})
		if e.rally.OnPaddleHit(hit.Side) {
			e.logger.Debug("rally boost", "hits", e.rally.Hits(), "multiplier", e.rally.Boost())
			e.emit(RallyBoostEvent{Tick: e.tick, Multiplier: e.rally.Boost(), Hits: e.rally.Hits()})
		}
	}
	e.ball.LimitSpeed(e.cfg.Ball.MaxSpeed)

	if scorer := GoalScorer(e.ball.Pos.X, e.bounds); scorer != SideNone {
		e.onGoal(scorer)
	}
}

// onGoal scores a point, checks the win and re-serves. Callers hold e.mu.
func (e *Engine) onGoal(scorer Side) {
	score, finished := e.score.OnGoalCrossed(scorer)
	e.logger.Debug("goal", "scorer", scorer, "score", score, "rally", e.rally.Hits())
	e.emit(GoalScoredEvent{Tick: e.tick, Side: scorer, Score: score})

	if finished {
		e.logger.Info("game finished",
			"winner", scorer,
			"left", e.score.Score(SideLeft),
			"right", e.score.Score(SideRight),
		)
		e.emit(GameFinishedEvent{
			Tick:       e.tick,
			Winner:     scorer,
			LeftScore:  e.score.Score(SideLeft),
			RightScore: e.score.Score(SideRight),
		})
	}

	// The ball is re-served even when the game just ended; it stays
	// centered because finished games do not tick.
	e.serve()
}

// serve centers the ball with a fresh direction and clears the rally.
func (e *Engine) serve() {
	maxAngle := e.cfg.Ball.MaxServeAngle * math.Pi / 180
	e.ball.Serve(e.bounds.Center(), e.cfg.Ball.Speed, maxAngle, e.rng)
	e.rally.Reset()
}

// Reset starts a new game from any state: scores cleared, no winner,
// unpaused, ball served from center, rally cleared, paddles centered.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.score.Reset()
	for _, p := range e.paddles() {
		p.MoveTo(e.bounds.Center().Y)
	}
	e.targets = [3]target{}
	e.clock.Reset()
	e.serve()
	e.logger.Debug("game reset")
	e.emit(GameResetEvent{})
	events, listeners := e.drain()
	e.mu.Unlock()

	dispatch(listeners, events)
}

// SetHumanPaddleTarget sets where the human paddle's center should be.
// The paddle moves there, clamped to the playfield, at the next step.
func (e *Engine) SetHumanPaddleTarget(y float64) error {
	e.mu.Lock()
	side := e.humanSide
	e.mu.Unlock()

	if side == SideNone {
		return ErrNotHumanPaddle
	}
	return e.SetPaddleTarget(side, y)
}

// SetPaddleTarget sets the target of a human-controlled paddle.
func (e *Engine) SetPaddleTarget(side Side, y float64) error {
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return ErrInvalidTarget
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.paddle(side)
	if p == nil || p.Controller != ControllerHuman {
		return fmt.Errorf("%w: %s", ErrNotHumanPaddle, side)
	}
	e.targets[side] = target{y: y, set: true}
	return nil
}

// SetPaused pauses or resumes the game. Fails with ErrGameFinished once a
// winner is decided.
func (e *Engine) SetPaused(paused bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.score.SetPaused(paused); err != nil {
		return err
	}
	e.logger.Debug("pause changed", "paused", paused)
	return nil
}

// TogglePause flips between active and paused.
func (e *Engine) TogglePause() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.score.TogglePause(); err != nil {
		return err
	}
	e.logger.Debug("pause changed", "paused", e.score.Paused())
	return nil
}

// SetUserSpeedMultiplier sets the user ball-speed multiplier, which must be
// in [config.MinSpeedMultiplier, config.MaxSpeedMultiplier].
func (e *Engine) SetUserSpeedMultiplier(v float64) error {
	if err := config.ValidateSpeedMultiplier(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSpeed, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.userSpeed = v
	return nil
}

// Subscribe registers a listener for events. Listeners run on the goroutine
// that called Tick, Step or Reset, after the engine lock is released.
func (e *Engine) Subscribe(l Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.listeners = append(e.listeners, l)
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.snapshot()
}

// BallPosition returns the ball center.
func (e *Engine) BallPosition() core.Vec2 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.ball.Pos
}

// PaddleY returns the center Y of a side's paddle.
func (e *Engine) PaddleY(side Side) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if p := e.paddle(side); p != nil {
		return p.Y
	}
	return 0
}

// Scores returns the left and right scores.
func (e *Engine) Scores() (left, right int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.score.Score(SideLeft), e.score.Score(SideRight)
}

// Mode returns the current game mode.
func (e *Engine) Mode() Mode {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.score.Mode()
}

// Winner returns the winning side, or SideNone.
func (e *Engine) Winner() Side {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.score.Winner()
}

// Paused reports whether the game is paused.
func (e *Engine) Paused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.score.Paused()
}

// BoostMultiplier returns the current rally boost.
func (e *Engine) BoostMultiplier() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.rally.Boost()
}

// UserSpeedMultiplier returns the user ball-speed multiplier.
func (e *Engine) UserSpeedMultiplier() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.userSpeed
}

// TickCount returns the number of steps simulated while active.
func (e *Engine) TickCount() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.tick
}

// Bounds returns the playfield bounds.
func (e *Engine) Bounds() core.Bounds {
	return e.bounds
}

// HumanSide returns the human-controlled side, or SideNone for CPU vs CPU.
func (e *Engine) HumanSide() Side {
	return e.humanSide
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.PongConfig {
	return e.cfg
}

func (e *Engine) snapshot() Snapshot {
	return Snapshot{
		Tick:       e.tick,
		Bounds:     e.bounds,
		Ball:       e.ball.Pos,
		BallVel:    e.ball.Vel,
		BallRadius: e.ball.Radius,
		Left:       paddleView(e.left),
		Right:      paddleView(e.right),
		LeftScore:  e.score.Score(SideLeft),
		RightScore: e.score.Score(SideRight),
		MaxScore:   e.score.MaxScore(),
		Mode:       e.score.Mode(),
		Winner:     e.score.Winner(),
		Boost:      e.rally.Boost(),
		UserSpeed:  e.userSpeed,
		RallyHits:  e.rally.Hits(),
	}
}

func (e *Engine) paddles() [2]*Paddle {
	return [2]*Paddle{e.left, e.right}
}

func (e *Engine) paddle(side Side) *Paddle {
	switch side {
	case SideLeft:
		return e.left
	case SideRight:
		return e.right
	default:
		return nil
	}
}

func (e *Engine) emit(ev Event) {
	e.pending = append(e.pending, ev)
}

// drain hands over pending events and a copy of the listeners. Callers hold e.mu.
func (e *Engine) drain() ([]Event, []Listener) {
	events := e.pending
	e.pending = nil
	return events, append([]Listener(nil), e.listeners...)
}

func dispatch(listeners []Listener, events []Event) {
	for _, ev := range events {
		for _, l := range listeners {
			l(ev)
		}
	}
}
